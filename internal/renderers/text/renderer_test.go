package text

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/papyrus-cli/internal/i18n"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	return New(bundle)
}

func render(t *testing.T, doc *domain.Document, opts driven.RenderOptions) string {
	t.Helper()
	out, err := newRenderer(t).Render(context.Background(), doc, opts)
	require.NoError(t, err)
	return out
}

func TestRenderer_Format(t *testing.T) {
	assert.Equal(t, "txt", newRenderer(t).Format())
}

func TestRender_Paragraphs(t *testing.T) {
	doc := &domain.Document{Blocks: []domain.Block{
		{Kind: domain.BlockParagraph, Text: "First"},
		{Kind: domain.BlockParagraph, Text: "Second"},
	}}

	out := render(t, doc, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "en-US"})

	assert.Equal(t, "First\nSecond\n", out)
}

func TestRender_Table_TSV(t *testing.T) {
	doc := &domain.Document{Blocks: []domain.Block{
		{Kind: domain.BlockParagraph, Text: "before"},
		{Kind: domain.BlockTable, Rows: [][]string{{"a", "b"}, {"c", "d"}}},
		{Kind: domain.BlockParagraph, Text: "after"},
	}}

	out := render(t, doc, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "en-US"})

	assert.Equal(t, "before\n\na\tb\nc\td\n\nafter\n", out)
}

func TestRender_Table_Pipe(t *testing.T) {
	doc := &domain.Document{Blocks: []domain.Block{
		{Kind: domain.BlockTable, Rows: [][]string{{"a", "b"}}},
	}}

	out := render(t, doc, driven.RenderOptions{TableFormat: domain.TablePipe, Locale: "en-US"})

	assert.Equal(t, "| a | b |\n", out)
}

func TestRender_Table_EmptyCellsKeepColumnCount(t *testing.T) {
	doc := &domain.Document{Blocks: []domain.Block{
		{Kind: domain.BlockTable, Rows: [][]string{{"a", "b", ""}, {"c", "", ""}}},
	}}

	out := render(t, doc, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "en-US"})

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, rows, 2)
	assert.Len(t, strings.Split(rows[0], "\t"), 3)
	assert.Len(t, strings.Split(rows[1], "\t"), 3)
}

func TestRender_Table_CellNewlinesEscaped(t *testing.T) {
	doc := &domain.Document{Blocks: []domain.Block{
		{Kind: domain.BlockTable, Rows: [][]string{{"line one\nline two", "x"}}},
	}}

	out := render(t, doc, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "en-US"})

	assert.Equal(t, `line one\nline two`+"\tx\n", out)
}

func TestRender_HeadersFirstFootersLast(t *testing.T) {
	// Footer declared before the body in source order still renders last.
	doc := &domain.Document{Blocks: []domain.Block{
		{Kind: domain.BlockFooter, Text: "Page X of Y"},
		{Kind: domain.BlockParagraph, Text: "Body"},
		{Kind: domain.BlockHeader, Text: "Confidential"},
	}}

	out := render(t, doc, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "en-US"})

	assert.Equal(t, "[HEADER] Confidential\nBody\n[FOOTER] Page X of Y\n", out)
}

func TestRender_LocalisedMarkers(t *testing.T) {
	doc := &domain.Document{Blocks: []domain.Block{
		{Kind: domain.BlockHeader, Text: "Vertraulich"},
	}}

	out := render(t, doc, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "de-DE"})

	assert.Equal(t, "[KOPFZEILE] Vertraulich\n", out)
}

func TestRender_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	doc := &domain.Document{Blocks: []domain.Block{
		{Kind: domain.BlockFooter, Text: "fin"},
	}}

	out := render(t, doc, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "ja-JP"})

	assert.Equal(t, "[FOOTER] fin\n", out)
}

func TestRender_LocaleNeverTouchesBodyText(t *testing.T) {
	doc := &domain.Document{Blocks: []domain.Block{
		{Kind: domain.BlockParagraph, Text: "unchanged body text"},
	}}

	en := render(t, doc, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "en-US"})
	de := render(t, doc, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "de-DE"})

	assert.Equal(t, en, de)
}

func TestRender_EmptyDocument(t *testing.T) {
	out := render(t, &domain.Document{}, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "en-US"})

	assert.Equal(t, "", out)
}

func TestRender_RoundTripScenario(t *testing.T) {
	// One paragraph, a 2x3 table with one missing cell already normalised,
	// and a footer, rendered as tsv with en-US.
	doc := &domain.Document{Blocks: []domain.Block{
		{Kind: domain.BlockParagraph, Text: "Hello"},
		{Kind: domain.BlockTable, Rows: [][]string{{"a", "b", "c"}, {"d", "e", ""}}},
		{Kind: domain.BlockFooter, Text: "Page X of Y"},
	}}

	out := render(t, doc, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "en-US"})

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "Hello", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Len(t, strings.Split(lines[2], "\t"), 3)
	assert.Len(t, strings.Split(lines[3], "\t"), 3)
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "[FOOTER] Page X of Y", lines[5])
}

func TestRender_CancelledContext(t *testing.T) {
	doc := &domain.Document{Blocks: []domain.Block{
		{Kind: domain.BlockParagraph, Text: "one"},
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := newRenderer(t).Render(ctx, doc, driven.RenderOptions{TableFormat: domain.TableTSV, Locale: "en-US"})

	assert.Empty(t, out)
	assert.ErrorIs(t, err, context.Canceled)
}
