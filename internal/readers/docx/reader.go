package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
)

// MIME types accepted as a DOCX container. Plain ZIP is allowed because
// content sniffing cannot always tell a DOCX from a generic archive; the
// document.xml check below settles it.
const (
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeZIP  = "application/zip"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader parses DOCX files into block sequences.
type Reader struct{}

// New creates a new DOCX reader.
func New() *Reader {
	return &Reader{}
}

// Format returns the input format tag this reader handles.
func (r *Reader) Format() string {
	return "docx"
}

// Read opens the DOCX at path and returns its blocks in document order:
// header blocks first, body paragraphs and tables as they appear, footer
// blocks last. The container is closed on every return path.
func (r *Reader) Read(ctx context.Context, path string) (*domain.Document, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if !mime.Is(mimeDOCX) && !mime.Is(mimeZIP) {
		return nil, fmt.Errorf("%w: %s is %s, not a DOCX container", domain.ErrUnsupportedFormat, path, mime.String())
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnsupportedFormat, path, err)
	}
	defer zr.Close()

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("%w: %s has no word/document.xml", domain.ErrCorruptDocument, path)
	}

	headers, err := readPartTexts(ctx, &zr.Reader, "word/header")
	if err != nil {
		return nil, err
	}
	footers, err := readPartTexts(ctx, &zr.Reader, "word/footer")
	if err != nil {
		return nil, err
	}

	body, err := readBody(ctx, docFile)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		SourcePath: path,
		Format:     "docx",
		Title:      readTitle(&zr.Reader, path),
	}

	for _, text := range headers {
		doc.Blocks = append(doc.Blocks, domain.Block{Kind: domain.BlockHeader, Text: text})
	}
	doc.Blocks = append(doc.Blocks, body...)
	for _, text := range footers {
		doc.Blocks = append(doc.Blocks, domain.Block{Kind: domain.BlockFooter, Text: text})
	}

	return doc, nil
}

// readBody parses word/document.xml into body blocks.
func readBody(ctx context.Context, f *zip.File) ([]domain.Block, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: opening document.xml: %v", domain.ErrCorruptDocument, err)
	}
	defer rc.Close()

	blocks, err := parseBody(ctx, rc)
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// readPartTexts collects the text of each header or footer part whose name
// starts with prefix, ordered by part name. Empty definitions are skipped.
func readPartTexts(ctx context.Context, zr *zip.Reader, prefix string) ([]string, error) {
	var files []*zip.File
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, prefix) && strings.HasSuffix(f.Name, ".xml") {
			files = append(files, f)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	var texts []string
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrCorruptDocument, f.Name, err)
		}

		text, err := parsePartText(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrCorruptDocument, f.Name, err)
		}

		if text != "" {
			texts = append(texts, text)
		}
	}
	return texts, nil
}

// coreXML is the subset of docProps/core.xml the reader cares about.
type coreXML struct {
	Title string `xml:"title"`
}

// readTitle extracts the title from docProps/core.xml, falling back to the
// cleaned-up filename. Missing or unreadable metadata is not an error.
func readTitle(zr *zip.Reader, path string) string {
	for _, f := range zr.File {
		if f.Name != "docProps/core.xml" {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			break
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			break
		}

		var core coreXML
		if err := xml.Unmarshal(content, &core); err == nil && core.Title != "" {
			return strings.TrimSpace(core.Title)
		}
		break
	}

	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}
