package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

func TestSplit_NoLimit(t *testing.T) {
	parts, err := New().Split("line one\nline two\n", 0, false)

	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "line one\nline two\n", parts[0].Content)
	assert.Equal(t, 0, parts[0].Index)
}

func TestSplit_InvalidLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
	}{
		{"zero", 0},
		{"negative", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := New().Split("content\n", tt.limit, true)

			assert.Nil(t, parts)
			assert.ErrorIs(t, err, domain.ErrInvalidChunkSize)
		})
	}
}

func TestSplit_AtLineBoundaries(t *testing.T) {
	content := "aa\nbb\ncc\ndd\n"

	parts, err := New().Split(content, 6, true)

	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, "aa\nbb\n", parts[0].Content)
	assert.Equal(t, "cc\ndd\n", parts[1].Content)
}

func TestSplit_NeverExceedsLimitForSplittableInput(t *testing.T) {
	content := strings.Repeat("0123456789\n", 50)

	parts, err := New().Split(content, 37, true)

	require.NoError(t, err)
	for _, p := range parts {
		assert.LessOrEqual(t, len(p.Content), 37)
	}
}

func TestSplit_OversizedLineIsItsOwnPart(t *testing.T) {
	long := strings.Repeat("x", 30)
	content := "short\n" + long + "\nshort again\n"

	parts, err := New().Split(content, 12, true)

	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, "short\n", parts[0].Content)
	assert.Equal(t, long+"\n", parts[1].Content)
	assert.Equal(t, "short again\n", parts[2].Content)
}

func TestSplit_ConcatenationIsIdentity(t *testing.T) {
	content := "alpha\nbeta\ngamma delta\n\nepsilon\nno trailing newline"

	for _, limit := range []int{1, 3, 7, 12, 100} {
		parts, err := New().Split(content, limit, true)

		require.NoError(t, err)
		assert.Equal(t, content, domain.JoinParts(parts), "limit %d", limit)
	}
}

func TestSplit_PartIndicesAreOrdinal(t *testing.T) {
	parts, err := New().Split("a\nb\nc\n", 2, true)

	require.NoError(t, err)
	for i, p := range parts {
		assert.Equal(t, i, p.Index)
	}
}

func TestSplit_EmptyContent(t *testing.T) {
	parts, err := New().Split("", 10, true)

	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "", parts[0].Content)
}
