package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTableFormat_IsValid tests table format validation
func TestTableFormat_IsValid(t *testing.T) {
	assert.True(t, TableTSV.IsValid())
	assert.True(t, TablePipe.IsValid())
	assert.False(t, TableFormat("csv").IsValid())
	assert.False(t, TableFormat("").IsValid())
}

// TestConversionJob_OutputBase tests output filename derivation
func TestConversionJob_OutputBase(t *testing.T) {
	tests := []struct {
		name      string
		inputPath string
		outFormat string
		expected  string
	}{
		{"simple docx", "/docs/report.docx", "txt", "report.txt"},
		{"no extension", "/docs/report", "txt", "report.txt"},
		{"nested path", "a/b/c/meeting notes.docx", "txt", "meeting notes.txt"},
		{"dotted stem", "/docs/v1.2.docx", "txt", "v1.2.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := ConversionJob{InputPath: tt.inputPath, OutputFormat: tt.outFormat}
			assert.Equal(t, tt.expected, job.OutputBase())
		})
	}
}

// TestConversionJob_FormatPair tests registry key normalisation
func TestConversionJob_FormatPair(t *testing.T) {
	job := ConversionJob{InputFormat: "DOCX", OutputFormat: "Txt"}

	in, out := job.FormatPair()

	assert.Equal(t, "docx", in)
	assert.Equal(t, "txt", out)
}

// TestJoinParts tests part concatenation order
func TestJoinParts(t *testing.T) {
	parts := []OutputPart{
		{Index: 0, Content: "hello\n"},
		{Index: 1, Content: "world\n"},
	}

	assert.Equal(t, "hello\nworld\n", JoinParts(parts))
}

// TestJoinParts_Empty tests joining no parts
func TestJoinParts_Empty(t *testing.T) {
	assert.Equal(t, "", JoinParts(nil))
}

// TestJobRecord_Succeeded tests success detection
func TestJobRecord_Succeeded(t *testing.T) {
	assert.True(t, JobRecord{PartCount: 1}.Succeeded())
	assert.False(t, JobRecord{Error: "corrupt document"}.Succeeded())
}

// TestDefaultAppSettings tests the built-in defaults
func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "en-US", s.Locale)
	assert.Equal(t, TableTSV, s.TableFormat)
	assert.Zero(t, s.ChunkSize)
	assert.Empty(t, s.OutputDir)
}
