package notes

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		file     File
		want     string
		contains []string
	}{
		{
			name: "plain text verbatim",
			file: File{Name: "notes.txt", Type: "text/plain", Body: strings.NewReader("line one\nline two")},
			want: "line one\nline two",
		},
		{
			name: "plain text with charset",
			file: File{Name: "notes.txt", Type: "text/plain; charset=utf-8", Body: strings.NewReader("hello")},
			want: "hello",
		},
		{
			name:     "pdf placeholder",
			file:     File{Name: "lecture.pdf", Type: "application/pdf"},
			contains: []string{"[PDF Content Extracted from: lecture.pdf]", "simulated PDF content", "this would use PDF.js or a backend service"},
		},
		{
			name:     "image placeholder",
			file:     File{Name: "board.png", Type: "image/png"},
			contains: []string{"[OCR Text Extracted from: board.png]", "simulated OCR content", "this would use Tesseract.js or a backend OCR service"},
		},
		{
			name: "other type",
			file: File{Name: "slides.pptx", Type: "application/vnd.ms-powerpoint", Size: 2048},
			want: "[Content from: slides.pptx]\n\nFile type: application/vnd.ms-powerpoint\nSize: 2.00 KB",
		},
		{
			name: "undeclared text is sniffed",
			file: File{Name: "notes", Body: strings.NewReader("just some plain words")},
			want: "just some plain words",
		},
		{
			name:     "undeclared pdf is sniffed",
			file:     File{Name: "doc", Body: strings.NewReader("%PDF-1.4\n%binary")},
			contains: []string{"[PDF Content Extracted from: doc]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.file)
			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			}
			for _, c := range tt.contains {
				assert.Contains(t, got, c)
			}
		})
	}
}

func TestExtractText_ReadError(t *testing.T) {
	_, err := ExtractText(File{Name: "notes.txt", Type: "text/plain", Body: failingReader{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileRead)

	_, err = ExtractText(File{Name: "notes.txt", Type: "text/plain"})
	assert.ErrorIs(t, err, ErrFileRead)
}
