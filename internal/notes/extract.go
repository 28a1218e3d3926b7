package notes

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrFileRead is returned when the contents of an uploaded file cannot be read.
var ErrFileRead = errors.New("failed to read file")

// File is an uploaded document with its declared MIME type.
type File struct {
	Name string
	Type string
	Size int64
	Body io.Reader
}

const pdfPlaceholder = `[PDF Content Extracted from: %s]

This is simulated PDF content. In a production environment, this would use PDF.js or a backend service to extract actual text from the PDF document.

The document appears to contain information about programming concepts, software development practices, and technical documentation.

Key sections would include introduction, main body with detailed explanations, code examples, and conclusions with best practices and recommendations for implementation.`

const imagePlaceholder = `[OCR Text Extracted from: %s]

This is simulated OCR content. In a production environment, this would use Tesseract.js or a backend OCR service to extract text from the image.

The image appears to contain handwritten or printed notes about technical subjects, with diagrams and annotations explaining key concepts.`

// ExtractText turns an uploaded file into text for Analyze. Plain text is
// returned verbatim; PDFs and images yield fixed placeholder paragraphs.
func ExtractText(f File) (string, error) {
	mediaType := baseType(f.Type)

	if mediaType == "" || mediaType == "text/plain" {
		data, err := readAll(f.Body)
		if err != nil {
			return "", err
		}
		if mediaType == "" {
			mediaType = baseType(mimetype.Detect(data).String())
		}
		if mediaType == "text/plain" {
			return string(data), nil
		}
		if f.Size == 0 {
			f.Size = int64(len(data))
		}
	}

	switch {
	case mediaType == "application/pdf":
		return fmt.Sprintf(pdfPlaceholder, f.Name), nil
	case strings.HasPrefix(mediaType, "image/"):
		return fmt.Sprintf(imagePlaceholder, f.Name), nil
	default:
		return fmt.Sprintf("[Content from: %s]\n\nFile type: %s\nSize: %.2f KB", f.Name, mediaType, float64(f.Size)/1024), nil
	}
}

func readAll(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, ErrFileRead
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	return data, nil
}

// baseType strips parameters such as charset from a MIME type.
func baseType(t string) string {
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.ToLower(strings.TrimSpace(t))
}
