package api

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kamilpajak/codecompanion/internal/notes"
)

const (
	maxJSONBody   = 1 << 20
	maxUploadSize = 10 << 20
)

// decodeAndValidate reads a JSON body into v and runs its validate tags.
// On failure it writes a 400 and returns false.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := readJSON(r, v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return false
	}
	return true
}

func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// uploadedFile returns the "file" part of a multipart request, or nil when
// the request has none. The caller must close the returned body.
func uploadedFile(w http.ResponseWriter, r *http.Request) (*notes.File, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	f, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading upload: %w", err)
	}

	return &notes.File{
		Name: header.Filename,
		Type: header.Header.Get("Content-Type"),
		Size: header.Size,
		Body: f,
	}, func() { _ = f.Close() }, nil
}

// notesContent resolves the text to analyze from a multipart request. An
// uploaded file wins over the text field, which may be empty.
func notesContent(w http.ResponseWriter, r *http.Request) (string, error) {
	file, closeFile, err := uploadedFile(w, r)
	if err != nil {
		return "", err
	}
	defer closeFile()

	if file != nil {
		return notes.ExtractText(*file)
	}
	return r.FormValue("text"), nil
}

func streamRequested(r *http.Request) bool {
	switch r.URL.Query().Get("stream") {
	case "1", "true":
		return true
	}
	return false
}
