package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/kamilpajak/codecompanion/internal/assistant"
	"github.com/kamilpajak/codecompanion/internal/notes"
	"github.com/kamilpajak/codecompanion/internal/roadmap"
)

type notesRequest struct {
	Text string `json:"text" validate:"max=200000"`
}

type codeRequest struct {
	Code string `json:"code" validate:"max=100000"`
}

type roadmapRequest struct {
	Goal string `json:"goal" validate:"max=500"`
}

func (s *Server) handleAnalyzeNotes(w http.ResponseWriter, r *http.Request) {
	var text string
	if isMultipart(r) {
		var err error
		text, err = notesContent(w, r)
		switch {
		case errors.Is(err, notes.ErrFileRead):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		case err != nil:
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		var req notesRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}
		text = req.Text
	}

	respond(s, w, r, func(ctx context.Context, em assistant.ProgressEmitter) (any, error) {
		return s.assistant.AnalyzeNotes(ctx, text, em)
	})
}

func (s *Server) handleExtractNotes(w http.ResponseWriter, r *http.Request) {
	if !isMultipart(r) {
		writeError(w, http.StatusUnsupportedMediaType, "expected multipart/form-data")
		return
	}

	file, closeFile, err := uploadedFile(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer closeFile()
	if file == nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}

	text, err := notes.ExtractText(*file)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"name": file.Name, "text": text})
}

func (s *Server) handleAnalyzeCode(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	respond(s, w, r, func(ctx context.Context, em assistant.ProgressEmitter) (any, error) {
		return s.assistant.AnalyzeCode(ctx, req.Code, em)
	})
}

func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	var req roadmapRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	respond(s, w, r, func(ctx context.Context, em assistant.ProgressEmitter) (any, error) {
		return s.assistant.GenerateRoadmap(ctx, req.Goal, em)
	})
}

func (s *Server) handleRoadmapTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"topics": roadmap.Topics()})
}

// respond runs an assistant call and writes its result either as JSON or,
// with ?stream=1, as Server-Sent Events.
func respond(s *Server, w http.ResponseWriter, r *http.Request, call func(context.Context, assistant.ProgressEmitter) (any, error)) {
	if !streamRequested(r) {
		result, err := call(r.Context(), assistant.Discard)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, "request cancelled")
			return
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	emitter := NewSSEEmitter(w)
	if emitter == nil {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	result, err := call(r.Context(), emitter)
	if err != nil {
		emitter.Emit(assistant.ProgressEvent{Type: "error", Message: err.Error()})
		return
	}

	emitter.Emit(assistant.ProgressEvent{Type: "done", Result: result})
}
