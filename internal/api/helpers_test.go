package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestExtractValidationErrors(t *testing.T) {
	v := validator.New()

	err := v.Struct(roadmapRequest{Goal: string(make([]byte, 501))})
	assert.Equal(t, "validation error: Goal - max", extractValidationErrors(err))

	assert.Equal(t, "validation error: invalid request", extractValidationErrors(assert.AnError))
}

func TestStreamRequested(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"?stream=1", true},
		{"?stream=true", true},
		{"?stream=0", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/ai/code/analyze"+tt.query, nil)
		assert.Equal(t, tt.want, streamRequested(req), tt.query)
	}
}

func TestIsMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	assert.True(t, isMultipart(req))

	req.Header.Set("Content-Type", "application/json")
	assert.False(t, isMultipart(req))
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	assert.Equal(t, "10.0.0.7", clientKey(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientKey(req))
}

func TestClientLimiter_PrunesIdleClients(t *testing.T) {
	l := newClientLimiter(1, 1)
	now := time.Now()
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))
	assert.True(t, l.allow("b"))

	now = now.Add(idleClientTTL + 2*time.Minute)
	assert.True(t, l.allow("b"))
	assert.NotContains(t, l.clients, "a")
	assert.Contains(t, l.clients, "b")
}

func TestStatusWriter_Flushes(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}

	sw.WriteHeader(http.StatusTeapot)
	sw.Flush()

	assert.Equal(t, http.StatusTeapot, sw.status)
	assert.True(t, rec.Flushed)
	assert.NotNil(t, NewSSEEmitter(sw))
}
