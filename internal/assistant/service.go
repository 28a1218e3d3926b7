// Package assistant runs the study assistants behind a simulated model
// latency, reporting progress and logging each call.
package assistant

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/kamilpajak/codecompanion/internal/codeanalysis"
	"github.com/kamilpajak/codecompanion/internal/latency"
	"github.com/kamilpajak/codecompanion/internal/logger"
	"github.com/kamilpajak/codecompanion/internal/notes"
	"github.com/kamilpajak/codecompanion/internal/roadmap"
	"github.com/kamilpajak/codecompanion/pkg/models"
)

// Assistant names used in events and logs.
const (
	Notes   = "notes"
	Code    = "code"
	Roadmap = "roadmap"
)

// Service runs assistant calls. It holds no per-call state and is safe for
// concurrent use.
type Service struct {
	delay latency.Simulator
	log   *logger.Logger
}

// New creates a Service. A nil logger discards logs.
func New(delay latency.Simulator, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{delay: delay, log: log}
}

// AnalyzeNotes summarizes study notes.
func (s *Service) AnalyzeNotes(ctx context.Context, text string, em ProgressEmitter) (models.NotesAnalysisResult, error) {
	return run(ctx, s, em, Notes, fmt.Sprintf("Analyzing notes (%d characters)...", utf8.RuneCountInString(text)), text, func() models.NotesAnalysisResult {
		return notes.Analyze(text)
	})
}

// AnalyzeCode explains a code snippet.
func (s *Service) AnalyzeCode(ctx context.Context, code string, em ProgressEmitter) (models.CodeAnalysisResult, error) {
	return run(ctx, s, em, Code, fmt.Sprintf("Analyzing code (%d characters)...", utf8.RuneCountInString(code)), code, func() models.CodeAnalysisResult {
		return codeanalysis.Analyze(code)
	})
}

// GenerateRoadmap builds a learning roadmap for goal.
func (s *Service) GenerateRoadmap(ctx context.Context, goal string, em ProgressEmitter) (models.RoadmapResult, error) {
	return run(ctx, s, em, Roadmap, fmt.Sprintf("Planning a roadmap for %q...", goal), goal, func() models.RoadmapResult {
		return roadmap.Generate(goal)
	})
}

func run[T any](ctx context.Context, s *Service, em ProgressEmitter, name, message, input string, fn func() T) (T, error) {
	if em == nil {
		em = Discard
	}
	start := time.Now()
	log := s.log.With("assistant", name, "input_chars", utf8.RuneCountInString(input))

	em.Emit(ProgressEvent{Type: "info", Assistant: name, Message: message})

	if err := s.delay.Wait(ctx); err != nil {
		log.Warn("assistant call abandoned", "elapsed", time.Since(start), "error", err)
		var zero T
		return zero, fmt.Errorf("%s assistant: %w", name, err)
	}

	result := fn()
	log.Info("assistant call finished", "elapsed", time.Since(start))
	return result, nil
}
