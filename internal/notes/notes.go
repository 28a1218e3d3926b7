// Package notes builds summaries, sections and analogies for study notes.
package notes

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kamilpajak/codecompanion/internal/keywords"
	"github.com/kamilpajak/codecompanion/pkg/models"
)

const (
	// MinInputLength is the trimmed length below which analysis is skipped.
	MinInputLength = 50

	// SummarySentences is the number of sentences in a summary.
	SummarySentences = 5

	minSentenceLength  = 30
	maxSentenceLength  = 300
	minParagraphLength = 50
	maxSections        = 5
	maxTitleLength     = 50
	maxExamples        = 4
)

const (
	shortSummary     = "Please provide more text for a comprehensive analysis. The current content is too short."
	shortExplanation = "Not enough content to generate an explanation."
)

var (
	newlines        = regexp.MustCompile(`\n+`)
	sentenceBreak   = regexp.MustCompile(`[.!?]+`)
	paragraphBreak  = regexp.MustCompile(`\n\n+`)
	discourseMarker = regexp.MustCompile(`(?i)^(therefore|thus|in conclusion|importantly|notably|significantly)`)
)

// Analyze summarizes text. Inputs shorter than MinInputLength produce a
// placeholder result instead of an error.
func Analyze(text string) models.NotesAnalysisResult {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinInputLength {
		return models.NotesAnalysisResult{
			Summary:           shortSummary,
			KeyConceptsList:   []string{},
			SimpleExplanation: shortExplanation,
			RealWorldExamples: []string{},
			Sections:          []models.Section{},
		}
	}

	kws := keywords.Extract(text)
	top := ImportantSentences(text, SummarySentences)

	return models.NotesAnalysisResult{
		Summary:           strings.Join(top, ". ") + ".",
		KeyConceptsList:   kws,
		SimpleExplanation: SimpleExplanation(text),
		RealWorldExamples: Examples(kws),
		Sections:          Sections(text),
	}
}

// Sentences splits text into candidate summary sentences.
func Sentences(text string) []string {
	flat := newlines.ReplaceAllString(text, " ")
	var out []string
	for _, s := range sentenceBreak.Split(flat, -1) {
		s = strings.TrimSpace(s)
		n := utf8.RuneCountInString(s)
		if n >= minSentenceLength && n < maxSentenceLength {
			out = append(out, s)
		}
	}
	return out
}

type scoredSentence struct {
	text  string
	score int
}

// ImportantSentences returns the count highest scoring sentences of text in
// score order. When there are no more than count sentences they are returned
// in source order without scoring.
func ImportantSentences(text string, count int) []string {
	sentences := Sentences(text)
	if len(sentences) <= count {
		if sentences == nil {
			return []string{}
		}
		return sentences
	}

	kws := keywords.Extract(text)
	scored := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		scored[i] = scoredSentence{text: s, score: scoreSentence(s, i, len(sentences), kws)}
	}

	slices.SortStableFunc(scored, func(a, b scoredSentence) int {
		return b.score - a.score
	})

	out := make([]string, count)
	for i := range out {
		out[i] = scored[i].text
	}
	return out
}

func scoreSentence(s string, index, total int, kws []string) int {
	score := 0
	lower := strings.ToLower(s)
	for _, kw := range kws {
		if strings.Contains(lower, strings.ToLower(kw)) {
			score += 2
		}
	}
	if index < 3 {
		score += 3
	}
	if index >= total-3 {
		score += 2
	}
	if discourseMarker.MatchString(s) {
		score += 3
	}
	return score
}

// Sections splits text into at most five titled paragraphs.
func Sections(text string) []models.Section {
	var paragraphs []string
	for _, p := range paragraphBreak.Split(text, -1) {
		if utf8.RuneCountInString(strings.TrimSpace(p)) > minParagraphLength {
			paragraphs = append(paragraphs, p)
		}
	}

	if len(paragraphs) == 0 {
		return []models.Section{{Title: "Main Content", Content: text}}
	}
	if len(paragraphs) > maxSections {
		paragraphs = paragraphs[:maxSections]
	}

	sections := make([]models.Section, len(paragraphs))
	for i, p := range paragraphs {
		sections[i] = models.Section{
			Title:   sectionTitle(p, i),
			Content: strings.TrimSpace(p),
		}
	}
	return sections
}

func sectionTitle(paragraph string, index int) string {
	kws := keywords.Extract(paragraph)

	var title string
	switch len(kws) {
	case 0:
		title = fmt.Sprintf("Section %d", index+1)
	case 1:
		title = kws[0]
	default:
		title = kws[0] + " & " + kws[1]
	}

	if runes := []rune(title); len(runes) > maxTitleLength {
		title = string(runes[:maxTitleLength-3]) + "..."
	}
	return title
}

// SimpleExplanation builds a beginner friendly paragraph from the top
// keywords and the best sentence of text.
func SimpleExplanation(text string) string {
	kws := keywords.Extract(text)
	sentences := ImportantSentences(text, 3)

	var b strings.Builder
	fmt.Fprintf(&b, "This document primarily discusses %s.", joinLower(head(kws, 0, 3)))
	if len(sentences) > 0 {
		fmt.Fprintf(&b, " The main point is that %s.", capitalizeFirst(strings.ToLower(sentences[0])))
	}
	if len(kws) > 3 {
		fmt.Fprintf(&b, " It also covers topics related to %s.", joinLower(head(kws, 3, 6)))
	}
	return b.String()
}

func head(s []string, from, to int) []string {
	if from > len(s) {
		return nil
	}
	return s[from:min(to, len(s))]
}

func joinLower(words []string) string {
	return strings.ToLower(strings.Join(words, ", "))
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
