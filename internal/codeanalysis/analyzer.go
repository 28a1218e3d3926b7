// Package codeanalysis explains short source snippets using pattern tables.
// Nothing is parsed or executed; every result is derived from regular
// expressions applied to the raw text.
package codeanalysis

import (
	"strings"
	"unicode/utf8"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

// MinInputLength is the trimmed length below which analysis is skipped.
const MinInputLength = 10

const (
	moderateLines = 20
	complexLines  = 50
)

// Analyze builds a full explanation of code. Inputs shorter than
// MinInputLength produce a placeholder result.
func Analyze(code string) models.CodeAnalysisResult {
	if utf8.RuneCountInString(strings.TrimSpace(code)) < MinInputLength {
		return models.CodeAnalysisResult{
			Language:              models.LanguageUnknown,
			Intent:                "Please provide more code for analysis",
			LineByLineExplanation: []models.LineExplanation{},
			Errors:                []models.Issue{},
			DryRun:                []models.DryRunStep{},
			Improvements:          []string{},
			Complexity:            models.ComplexitySimple,
		}
	}

	language := DetectLanguage(code)

	return models.CodeAnalysisResult{
		Language:              language,
		Intent:                DetectIntent(code, language),
		LineByLineExplanation: ExplainLines(code),
		Errors:                DetectIssues(code, language),
		DryRun:                DryRun(code),
		Improvements:          Improvements(code, language),
		Complexity:            ComplexityOf(code),
	}
}

// ComplexityOf buckets code by its raw line count.
func ComplexityOf(code string) models.Complexity {
	switch n := len(strings.Split(code, "\n")); {
	case n < moderateLines:
		return models.ComplexitySimple
	case n < complexLines:
		return models.ComplexityModerate
	default:
		return models.ComplexityComplex
	}
}
