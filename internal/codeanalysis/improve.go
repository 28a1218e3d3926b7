package codeanalysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxImprovements = 5
	longCode        = 500
)

var (
	varKeyword   = regexp.MustCompile(`var\s+`)
	stringConcat = regexp.MustCompile(`\+\s*["']`)
	cStyleFor    = regexp.MustCompile(`for\s*\(\s*\w+\s*=\s*0`)
	emptyCatch   = regexp.MustCompile(`catch\s*\(\s*\w*\s*\)\s*\{?\s*\}`)
)

var genericAdvice = []string{
	"Consider adding input validation for robustness",
	"Add error handling for edge cases",
}

type improvementRule struct {
	applies func(code, language string) bool
	tip     string
}

var improvementRules = []improvementRule{
	{func(code, _ string) bool {
		return !strings.Contains(code, "//") && !strings.Contains(code, "#") && !strings.Contains(code, "/*")
	}, "Add comments to explain complex logic and improve readability"},
	{func(code, _ string) bool {
		return utf8.RuneCountInString(code) > longCode && !strings.Contains(code, "function") && !strings.Contains(code, "def")
	}, "Consider breaking the code into smaller, reusable functions"},
	{func(code, language string) bool {
		return language == "JavaScript" && varKeyword.MatchString(code)
	}, "Use const/let instead of var for better scoping"},
	{func(code, _ string) bool {
		return stringConcat.MatchString(code)
	}, "Consider using template literals for string concatenation"},
	{func(code, language string) bool {
		return language == "Python" && cStyleFor.MatchString(code)
	}, "Consider using Python's range() or enumerate() for cleaner iteration"},
	{func(code, _ string) bool {
		return emptyCatch.MatchString(code)
	}, "Avoid empty catch blocks - log or handle errors properly"},
}

// Improvements suggests at most five changes. Two generic tips are added
// when fewer than two specific ones apply.
func Improvements(code, language string) []string {
	tips := []string{}
	for _, r := range improvementRules {
		if r.applies(code, language) {
			tips = append(tips, r.tip)
		}
	}
	if len(tips) < 2 {
		tips = append(tips, genericAdvice...)
	}
	if len(tips) > maxImprovements {
		tips = tips[:maxImprovements]
	}
	return tips
}
