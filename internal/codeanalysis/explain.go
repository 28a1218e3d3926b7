package codeanalysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

const executesPreview = 30

// lineRule turns a matching line into an explanation. m holds the submatches.
type lineRule struct {
	re      *regexp.Regexp
	explain func(m []string) string
}

func fixed(s string) func([]string) string {
	return func([]string) string { return s }
}

var lineRules = []lineRule{
	{regexp.MustCompile(`^\s*(import|from|#include|using)\s+(.+)`), func(m []string) string {
		return fmt.Sprintf("Imports %s - brings in external functionality", strings.TrimSpace(m[2]))
	}},
	{regexp.MustCompile(`^\s*(def|function|func)\s+(\w+)\s*\(`), func(m []string) string {
		return fmt.Sprintf("Defines a function named '%s' that can be called later", m[2])
	}},
	{regexp.MustCompile(`^\s*(class)\s+(\w+)`), func(m []string) string {
		return fmt.Sprintf("Declares a class '%s' - a blueprint for creating objects", m[2])
	}},
	{regexp.MustCompile(`^\s*(const|let|var|int|float|double|string)\s+(\w+)\s*=`), func(m []string) string {
		return fmt.Sprintf("Creates a variable '%s' to store data", m[2])
	}},
	{regexp.MustCompile(`^\s*(for|while)\s*\(`), func(m []string) string {
		return fmt.Sprintf("Starts a %s loop - repeats the following code block", m[1])
	}},
	{regexp.MustCompile(`^\s*(if)\s*\(`), fixed("Conditional check - runs the next block only if condition is true")},
	{regexp.MustCompile(`^\s*(else if|elif)\s*\(`), fixed("Alternative condition - checked if previous conditions were false")},
	{regexp.MustCompile(`^\s*(else)\s*[:{]?$`), fixed("Default case - runs when all previous conditions are false")},
	{regexp.MustCompile(`^\s*(return)\s+(.+)`), func(m []string) string {
		return fmt.Sprintf("Returns %s - sends this value back to the caller", strings.TrimSpace(m[2]))
	}},
	{regexp.MustCompile(`(print|console\.log|System\.out|cout)\s*[(<]`), fixed("Outputs data to the console for debugging or display")},
	{regexp.MustCompile(`^\s*(try)\s*[:{]?$`), fixed("Starts error handling - attempts to run risky code")},
	{regexp.MustCompile(`^\s*(catch|except)`), fixed("Error handler - runs if an error occurs in the try block")},
	{regexp.MustCompile(`^\s*[}\]]\s*$`), fixed("Closes the current code block")},
	{regexp.MustCompile(`^\s*#.+|^\s*//.+|^\s*/\*.+`), fixed("Comment - documentation for developers, ignored by computer")},
}

// ExplainLines returns one explanation per line of code, blank lines included.
func ExplainLines(code string) []models.LineExplanation {
	lines := strings.Split(code, "\n")
	out := make([]models.LineExplanation, len(lines))
	for i, line := range lines {
		out[i] = models.LineExplanation{
			Line:        i + 1,
			Code:        line,
			Explanation: explainLine(line),
		}
	}
	return out
}

func explainLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "Empty line for code readability"
	}

	for _, r := range lineRules {
		if m := r.re.FindStringSubmatch(line); m != nil {
			return r.explain(m)
		}
	}

	runes := []rune(trimmed)
	if len(runes) > executesPreview {
		return "Executes " + string(runes[:executesPreview]) + "..."
	}
	return "Executes " + trimmed
}
