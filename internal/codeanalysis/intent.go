package codeanalysis

import (
	"fmt"
	"regexp"
)

type intentRule struct {
	re     *regexp.Regexp
	intent string
}

var intents = []intentRule{
	{regexp.MustCompile(`(?i)sort|bubble|quick|merge|insertion`), "Implements a sorting algorithm to arrange elements in order"},
	{regexp.MustCompile(`(?i)search|find|binary|linear`), "Implements a search algorithm to find elements"},
	{regexp.MustCompile(`(?i)fibonacci|factorial|recursive`), "Calculates mathematical sequences using recursion"},
	{regexp.MustCompile(`(?i)class\s+\w+|constructor`), "Defines a class structure with object-oriented programming"},
	{regexp.MustCompile(`(?i)async|await|Promise|fetch`), "Handles asynchronous operations for non-blocking execution"},
	{regexp.MustCompile(`(?i)for\s*\(|while\s*\(|forEach`), "Iterates through data using loops"},
	{regexp.MustCompile(`(?i)if\s*\(|switch\s*\(`), "Implements conditional logic for decision making"},
	{regexp.MustCompile(`(?i)\[\]|\{\}|array|list|map|dict`), "Works with data structures to store and manipulate data"},
	{regexp.MustCompile(`(?i)input|read|scan|prompt`), "Handles user input for interactive functionality"},
	{regexp.MustCompile(`(?i)print|console|output|write`), "Outputs data to display results"},
	{regexp.MustCompile(`(?i)api|http|request|response`), "Communicates with external services via API calls"},
	{regexp.MustCompile(`(?i)file|open|read|write|stream`), "Performs file I/O operations"},
}

// DetectIntent describes what code appears to do. The first matching rule wins.
func DetectIntent(code, language string) string {
	for _, r := range intents {
		if r.re.MatchString(code) {
			return r.intent
		}
	}
	return fmt.Sprintf("This %s code performs specific operations based on the logic defined", language)
}
