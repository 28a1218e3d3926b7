package codeanalysis

import (
	"regexp"
	"strings"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

type issueCheck struct {
	match    func(line, language string) bool
	kind     models.IssueType
	message  string
	severity models.Severity
}

var (
	ifOpen        = regexp.MustCompile(`if\s*\(`)
	singleEquals  = regexp.MustCompile(`[^=!<>]=[^=]`)
	divideByZero  = regexp.MustCompile(`/\s*0\b`)
	negativeIndex = regexp.MustCompile(`\[\s*-\d+\s*\]`)
	infiniteWhile = regexp.MustCompile(`while\s*\(\s*(true|1)\s*\)`)
	nullAssign    = regexp.MustCompile(`=\s*(null|undefined|None)\b`)
)

var issueChecks = []issueCheck{
	{
		match: func(line, _ string) bool {
			return ifOpen.MatchString(line) && singleEquals.MatchString(line)
		},
		kind:     models.IssueLogic,
		message:  "Possible assignment in condition (use == for comparison)",
		severity: models.SeverityWarning,
	},
	{
		match:    func(line, _ string) bool { return divideByZero.MatchString(line) },
		kind:     models.IssueLogic,
		message:  "Division by zero detected",
		severity: models.SeverityError,
	},
	{
		// Python allows negative indexes.
		match: func(line, language string) bool {
			return negativeIndex.MatchString(line) && language != "Python"
		},
		kind:     models.IssueEdgeCase,
		message:  "Negative array index (may cause out-of-bounds error)",
		severity: models.SeverityWarning,
	},
	{
		match:    func(line, _ string) bool { return infiniteWhile.MatchString(line) },
		kind:     models.IssueEdgeCase,
		message:  "Infinite loop detected - ensure there's a break condition",
		severity: models.SeverityInfo,
	},
	{
		match:    func(line, _ string) bool { return nullAssign.MatchString(line) },
		kind:     models.IssueEdgeCase,
		message:  "Null/undefined assignment - ensure proper null checking",
		severity: models.SeverityInfo,
	},
}

// DetectIssues runs every check against every line. A line can produce more
// than one issue.
func DetectIssues(code, language string) []models.Issue {
	issues := []models.Issue{}
	for i, line := range strings.Split(code, "\n") {
		for _, c := range issueChecks {
			if c.match(line, language) {
				issues = append(issues, models.Issue{
					Type:     c.kind,
					Line:     i + 1,
					Message:  c.message,
					Severity: c.severity,
				})
			}
		}
	}
	return issues
}
