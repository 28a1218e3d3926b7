package models

// IssueType classifies a finding of the code assistant
type IssueType string

const (
	IssueSyntax   IssueType = "syntax"
	IssueLogic    IssueType = "logic"
	IssueEdgeCase IssueType = "edge-case"
)

// Severity represents how serious a finding is
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Complexity is a coarse size bucket derived from the line count
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// LanguageUnknown is reported when no language signature matched
const LanguageUnknown = "Unknown"

// LineExplanation explains a single source line (1-indexed)
type LineExplanation struct {
	Line        int    `json:"line" yaml:"line"`
	Code        string `json:"code" yaml:"code"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// Issue is a lint-like finding on a single line
type Issue struct {
	Type     IssueType `json:"type" yaml:"type"`
	Line     int       `json:"line" yaml:"line"`
	Message  string    `json:"message" yaml:"message"`
	Severity Severity  `json:"severity" yaml:"severity"`
}

// DryRunStep is one step of a fabricated execution trace
type DryRunStep struct {
	Step        int               `json:"step" yaml:"step"`
	Description string            `json:"description" yaml:"description"`
	Variables   map[string]string `json:"variables" yaml:"variables"`
}

// CodeAnalysisResult is the output of the code assistant
type CodeAnalysisResult struct {
	Language              string            `json:"language" yaml:"language"`
	Intent                string            `json:"intent" yaml:"intent"`
	LineByLineExplanation []LineExplanation `json:"lineByLineExplanation" yaml:"lineByLineExplanation"`
	Errors                []Issue           `json:"errors" yaml:"errors"`
	DryRun                []DryRunStep      `json:"dryRun" yaml:"dryRun"`
	Improvements          []string          `json:"improvements" yaml:"improvements"`
	Complexity            Complexity        `json:"complexity" yaml:"complexity"`
}

// HasIssues returns true if any finding was reported
func (r *CodeAnalysisResult) HasIssues() bool {
	return len(r.Errors) > 0
}

// IssuesBySeverity returns the findings with the given severity
func (r *CodeAnalysisResult) IssuesBySeverity(s Severity) []Issue {
	var out []Issue
	for _, issue := range r.Errors {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}
