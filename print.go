package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	bold    = color.New(color.Bold)
	dim     = color.New(color.FgHiBlack)
)

func rule(w io.Writer) {
	_, _ = dim.Fprintln(w, strings.Repeat("━", 50))
}

func printNotes(w io.Writer, r models.NotesAnalysisResult) {
	_, _ = heading.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, r.Summary)
	fmt.Fprintln(w)

	if len(r.KeyConceptsList) > 0 {
		_, _ = heading.Fprintln(w, "KEY CONCEPTS")
		fmt.Fprintln(w, strings.Join(r.KeyConceptsList, ", "))
		fmt.Fprintln(w)
	}

	_, _ = heading.Fprintln(w, "IN SIMPLE TERMS")
	fmt.Fprintln(w, r.SimpleExplanation)

	if len(r.Sections) > 0 {
		fmt.Fprintln(w)
		_, _ = heading.Fprintln(w, "SECTIONS")
		for i, s := range r.Sections {
			if i > 0 {
				rule(w)
			}
			_, _ = bold.Fprintln(w, s.Title)
			fmt.Fprintln(w, s.Content)
		}
	}

	if len(r.RealWorldExamples) > 0 {
		fmt.Fprintln(w)
		_, _ = heading.Fprintln(w, "REAL-WORLD EXAMPLES")
		for _, ex := range r.RealWorldExamples {
			fmt.Fprintf(w, "  - %s\n", ex)
		}
	}
}

func severityColor(s models.Severity) *color.Color {
	switch s {
	case models.SeverityError:
		return color.New(color.FgRed, color.Bold)
	case models.SeverityWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgBlue)
	}
}

func formatVariables(vars map[string]string) string {
	parts := make([]string, 0, len(vars))
	for _, k := range slices.Sorted(maps.Keys(vars)) {
		parts = append(parts, k+"="+vars[k])
	}
	return strings.Join(parts, ", ")
}

func printCode(w io.Writer, r models.CodeAnalysisResult) {
	_, _ = bold.Fprintf(w, "%s", r.Language)
	_, _ = dim.Fprintf(w, " (%s)\n", r.Complexity)
	fmt.Fprintln(w, r.Intent)

	if len(r.LineByLineExplanation) > 0 {
		fmt.Fprintln(w)
		_, _ = heading.Fprintln(w, "LINE BY LINE")
		for _, l := range r.LineByLineExplanation {
			_, _ = dim.Fprintf(w, "%4d  ", l.Line)
			fmt.Fprintln(w, l.Code)
			fmt.Fprintf(w, "      %s\n", l.Explanation)
		}
	}

	if r.HasIssues() {
		fmt.Fprintln(w)
		_, _ = heading.Fprintln(w, "ISSUES")
		for _, issue := range r.Errors {
			_, _ = severityColor(issue.Severity).Fprintf(w, "  %-7s", strings.ToUpper(string(issue.Severity)))
			fmt.Fprintf(w, " line %d: %s [%s]\n", issue.Line, issue.Message, issue.Type)
		}
	}

	if len(r.DryRun) > 0 {
		fmt.Fprintln(w)
		_, _ = heading.Fprintln(w, "DRY RUN")
		for _, step := range r.DryRun {
			fmt.Fprintf(w, "  %d. %s", step.Step, step.Description)
			if len(step.Variables) > 0 {
				_, _ = dim.Fprintf(w, "  {%s}", formatVariables(step.Variables))
			}
			fmt.Fprintln(w)
		}
	}

	if len(r.Improvements) > 0 {
		fmt.Fprintln(w)
		_, _ = heading.Fprintln(w, "IMPROVEMENTS")
		for _, tip := range r.Improvements {
			fmt.Fprintf(w, "  - %s\n", tip)
		}
	}
}

func printRoadmap(w io.Writer, r models.RoadmapResult) {
	_, _ = bold.Fprintln(w, r.Goal)
	_, _ = dim.Fprintf(w, "Estimated duration: %s\n", r.EstimatedDuration)

	for _, stage := range r.Stages {
		fmt.Fprintln(w)
		rule(w)
		_, _ = heading.Fprintf(w, "[%s] ", stage.Level)
		_, _ = bold.Fprintln(w, stage.Title)
		fmt.Fprintln(w, stage.Description)

		for _, t := range stage.Topics {
			fmt.Fprintf(w, "  • %s", t.Name)
			_, _ = dim.Fprintf(w, " (%s)\n", t.Duration)
		}
		if len(stage.Resources) > 0 {
			fmt.Fprintln(w, "  Resources:")
			for _, res := range stage.Resources {
				fmt.Fprintf(w, "    [%s] %s - %s", res.Type, res.Title, res.Platform)
				_, _ = dim.Fprintf(w, " %s\n", res.URL)
			}
		}
	}
}

func printTopics(w io.Writer, topics []string) {
	for _, t := range topics {
		fmt.Fprintln(w, t)
	}
}
