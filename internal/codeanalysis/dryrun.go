package codeanalysis

import (
	"fmt"
	"maps"
	"regexp"
	"strings"
	"unicode"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

const dryRunLines = 10

var (
	declaration = regexp.MustCompile(`(?:const|let|var|int|float|double)\s+(\w+)\s*=\s*(.+)`)
	loopWord    = regexp.MustCompile(`for|while`)
	outputCall  = regexp.MustCompile(`print|console\.log|System\.out`)
)

// DryRun fabricates an execution trace from the first ten non-blank lines.
// Each step carries a snapshot of the variables declared so far.
func DryRun(code string) []models.DryRunStep {
	vars := map[string]string{}
	var steps []models.DryRunStep

	add := func(desc string) {
		steps = append(steps, models.DryRunStep{
			Step:        len(steps) + 1,
			Description: desc,
			Variables:   maps.Clone(vars),
		})
	}

	seen := 0
	for _, line := range strings.Split(code, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if seen == dryRunLines {
			break
		}
		seen++

		if m := declaration.FindStringSubmatch(line); m != nil {
			name := m[1]
			vars[name] = strings.TrimSuffix(strings.TrimRightFunc(m[2], unicode.IsSpace), ";")
			add(fmt.Sprintf("Initialize variable '%s' with value %s", name, vars[name]))
			continue
		}

		switch {
		case loopWord.MatchString(line):
			add("Enter loop - will iterate based on condition")
		case ifOpen.MatchString(line):
			add("Evaluate condition - branch based on result")
		case outputCall.MatchString(line):
			add("Output to console")
		case strings.Contains(line, "return"):
			add("Return value and exit function")
		}
	}

	if len(steps) == 0 {
		return []models.DryRunStep{
			{Step: 1, Description: "Program starts execution", Variables: map[string]string{}},
			{Step: 2, Description: "Process main logic", Variables: map[string]string{}},
			{Step: 3, Description: "Program completes", Variables: map[string]string{}},
		}
	}
	return steps
}
