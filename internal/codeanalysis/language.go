package codeanalysis

import (
	"regexp"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

type languageSignature struct {
	name     string
	patterns []*regexp.Regexp
}

// Order matters: the first language to reach the highest score wins.
var languages = []languageSignature{
	{"Python", compileAll(
		`\bdef\s+\w+\s*\(`,
		`\bprint\s*\(`,
		`\bimport\s+\w+`,
		`:\s*$`,
		`\bself\.`,
	)},
	{"JavaScript", compileAll(
		`\bconst\s+`,
		`\blet\s+`,
		`\bfunction\s+`,
		`\b=>\s*\{?`,
		`console\.log`,
	)},
	{"TypeScript", compileAll(
		`:\s*(string|number|boolean|any)`,
		`\binterface\s+`,
		`\btype\s+\w+\s*=`,
		`<\w+>`,
	)},
	{"Java", compileAll(
		`\bpublic\s+class\s+`,
		`\bprivate\s+`,
		`\bSystem\.out\.print`,
		`\bvoid\s+main`,
	)},
	{"C++", compileAll(
		`#include\s*<`,
		`\bstd::`,
		`\bcout\s*<<`,
		`\bint\s+main\s*\(`,
	)},
	{"C", compileAll(
		`#include\s*<stdio`,
		`\bprintf\s*\(`,
		`\bint\s+main\s*\(`,
		`\bmalloc\s*\(`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// DetectLanguage scores code against each language's signatures and returns
// the best match, or models.LanguageUnknown when nothing matched.
func DetectLanguage(code string) string {
	best, bestScore := models.LanguageUnknown, 0
	for _, lang := range languages {
		score := 0
		for _, re := range lang.patterns {
			if re.MatchString(code) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = lang.name, score
		}
	}
	return best
}

// Languages returns the names DetectLanguage can report, in tie-break order.
func Languages() []string {
	names := make([]string, len(languages))
	for i, l := range languages {
		names[i] = l.name
	}
	return names
}
