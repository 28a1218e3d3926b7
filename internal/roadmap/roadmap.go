// Package roadmap builds staged learning plans from a curated topic table.
package roadmap

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

// DefaultTopic is used when no keyword of any other topic matches the goal.
const DefaultTopic = "default"

const (
	minGoalLength  = 3
	maxTitleLength = 50
)

//go:embed topics.yaml
var topicsYAML []byte

type topic struct {
	Key      string         `yaml:"key"`
	Keywords []string       `yaml:"keywords"`
	Duration string         `yaml:"duration"`
	Stages   []models.Stage `yaml:"stages"`
}

var catalog []topic

func init() {
	var err error
	catalog, err = parseTopics(topicsYAML)
	if err != nil {
		panic(err)
	}
}

func parseTopics(data []byte) ([]topic, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var topics []topic
	if err := dec.Decode(&topics); err != nil {
		return nil, fmt.Errorf("parsing roadmap topics: %w", err)
	}
	if !slices.ContainsFunc(topics, func(t topic) bool { return t.Key == DefaultTopic }) {
		return nil, fmt.Errorf("roadmap topics: missing %q topic", DefaultTopic)
	}
	return topics, nil
}

// Generate returns a roadmap for goal. Goals shorter than three characters
// produce a placeholder with no stages.
func Generate(goal string) models.RoadmapResult {
	if utf8.RuneCountInString(strings.TrimSpace(goal)) < minGoalLength {
		return models.RoadmapResult{
			Goal:              "Please provide a learning goal",
			EstimatedDuration: "Unknown",
			Stages:            []models.Stage{},
		}
	}

	t := lookup(Match(goal))
	stages := make([]models.Stage, len(t.Stages))
	for i, s := range t.Stages {
		stages[i] = models.Stage{
			Level:       s.Level,
			Title:       stageTitle(s.Title, goal),
			Description: s.Description,
			Topics:      slices.Clone(s.Topics),
			Resources:   slices.Clone(s.Resources),
		}
	}

	return models.RoadmapResult{
		Goal:              upperFirst(goal),
		EstimatedDuration: t.Duration,
		Stages:            stages,
	}
}

// Match returns the key of the first topic with a keyword contained in goal.
func Match(goal string) string {
	lower := strings.ToLower(goal)
	for _, t := range catalog {
		if t.Key == DefaultTopic {
			continue
		}
		for _, kw := range t.Keywords {
			if strings.Contains(lower, kw) {
				return t.Key
			}
		}
	}
	return DefaultTopic
}

// Topics lists the topic keys in the order they are matched.
func Topics() []string {
	keys := make([]string, len(catalog))
	for i, t := range catalog {
		keys[i] = t.Key
	}
	return keys
}

// Keywords returns the match keywords of a topic, or nil for unknown keys.
func Keywords(key string) []string {
	for _, t := range catalog {
		if t.Key == key {
			return slices.Clone(t.Keywords)
		}
	}
	return nil
}

func lookup(key string) topic {
	for _, t := range catalog {
		if t.Key == key {
			return t
		}
	}
	panic("roadmap: unknown topic " + key)
}

// stageTitle mentions the goal in "Fundamentals" titles. The result is cut
// at 50 characters even if that splits a word.
func stageTitle(title, goal string) string {
	title = strings.Replace(title, "Fundamentals", goal+" Fundamentals", 1)
	if runes := []rune(title); len(runes) > maxTitleLength {
		return string(runes[:maxTitleLength])
	}
	return title
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
