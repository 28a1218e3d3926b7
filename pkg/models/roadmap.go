package models

// Level is the difficulty of a roadmap stage
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// ResourceType is the kind of a learning resource
type ResourceType string

const (
	ResourceVideo    ResourceType = "video"
	ResourceDocs     ResourceType = "docs"
	ResourcePractice ResourceType = "practice"
	ResourceProject  ResourceType = "project"
)

// Topic is a single item to learn within a stage
type Topic struct {
	Name     string `json:"name" yaml:"name"`
	Duration string `json:"duration" yaml:"duration"`
}

// Resource points at external learning material
type Resource struct {
	Type     ResourceType `json:"type" yaml:"type"`
	Title    string       `json:"title" yaml:"title"`
	URL      string       `json:"url" yaml:"url"`
	Platform string       `json:"platform" yaml:"platform"`
}

// Stage is one level of a learning roadmap
type Stage struct {
	Level       Level      `json:"level" yaml:"level"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Topics      []Topic    `json:"topics" yaml:"topics"`
	Resources   []Resource `json:"resources" yaml:"resources"`
}

// RoadmapResult is the output of the roadmap assistant
type RoadmapResult struct {
	Goal              string  `json:"goal" yaml:"goal"`
	EstimatedDuration string  `json:"estimatedDuration" yaml:"estimatedDuration"`
	Stages            []Stage `json:"stages" yaml:"stages"`
}
