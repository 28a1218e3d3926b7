package models

// Section is a titled paragraph picked out of a notes document
type Section struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// NotesAnalysisResult is the output of the notes assistant
type NotesAnalysisResult struct {
	Summary           string    `json:"summary" yaml:"summary"`
	KeyConceptsList   []string  `json:"keyConceptsList" yaml:"keyConceptsList"`
	SimpleExplanation string    `json:"simpleExplanation" yaml:"simpleExplanation"`
	RealWorldExamples []string  `json:"realWorldExamples" yaml:"realWorldExamples"`
	Sections          []Section `json:"sections" yaml:"sections"`
}
