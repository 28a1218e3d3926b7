package notes

import "strings"

type analogy struct {
	keyword string
	example string
}

// analogies is matched against lower-cased keywords in declaration order.
var analogies = []analogy{
	{"algorithm", "Like following a recipe step-by-step to bake a cake"},
	{"function", "Similar to a vending machine that takes input (money) and gives output (snack)"},
	{"variable", "Like a labeled box where you can store and change items"},
	{"loop", "Like brushing your teeth every day - same action repeated"},
	{"array", "Like a row of mailboxes, each with a number and can hold mail"},
	{"object", "Like a car with properties (color, speed) and actions (drive, stop)"},
	{"class", "Like a blueprint for building houses - same plan, different houses"},
	{"database", "Like a digital filing cabinet with organized folders"},
	{"network", "Like roads connecting different cities together"},
	{"security", "Like locks and keys protecting your home"},
	{"api", "Like a waiter taking your order to the kitchen and bringing food back"},
	{"machine", "Like teaching a child by showing examples until they learn patterns"},
	{"data", "Like collecting puzzle pieces to see the full picture"},
	{"process", "Like an assembly line in a factory, step by step"},
	{"system", "Like the human body with organs working together"},
}

var genericExamples = []string{
	"Think of the main concepts as building blocks that stack on top of each other",
	"Each new idea connects to what you already know, like adding pieces to a puzzle",
}

// Examples maps keywords to everyday analogies, padding with generic ones
// when fewer than two keywords match.
func Examples(kws []string) []string {
	examples := []string{}
	for _, kw := range kws {
		if len(examples) >= maxExamples {
			break
		}
		lower := strings.ToLower(kw)
		for _, a := range analogies {
			if strings.Contains(lower, a.keyword) {
				examples = append(examples, "**"+kw+"**: "+a.example)
				break
			}
		}
	}

	if len(examples) < 2 {
		examples = append(examples, genericExamples...)
	}
	return examples
}
