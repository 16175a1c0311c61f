// Package tutor implements the canned-answer tutor.
package tutor

import "strings"

// Category is the subject a question was classified into
type Category string

const (
	CategoryMath    Category = "math"
	CategoryScience Category = "science"
	CategoryEnglish Category = "english"
	CategoryCoding  Category = "coding"
	CategoryDefault Category = "default"
)

// rule maps a set of keywords to a category
type rule struct {
	category Category
	keywords []string
}

// rules are checked in order; the first rule with a matching keyword wins
var rules = []rule{
	{category: CategoryMath, keywords: []string{"math", "algebra", "calculate"}},
	{category: CategoryScience, keywords: []string{"science", "photo", "physics"}},
	{category: CategoryEnglish, keywords: []string{"english", "grammar", "writing"}},
	{category: CategoryCoding, keywords: []string{"code", "python", "programming"}},
}

var responses = map[Category]string{
	CategoryMath:    "Let me help you with that math problem! I'll break it down step by step so it's easy to understand.",
	CategoryScience: "Great science question! Let me explain this concept with some examples and illustrations.",
	CategoryEnglish: "I'd be happy to help with English! Let's work through this together.",
	CategoryCoding:  "Excellent! Let's dive into coding. I'll show you the concepts with practical examples.",
	CategoryDefault: "That's an interesting question! Let me provide you with a comprehensive explanation with examples.",
}

// Classify returns the category of a question by case-insensitive substring match
func Classify(question string) Category {
	lower := strings.ToLower(question)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lower, keyword) {
				return r.category
			}
		}
	}
	return CategoryDefault
}

// Response returns the canned answer of a category
func Response(category Category) string {
	if resp, ok := responses[category]; ok {
		return resp
	}
	return responses[CategoryDefault]
}

// Respond classifies the question and returns its canned answer
func Respond(question string) string {
	return Response(Classify(question))
}

// Greeting is the first message of every chat
func Greeting(name string) string {
	return "Hello " + name + "! I'm your AI tutor. I can help you with Math, Science, English, Coding, and more. What would you like to learn today?"
}

// Suggestions are the quick prompts offered under the chat input
var Suggestions = []string{
	"Explain photosynthesis",
	"Help with algebra",
	"Grammar rules",
	"Python basics",
}
