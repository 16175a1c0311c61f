package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		question string
		expected Category
	}{
		{question: "Help with algebra", expected: CategoryMath},
		{question: "Explain photosynthesis", expected: CategoryScience},
		{question: "Grammar rules", expected: CategoryEnglish},
		{question: "Python basics", expected: CategoryCoding},
		{question: "asdf", expected: CategoryDefault},
		{question: "", expected: CategoryDefault},
		{question: "CALCULATE the area", expected: CategoryMath},
		{question: "Quantum PHYSICS", expected: CategoryScience},
		{question: "creative Writing tips", expected: CategoryEnglish},
		{question: "how do I code a loop", expected: CategoryCoding},
		// first matching rule wins
		{question: "python for math homework", expected: CategoryMath},
		{question: "science of programming", expected: CategoryScience},
		{question: "english essay about photos", expected: CategoryScience},
		{question: "grammar of programming languages", expected: CategoryEnglish},
		// substring match, not word match
		{question: "aftermath", expected: CategoryMath},
		{question: "decoder ring", expected: CategoryCoding},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.question))
		})
	}
}

func TestRespond(t *testing.T) {
	assert.Equal(t, responses[CategoryMath], Respond("Help with algebra"))
	assert.Equal(t, responses[CategoryScience], Respond("Explain photosynthesis"))
	assert.Equal(t, responses[CategoryEnglish], Respond("grammar"))
	assert.Equal(t, responses[CategoryCoding], Respond("Python basics"))
	assert.Equal(t, responses[CategoryDefault], Respond("asdf"))
}

func TestResponse_UnknownCategory(t *testing.T) {
	assert.Equal(t, responses[CategoryDefault], Response("history"))
}

func TestGreeting(t *testing.T) {
	assert.Equal(t,
		"Hello Asha! I'm your AI tutor. I can help you with Math, Science, English, Coding, and more. What would you like to learn today?",
		Greeting("Asha"),
	)
}

func TestSuggestionsAreClassified(t *testing.T) {
	expected := []Category{CategoryScience, CategoryMath, CategoryEnglish, CategoryCoding}
	for i, s := range Suggestions {
		assert.Equal(t, expected[i], Classify(s), s)
	}
}
