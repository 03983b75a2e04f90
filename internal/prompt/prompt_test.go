package prompt

import (
	"strings"
	"testing"

	"github.com/fadilmartias/mock-interview/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestGenerateQuestionsCarriesJobInfo(t *testing.T) {
	p := GenerateQuestions("Backend Engineer", "Build APIs", 5, "Go, PostgreSQL", "Technical", "")

	assert.Contains(t, p, "5 Technical interview questions")
	assert.Contains(t, p, "Job Position: Backend Engineer")
	assert.Contains(t, p, "Years of Experience Required: 5")
	assert.Contains(t, p, "Tech Stacks: Go, PostgreSQL")
	assert.Contains(t, p, "Not provided")
}

func TestEvaluateAnswerResumeBlockOnlyWhenPresent(t *testing.T) {
	q := model.Question{Question: "What is a goroutine?", Answer: "A lightweight thread."}

	withResume := EvaluateAnswer(q, "it runs concurrently", "10 years of Go")
	assert.Contains(t, withResume, "Resume Context: 10 years of Go")
	assert.Contains(t, withResume, "resumeFeedback")

	withoutResume := EvaluateAnswer(q, "it runs concurrently", "")
	assert.NotContains(t, withoutResume, "Resume Context")
	assert.NotContains(t, withoutResume, "resumeFeedback")
	assert.Contains(t, withoutResume, `you MUST ask a "followUpQuestion"`)
}

func TestEvaluateFollowUpOmitsModelAnswer(t *testing.T) {
	p := EvaluateFollowUp("Can you give a concrete example?", "sure, once I...", "What is a goroutine?")

	assert.Contains(t, p, `Question: "Can you give a concrete example?"`)
	assert.Contains(t, p, `Context (Previous Question): "What is a goroutine?"`)
	assert.False(t, strings.Contains(p, "Correct Answer Context"))
}
