package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	quiz := NewQuizService()

	tests := []struct {
		name    string
		answers []int
		want    float64
	}{
		{"all correct", []int{1, 1, 1}, 100.0},
		{"none correct", []int{0, 0, 0}, 0.0},
		{"two of three", []int{1, 0, 1}, 66.7},
		{"one of three", []int{0, 1, 0}, 33.3},
		{"empty", []int{}, 0.0},
		// values outside {0,1} are not clamped
		{"inflated", []int{2, 2, 2}, 200.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quiz.Score(tt.answers))
		})
	}
}

func TestScoreIsPure(t *testing.T) {
	quiz := NewQuizService()
	answers := []int{1, 0, 1}

	first := quiz.Score(answers)
	second := quiz.Score(answers)

	assert.Equal(t, first, second)
	assert.Equal(t, []int{1, 0, 1}, answers, "input must not be mutated")
}

func TestQuestionsLength(t *testing.T) {
	quiz := NewQuizService()
	assert.Len(t, quiz.Questions(), QuizLength)
}
