package game

import (
	"math"
	"strings"
)

// Answer is one submitted (question, option label) pair.
type Answer struct {
	QuestionID uint
	Answer     string
}

// AnswerKey maps question IDs to their correct option label, lower-cased.
type AnswerKey map[uint]string

// NewAnswerKey lower-cases the correct labels once at load time.
func NewAnswerKey(correct map[uint]string) AnswerKey {
	key := make(AnswerKey, len(correct))
	for id, label := range correct {
		key[id] = strings.ToLower(label)
	}
	return key
}

type GradedAnswer struct {
	QuestionID uint
	Answer     string
	Correct    bool
}

type GradeResult struct {
	CorrectCount int
	Answers      []GradedAnswer
}

// Grade compares submitted answers against the key, case-insensitively on the
// label. An unknown question ID counts as incorrect. Duplicate question IDs
// are each graded and counted; callers are expected to submit each question
// once.
func Grade(answers []Answer, key AnswerKey) GradeResult {
	result := GradeResult{Answers: make([]GradedAnswer, 0, len(answers))}

	for _, a := range answers {
		submitted := strings.ToLower(a.Answer)
		correct, ok := key[a.QuestionID]
		isCorrect := ok && submitted == correct

		if isCorrect {
			result.CorrectCount++
		}
		result.Answers = append(result.Answers, GradedAnswer{
			QuestionID: a.QuestionID,
			Answer:     submitted,
			Correct:    isCorrect,
		})
	}

	return result
}

// ChapterScore normalizes a chapter result to an integer in [0,100].
func ChapterScore(correctCount, totalQuestions int) int {
	return int(math.Round(float64(correctCount) / math.Max(1, float64(totalQuestions)) * 100))
}
