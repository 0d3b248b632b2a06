// Package scoring grades a set of user answers against a quiz's
// question sequence. It is pure: no storage access, so it can be
// tested without a store. Persisting the resulting submission is the
// caller's job.
package scoring

import (
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

// Answer is one entry of the by-question-id submission shape.
type Answer struct {
	QuestionID string  `json:"question_id"`
	Answer     string  `json:"answer"`
	Answered   bool    `json:"answered"`
	TimeTaken  float64 `json:"time_taken"`
}

// Result is the outcome of grading one attempt. TotalQuestions always
// equals the quiz's question count, regardless of how many answers the
// caller supplied.
type Result struct {
	Questions      []quiz.QuestionResult
	CorrectAnswers int
	TotalQuestions int
	TimeTaken      float64
	// AnsweredCount is only populated in by-question-id mode: the number
	// of entries flagged as answered.
	AnsweredCount int
}

// ScorePositional grades answers aligned by index to the quiz's
// question order. A missing answer at index i is "no answer" and never
// counts correct. timeTaken is caller-supplied for the whole attempt.
func ScorePositional(questions []quiz.Question, answers []string, timeTaken float64) Result {
	res := Result{
		Questions:      make([]quiz.QuestionResult, 0, len(questions)),
		TotalQuestions: len(questions),
		TimeTaken:      timeTaken,
	}
	for i, q := range questions {
		userAnswer := ""
		answered := false
		if i < len(answers) {
			userAnswer = answers[i]
			answered = true
		}
		correct := answered && equalAnswers(userAnswer, q.CorrectAnswer)
		if correct {
			res.CorrectAnswers++
		}
		res.Questions = append(res.Questions, quiz.QuestionResult{
			QuestionID:    q.ID,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    userAnswer,
			Correct:       correct,
		})
	}
	return res
}

// ScoreByQuestion grades answers keyed by question id. Only entries
// marked answered with a non-empty answer participate in grading;
// elapsed time accumulates over entries with a positive per-question
// time. Output preserves the quiz's question order.
func ScoreByQuestion(questions []quiz.Question, entries []Answer) Result {
	res := Result{
		Questions:      make([]quiz.QuestionResult, 0, len(questions)),
		TotalQuestions: len(questions),
	}

	byID := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.TimeTaken > 0 {
			res.TimeTaken += e.TimeTaken
		}
		if e.Answered {
			res.AnsweredCount++
			if e.Answer != "" {
				byID[e.QuestionID] = e.Answer
			}
		}
	}

	for _, q := range questions {
		userAnswer, answered := byID[q.ID]
		correct := answered && equalAnswers(userAnswer, q.CorrectAnswer)
		if correct {
			res.CorrectAnswers++
		}
		res.Questions = append(res.Questions, quiz.QuestionResult{
			QuestionID:    q.ID,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    userAnswer,
			Correct:       correct,
		})
	}
	return res
}

// equalAnswers compares after trimming surrounding whitespace and
// lowercasing both sides.
func equalAnswers(a, b string) bool {
	return strings.ToLower(strings.TrimSpace(a)) == strings.ToLower(strings.TrimSpace(b))
}
