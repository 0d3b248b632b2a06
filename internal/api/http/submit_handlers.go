package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/scoring"
)

type submitRequest struct {
	Answers []string `json:"answers"`
	Time    float64  `json:"time"`
}

// SubmitQuiz grades a positional answer sheet: answers[i] is matched
// against question i of the quiz.
func (a *API) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Answers == nil {
		writeError(w, http.StatusBadRequest, "answers must be provided as an array")
		return
	}
	if req.Time < 0 {
		writeError(w, http.StatusBadRequest, "time must not be negative")
		return
	}
	q, err := a.store.GetQuiz(r.Context(), chi.URLParam(r, "quizID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	result := scoring.ScorePositional(q.Questions, req.Answers, req.Time)
	a.persistSubmission(w, r, q, result)
}

type submitDetailedRequest struct {
	Questions []scoring.Answer `json:"questions"`
}

// SubmitQuizDetailed grades per-question entries keyed by question id.
// Unanswered and blank entries never count as correct.
func (a *API) SubmitQuizDetailed(w http.ResponseWriter, r *http.Request) {
	var req submitDetailedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Questions == nil {
		writeError(w, http.StatusBadRequest, "questions must be provided as an array")
		return
	}
	q, err := a.store.GetQuiz(r.Context(), chi.URLParam(r, "quizID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	result := scoring.ScoreByQuestion(q.Questions, req.Questions)
	a.persistSubmission(w, r, q, result)
}

func (a *API) persistSubmission(w http.ResponseWriter, r *http.Request, q quiz.Quiz, result scoring.Result) {
	claims := auth.ClaimsFromContext(r.Context())
	sub := quiz.Submission{
		QuizID:         q.ID,
		UserID:         claims.UserID,
		Username:       claims.Name,
		CorrectAnswers: result.CorrectAnswers,
		TotalQuestions: result.TotalQuestions,
		TimeTaken:      result.TimeTaken,
		Questions:      result.Questions,
	}
	saved, err := a.store.InsertSubmission(r.Context(), sub)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        true,
		"message":       "quiz submitted successfully",
		"submission_id": saved.ID,
		"result": map[string]any{
			"correct_answers":          result.CorrectAnswers,
			"total_questions":          result.TotalQuestions,
			"total_answered_questions": result.AnsweredCount,
			"time_taken":               result.TimeTaken,
		},
		"questions": result.Questions,
	})
}
