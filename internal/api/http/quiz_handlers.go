package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/quiz"
)

type incomingQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// validateQuestions checks each incoming question and assigns fresh ids.
func validateQuestions(in []incomingQuestion) ([]quiz.Question, error) {
	out := make([]quiz.Question, 0, len(in))
	for i, q := range in {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("question %d must have a question field", i+1)
		}
		if len(q.Options) < 2 {
			return nil, fmt.Errorf("question %d must have at least 2 options", i+1)
		}
		valid := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("question %d correct_answer must be one of its options", i+1)
		}
		out = append(out, quiz.Question{
			ID:            uuid.NewString(),
			Prompt:        q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return out, nil
}

type createQuizRequest struct {
	Title     string             `json:"title"`
	Questions []incomingQuestion `json:"questions"`
}

func (a *API) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var req createQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if len(req.Questions) == 0 {
		writeError(w, http.StatusBadRequest, "at least one question is required")
		return
	}
	questions, err := validateQuestions(req.Questions)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	claims := auth.ClaimsFromContext(r.Context())
	createdBy := claims.Name
	if createdBy == "" {
		createdBy = a.admin.Name
	}
	created, err := a.store.CreateQuiz(r.Context(), quiz.Quiz{
		Title:     strings.TrimSpace(req.Title),
		Questions: questions,
		CreatedBy: createdBy,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  true,
		"message": "quiz created successfully",
		"quiz":    created.Sanitized(),
	})
}

// ListQuizzes is public: answers are stripped from every question.
func (a *API) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := a.store.ListQuizzes(r.Context(), r.URL.Query().Get("created_by"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	out := make([]quiz.Quiz, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, q.Sanitized())
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  true,
		"quizzes": out,
		"total":   len(out),
	})
}

// ListQuizzesDetailed returns quizzes with correct answers included.
func (a *API) ListQuizzesDetailed(w http.ResponseWriter, r *http.Request) {
	quizzes, err := a.store.ListQuizzes(r.Context(), r.URL.Query().Get("created_by"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  true,
		"quizzes": quizzes,
		"total":   len(quizzes),
	})
}

func (a *API) GetQuiz(w http.ResponseWriter, r *http.Request) {
	q, err := a.store.GetQuiz(r.Context(), chi.URLParam(r, "quizID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": true,
		"quiz":   q.Sanitized(),
	})
}

type updateQuizRequest struct {
	Title     *string            `json:"title"`
	Questions []incomingQuestion `json:"questions"`
}

// UpdateQuiz renames a quiz, appends questions, or both. Appended
// questions get fresh ids; existing questions are untouched.
func (a *API) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	var req updateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Title == nil && len(req.Questions) == 0 {
		writeError(w, http.StatusBadRequest, "no fields provided for update")
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title must not be empty")
		return
	}
	q, err := a.store.GetQuiz(r.Context(), chi.URLParam(r, "quizID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if req.Title != nil {
		q.Title = strings.TrimSpace(*req.Title)
	}
	if len(req.Questions) > 0 {
		added, err := validateQuestions(req.Questions)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		q.Questions = append(q.Questions, added...)
	}
	q.TotalQuestions = len(q.Questions)
	q.UpdatedBy = auth.ClaimsFromContext(r.Context()).Name
	if err := a.store.UpdateQuiz(r.Context(), q); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  true,
		"message": "quiz updated successfully",
		"quiz":    q.Sanitized(),
	})
}

func (a *API) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "quizID")
	q, err := a.store.GetQuiz(r.Context(), quizID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if err := a.store.DeleteQuiz(r.Context(), quizID); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  true,
		"message": "quiz deleted successfully",
		"deleted_quiz": map[string]any{
			"quiz_id":         q.ID,
			"title":           q.Title,
			"total_questions": q.TotalQuestions,
		},
	})
}

// DeleteQuestion removes one question from a quiz. A quiz always keeps
// at least one question; deleting the last one is rejected.
func (a *API) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "quizID")
	questionID := chi.URLParam(r, "questionID")

	q, err := a.store.GetQuiz(r.Context(), quizID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	idx := -1
	for i, question := range q.Questions {
		if question.ID == questionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		writeStoreError(w, quiz.ErrQuestionNotFound)
		return
	}
	if len(q.Questions) == 1 {
		writeStoreError(w, quiz.ErrLastQuestion)
		return
	}
	removed := q.Questions[idx]
	q.Questions = append(q.Questions[:idx], q.Questions[idx+1:]...)
	q.TotalQuestions = len(q.Questions)
	q.UpdatedBy = auth.ClaimsFromContext(r.Context()).Name
	if err := a.store.UpdateQuiz(r.Context(), q); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  true,
		"message": "question deleted successfully",
		"deleted_question": map[string]any{
			"question_id": removed.ID,
			"question":    removed.Prompt,
			"options":     removed.Options,
		},
		"quiz_id":             q.ID,
		"quiz_title":          q.Title,
		"remaining_questions": len(q.Questions),
	})
}
