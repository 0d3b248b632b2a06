package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/quizforge/quizforge/internal/quiz"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"status": false, "error": msg})
}

// writeStoreError maps store sentinels onto HTTP statuses. Unknown
// errors surface as 500 with the underlying message.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrUserExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, quiz.ErrUserNotFound),
		errors.Is(err, quiz.ErrQuizNotFound),
		errors.Is(err, quiz.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, quiz.ErrLastQuestion):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
