package http

import (
	"math"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/leaderboard"
	"github.com/quizforge/quizforge/internal/quiz"
)

// ListUsers returns registered users one page at a time.
func (a *API) ListUsers(w http.ResponseWriter, r *http.Request) {
	page := parseIntDefault(r.URL.Query().Get("page"), 1)
	perPage := parseIntDefault(r.URL.Query().Get("limit"), leaderboard.DefaultPerPage)
	if perPage > leaderboard.MaxPerPage {
		perPage = leaderboard.MaxPerPage
	}
	total, err := a.store.CountUsers(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	users, err := a.store.ListUsers(r.Context(), perPage, (page-1)*perPage)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": true,
		"users":  users,
		"pagination": leaderboard.Meta{
			TotalItems:  total,
			TotalPages:  totalPages,
			CurrentPage: page,
			PerPage:     perPage,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	})
}

// GetUser returns a user profile enriched with quiz statistics: how
// many questions exist overall, what the user attempted and got right,
// their total time, and their rank by total correct answers.
func (a *API) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := a.store.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	quizzes, err := a.store.ListQuizzes(r.Context(), "")
	if err != nil {
		writeStoreError(w, err)
		return
	}
	totalQuestions := 0
	for _, q := range quizzes {
		totalQuestions += len(q.Questions)
	}
	userSubs, err := a.store.ListSubmissionsByUser(r.Context(), user.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	attempted, correct := 0, 0
	timeTaken := 0.0
	for _, s := range userSubs {
		attempted += s.TotalQuestions
		correct += s.CorrectAnswers
		if s.TimeTaken > 0 {
			timeTaken += s.TimeTaken
		}
	}
	rank, err := a.userRank(r, user.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": true,
		"user":   user,
		"stats": map[string]any{
			"total_questions":           totalQuestions,
			"total_attempted_questions": attempted,
			"total_correct":             correct,
			"total_time_taken":          math.Round(timeTaken*100) / 100,
			"rank":                      rank,
			"is_quiz_attempted":         len(userSubs) > 0,
		},
	})
}

// userRank orders every submitter by summed correct answers and finds
// the position of userID. Users with no submissions rank 0.
func (a *API) userRank(r *http.Request, userID string) (int, error) {
	subs, err := a.store.ListSubmissions(r.Context())
	if err != nil {
		return 0, err
	}
	totals := map[string]int{}
	order := []string{}
	for _, s := range subs {
		if _, seen := totals[s.UserID]; !seen {
			order = append(order, s.UserID)
		}
		totals[s.UserID] += s.CorrectAnswers
	}
	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	for i, id := range order {
		if id == userID {
			return i + 1, nil
		}
	}
	return 0, nil
}

// QuizHistory lists a user's submissions newest first, with quiz
// titles resolved and a percentage score per attempt.
func (a *API) QuizHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var user quiz.User
	if strings.EqualFold(userID, "admin") {
		user = quiz.User{ID: "admin", Name: a.admin.Name, Email: a.admin.Username, Role: "admin"}
	} else {
		found, err := a.store.GetUser(r.Context(), userID)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		user = found
	}
	subs, err := a.store.ListSubmissionsByUser(r.Context(), user.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	titles := map[string]string{}
	history := make([]map[string]any, 0, len(subs))
	for _, s := range subs {
		title, ok := titles[s.QuizID]
		if !ok {
			if q, err := a.store.GetQuiz(r.Context(), s.QuizID); err == nil {
				title = q.Title
			} else {
				title = "Unknown Quiz"
			}
			titles[s.QuizID] = title
		}
		pct := 0.0
		if s.TotalQuestions > 0 {
			pct = math.Round(float64(s.CorrectAnswers)/float64(s.TotalQuestions)*10000) / 100
		}
		history = append(history, map[string]any{
			"submission_id":    s.ID,
			"quiz_id":          s.QuizID,
			"quiz_title":       title,
			"correct_answers":  s.CorrectAnswers,
			"total_questions":  s.TotalQuestions,
			"score_percentage": pct,
			"time_taken":       s.TimeTaken,
			"submitted_at":     s.SubmittedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": true,
		"user_info": map[string]any{
			"user_id": user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"role":    user.Role,
		},
		"total_attempts": len(history),
		"quiz_history":   history,
	})
}
