package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/rbac"
)

// Routes assembles the full route table. Public endpoints come first;
// everything else sits behind token auth plus a permission check.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", a.Health)
	r.Post("/register", a.Register)
	r.Post("/login", a.Login)
	r.Post("/decode-token", a.DecodeToken)
	r.Get("/quizzes", a.ListQuizzes)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAuth(a.tokens))

		pr.With(rbac.Require("token:verify")).Get("/verify-token", a.VerifyToken)
		pr.With(rbac.Require("quiz:view")).Get("/quiz/{quizID}", a.GetQuiz)
		pr.With(rbac.Require("quiz:submit")).Post("/quiz/{quizID}/submit", a.SubmitQuiz)
		pr.With(rbac.Require("quiz:submit")).Post("/quiz/{quizID}/submit-detailed", a.SubmitQuizDetailed)
		pr.With(rbac.Require("user:view")).Get("/user/{userID}", a.GetUser)

		pr.With(rbac.Require("quiz:create")).Post("/quiz", a.CreateQuiz)
		pr.With(rbac.Require("quiz:update")).Put("/quiz/{quizID}", a.UpdateQuiz)
		pr.With(rbac.Require("quiz:delete")).Delete("/quiz/{quizID}", a.DeleteQuiz)
		pr.With(rbac.Require("quiz:update")).Delete("/quiz/{quizID}/question/{questionID}", a.DeleteQuestion)
		pr.With(rbac.Require("quiz:list-all")).Get("/quizzes/all", a.ListQuizzesDetailed)
		pr.With(rbac.Require("user:list")).Get("/users", a.ListUsers)
		pr.With(rbac.Require("user:history")).Get("/quiz-history/{userID}", a.QuizHistory)
		pr.With(rbac.Require("dashboard:view")).Get("/dashboard", a.Dashboard)
		pr.With(rbac.Require("leaderboard:view")).Get("/leaderboard", a.Leaderboard)
	})

	return r
}

func (a *API) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "quizforge",
	})
}
