// Package http wires the quiz service onto a chi router with JSON
// responses and token-gated routes.
package http

import (
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/leaderboard"
	"github.com/quizforge/quizforge/internal/quiz"
)

// AdminAccount carries the bootstrap administrator credentials. The
// account lives outside the user table and is matched by username at
// login and registration time.
type AdminAccount struct {
	Username string
	Name     string
	PassHash string
}

// API bundles the dependencies shared by every handler.
type API struct {
	store  quiz.Store
	tokens *auth.TokenService
	admin  AdminAccount
}

func New(store quiz.Store, tokens *auth.TokenService, admin AdminAccount) *API {
	return &API{store: store, tokens: tokens, admin: admin}
}

// adminIdentity is how the bootstrap admin appears in aggregated views.
// The reserved user id "admin" is what login stamps into its tokens.
func (a *API) adminIdentity() leaderboard.AdminIdentity {
	return leaderboard.AdminIdentity{
		ID:    "admin",
		Name:  a.admin.Name,
		Email: a.admin.Username,
	}
}
