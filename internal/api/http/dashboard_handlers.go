package http

import (
	"net/http"

	"github.com/quizforge/quizforge/internal/leaderboard"
)

// Dashboard summarises participation for the admin landing page: user
// counts, how many attempted at least one quiz, and the full ranking.
func (a *API) Dashboard(w http.ResponseWriter, r *http.Request) {
	total, err := a.store.CountUsers(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	distinct, err := a.store.DistinctSubmitterIDs(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	admin := a.adminIdentity()
	attended := leaderboard.AttemptedCount(distinct, admin.ID)
	notAttended := total - attended
	if notAttended < 0 {
		notAttended = 0
	}
	entries, err := a.buildLeaderboard(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":              true,
		"total_users":         total,
		"users_attended":      attended,
		"users_not_attended":  notAttended,
		"leaderboard_preview": entries,
	})
}

// Leaderboard returns the ranking one page at a time.
func (a *API) Leaderboard(w http.ResponseWriter, r *http.Request) {
	page := parseIntDefault(r.URL.Query().Get("page"), 1)
	perPage := parseIntDefault(r.URL.Query().Get("limit"), leaderboard.DefaultPerPage)

	entries, err := a.buildLeaderboard(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	pageEntries, meta := leaderboard.Paginate(entries, page, perPage)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      true,
		"leaderboard": pageEntries,
		"pagination":  meta,
	})
}

func (a *API) buildLeaderboard(r *http.Request) ([]leaderboard.Entry, error) {
	subs, err := a.store.ListSubmissions(r.Context())
	if err != nil {
		return nil, err
	}
	users, err := a.store.AllUsers(r.Context())
	if err != nil {
		return nil, err
	}
	return leaderboard.Build(subs, users, a.adminIdentity()), nil
}
