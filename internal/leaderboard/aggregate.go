// Package leaderboard computes cross-user summary statistics from the
// full submission set. Like the scoring engine it is pure; the handler
// feeds it whatever the store returned.
package leaderboard

import (
	"math"
	"sort"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

// AdminIdentity labels submissions made under the reserved admin user
// id, which has no row in the users table.
type AdminIdentity struct {
	ID    string
	Name  string
	Email string
}

// Entry is one ranked leaderboard row. averageScore is unexported on
// purpose: it orders the list but is not a reported statistic, so it
// never reaches the JSON encoding.
type Entry struct {
	UserID             string  `json:"user_id"`
	Name               string  `json:"name"`
	AttemptedQuestions int     `json:"attempted_questions"`
	TimeTaken          float64 `json:"time_taken"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	TotalCorrect       int     `json:"total_correct"`
	TotalQuestions     int     `json:"total_questions"`
	Rank               int     `json:"rank"`

	averageScore float64
}

// Build groups submissions by user, merges in users with zero attempts,
// sorts by average score descending (time taken ascending on ties) and
// assigns 1-based ranks.
func Build(subs []quiz.Submission, users []quiz.User, admin AdminIdentity) []Entry {
	type group struct {
		attempts     int
		totalCorrect int
		totalQs      int
		timeTaken    float64
		ratioSum     float64
		ratioCount   int
	}

	groups := map[string]*group{}
	order := []string{}
	for _, sub := range subs {
		g, ok := groups[sub.UserID]
		if !ok {
			g = &group{}
			groups[sub.UserID] = g
			order = append(order, sub.UserID)
		}
		g.attempts++
		g.totalCorrect += sub.CorrectAnswers
		g.totalQs += sub.TotalQuestions
		g.timeTaken += sub.TimeTaken
		// A submission with zero questions contributes nothing to the
		// average; dividing by it would be undefined.
		if sub.TotalQuestions > 0 {
			g.ratioSum += float64(sub.CorrectAnswers) / float64(sub.TotalQuestions)
			g.ratioCount++
		}
	}

	byID := make(map[string]quiz.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	entries := make([]Entry, 0, len(order)+len(users))
	seen := map[string]bool{}
	for _, uid := range order {
		g := groups[uid]
		seen[uid] = true

		avg := 0.0
		if g.ratioCount > 0 {
			avg = g.ratioSum / float64(g.ratioCount) * 100
		}

		e := Entry{
			UserID:             uid,
			AttemptedQuestions: g.totalQs,
			TimeTaken:          round2(g.timeTaken),
			TotalCorrect:       g.totalCorrect,
			TotalQuestions:     g.totalQs,
			averageScore:       avg,
		}
		if u, ok := byID[uid]; ok {
			e.Name = u.Name
			e.Email = u.Email
			e.Phone = u.Phone
		} else if strings.EqualFold(uid, admin.ID) {
			e.Name = admin.Name
			e.Email = admin.Email
		} else {
			e.Name = "Unknown User"
		}
		entries = append(entries, e)
	}

	// Users who never attempted: zero-valued statistics.
	for _, u := range users {
		if seen[u.ID] {
			continue
		}
		entries = append(entries, Entry{
			UserID: u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Phone:  u.Phone,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].averageScore != entries[j].averageScore {
			return entries[i].averageScore > entries[j].averageScore
		}
		if entries[i].TimeTaken != entries[j].TimeTaken {
			return entries[i].TimeTaken < entries[j].TimeTaken
		}
		return entries[i].Name < entries[j].Name
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// AttemptedCount counts distinct submitter ids, excluding the reserved
// admin id (case-insensitively).
func AttemptedCount(distinctIDs []string, adminID string) int {
	n := 0
	for _, id := range distinctIDs {
		if !strings.EqualFold(id, adminID) {
			n++
		}
	}
	return n
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
