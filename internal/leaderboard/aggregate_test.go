package leaderboard

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/quiz"
)

var testAdmin = AdminIdentity{ID: "admin", Name: "Administrator", Email: "admin@example.com"}

func TestBuildGroupsAndRanks(t *testing.T) {
	users := []quiz.User{
		{ID: "u1", Name: "Asha", Email: "asha@example.com", Phone: "+91-9876543210"},
		{ID: "u2", Name: "Ben", Email: "ben@example.com"},
		{ID: "u3", Name: "Chitra", Email: "chitra@example.com"},
	}
	subs := []quiz.Submission{
		{UserID: "u1", CorrectAnswers: 4, TotalQuestions: 5, TimeTaken: 30},  // 80%
		{UserID: "u1", CorrectAnswers: 3, TotalQuestions: 5, TimeTaken: 20},  // 60%
		{UserID: "u2", CorrectAnswers: 5, TotalQuestions: 10, TimeTaken: 40}, // 50%
	}

	entries := Build(subs, users, testAdmin)
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	// u1 averages 70%, u2 50%, u3 never attempted
	if entries[0].UserID != "u1" || entries[1].UserID != "u2" || entries[2].UserID != "u3" {
		t.Fatalf("order wrong: %q %q %q", entries[0].UserID, entries[1].UserID, entries[2].UserID)
	}
	if entries[0].Rank != 1 || entries[1].Rank != 2 || entries[2].Rank != 3 {
		t.Fatalf("ranks wrong: %d %d %d", entries[0].Rank, entries[1].Rank, entries[2].Rank)
	}
	if entries[0].TotalCorrect != 7 || entries[0].TotalQuestions != 10 || entries[0].TimeTaken != 50 {
		t.Fatalf("u1 aggregation wrong: %+v", entries[0])
	}
	if entries[2].TotalQuestions != 0 || entries[2].TimeTaken != 0 {
		t.Fatalf("zero-attempt user must carry zero stats: %+v", entries[2])
	}
}

func TestBuildSkipsZeroTotalSubmissions(t *testing.T) {
	subs := []quiz.Submission{
		{UserID: "u1", CorrectAnswers: 0, TotalQuestions: 0, TimeTaken: 5},
		{UserID: "u1", CorrectAnswers: 3, TotalQuestions: 3, TimeTaken: 10},
	}
	users := []quiz.User{{ID: "u1", Name: "Asha"}}

	entries := Build(subs, users, testAdmin)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	// average is 100%: the zero-question submission is excluded from the
	// mean but its time still accumulates
	if entries[0].averageScore != 100 {
		t.Fatalf("average = %v, want 100", entries[0].averageScore)
	}
	if entries[0].TimeTaken != 15 {
		t.Fatalf("time = %v, want 15", entries[0].TimeTaken)
	}
}

func TestBuildIdentityResolution(t *testing.T) {
	subs := []quiz.Submission{
		{UserID: "ADMIN", CorrectAnswers: 1, TotalQuestions: 1},
		{UserID: "ghost", CorrectAnswers: 1, TotalQuestions: 2},
	}
	entries := Build(subs, nil, testAdmin)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Name != "Administrator" || entries[0].Email != "admin@example.com" {
		t.Fatalf("admin identity not resolved: %+v", entries[0])
	}
	if entries[1].Name != "Unknown User" {
		t.Fatalf("unknown submitter label wrong: %+v", entries[1])
	}
}

func TestBuildTieBreaksOnTimeThenName(t *testing.T) {
	subs := []quiz.Submission{
		{UserID: "u1", CorrectAnswers: 1, TotalQuestions: 2, TimeTaken: 30},
		{UserID: "u2", CorrectAnswers: 1, TotalQuestions: 2, TimeTaken: 10},
		{UserID: "u3", CorrectAnswers: 1, TotalQuestions: 2, TimeTaken: 10},
	}
	users := []quiz.User{
		{ID: "u1", Name: "Asha"},
		{ID: "u2", Name: "Zara"},
		{ID: "u3", Name: "Ben"},
	}
	entries := Build(subs, users, testAdmin)
	// equal 50% averages: faster first, then name
	if entries[0].UserID != "u3" || entries[1].UserID != "u2" || entries[2].UserID != "u1" {
		t.Fatalf("tie-break order wrong: %q %q %q", entries[0].UserID, entries[1].UserID, entries[2].UserID)
	}
}

func TestEntryJSONOmitsAverageScore(t *testing.T) {
	entries := Build([]quiz.Submission{{UserID: "u1", CorrectAnswers: 1, TotalQuestions: 1}}, nil, testAdmin)
	data, err := json.Marshal(entries[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(strings.ToLower(string(data)), "average") {
		t.Fatalf("average score leaked into JSON: %s", data)
	}
	if !strings.Contains(string(data), `"rank":1`) {
		t.Fatalf("rank missing from JSON: %s", data)
	}
}

func TestAttemptedCount(t *testing.T) {
	got := AttemptedCount([]string{"u1", "u2", "ADMIN", "u3"}, "admin")
	if got != 3 {
		t.Fatalf("attempted = %d, want 3", got)
	}
	if AttemptedCount(nil, "admin") != 0 {
		t.Fatal("empty input must count zero")
	}
}

func TestPaginate(t *testing.T) {
	entries := make([]Entry, 25)
	for i := range entries {
		entries[i] = Entry{Rank: i + 1}
	}

	page, meta := Paginate(entries, 3, 10)
	if len(page) != 5 {
		t.Fatalf("page 3 size = %d, want 5", len(page))
	}
	if page[0].Rank != 21 {
		t.Fatalf("page 3 starts at rank %d, want 21", page[0].Rank)
	}
	if meta.TotalItems != 25 || meta.TotalPages != 3 || meta.CurrentPage != 3 {
		t.Fatalf("meta wrong: %+v", meta)
	}
	if meta.HasNextPage || !meta.HasPrevPage {
		t.Fatalf("page flags wrong: %+v", meta)
	}
}

func TestPaginateClamping(t *testing.T) {
	entries := make([]Entry, 5)

	page, meta := Paginate(entries, 0, 0)
	if len(page) != 5 || meta.CurrentPage != 1 || meta.PerPage != DefaultPerPage {
		t.Fatalf("clamped defaults wrong: len=%d meta=%+v", len(page), meta)
	}

	_, meta = Paginate(entries, 1, 500)
	if meta.PerPage != MaxPerPage {
		t.Fatalf("per-page cap wrong: %+v", meta)
	}

	page, meta = Paginate(entries, 99, 10)
	if len(page) != 0 {
		t.Fatalf("out-of-range page must be empty, got %d", len(page))
	}
	if meta.HasNextPage {
		t.Fatalf("out-of-range page flags wrong: %+v", meta)
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, meta := Paginate(nil, 1, 10)
	if len(page) != 0 {
		t.Fatalf("empty input must give empty page, got %d", len(page))
	}
	if meta.TotalItems != 0 || meta.TotalPages != 1 {
		t.Fatalf("empty meta wrong: %+v", meta)
	}
}
