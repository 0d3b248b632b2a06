package quiz

import "context"

// Store is the persistence boundary for users, quizzes and
// submissions. The SQL implementation lives in store_sql.go; tests use
// in-memory fakes.
type Store interface {
	CreateUser(ctx context.Context, u User) (User, error)
	GetUser(ctx context.Context, id string) (User, error)
	// FindUserByLogin resolves a login identifier: exact match on the
	// (lowercased) email, or case-insensitive match on the name.
	FindUserByLogin(ctx context.Context, identifier string) (User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]User, error)
	AllUsers(ctx context.Context) ([]User, error)
	CountUsers(ctx context.Context) (int, error)

	CreateQuiz(ctx context.Context, q Quiz) (Quiz, error)
	GetQuiz(ctx context.Context, id string) (Quiz, error)
	ListQuizzes(ctx context.Context, createdBy string) ([]Quiz, error)
	// UpdateQuiz overwrites the stored document in one statement keyed
	// by id. There is no version check: concurrent writers race and the
	// last one wins.
	UpdateQuiz(ctx context.Context, q Quiz) error
	DeleteQuiz(ctx context.Context, id string) error

	InsertSubmission(ctx context.Context, s Submission) (Submission, error)
	ListSubmissions(ctx context.Context) ([]Submission, error)
	ListSubmissionsByUser(ctx context.Context, userID string) ([]Submission, error)
	DistinctSubmitterIDs(ctx context.Context) ([]string, error)
}
