package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SQLStore implements Store over database/sql. Embedded documents
// (questions, per-question outcomes) are stored as JSON columns, so the
// schema stays close to the document shape the handlers work with.
type SQLStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

func (s *SQLStore) CreateUser(ctx context.Context, u User) (User, error) {
	// Existence pre-check, same weak guarantee as the unique indexes it
	// fronts; a racing duplicate still trips the constraint.
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE email=$1 OR phone=$2`, u.Email, u.Phone).Scan(&one)
	if err == nil {
		return User{}, ErrUserExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return User{}, err
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id,name,email,phone,password_hash,role,school,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, u.Role, u.School, u.CreatedAt.Unix())
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *SQLStore) GetUser(ctx context.Context, id string) (User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,name,email,phone,password_hash,role,school,created_at FROM users WHERE id=$1`, id)
	return scanUser(row)
}

func (s *SQLStore) FindUserByLogin(ctx context.Context, identifier string) (User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,name,email,phone,password_hash,role,school,created_at
		 FROM users WHERE email=$1 OR lower(name)=lower($1)`, identifier)
	return scanUser(row)
}

func (s *SQLStore) ListUsers(ctx context.Context, limit, offset int) ([]User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,name,email,phone,password_hash,role,school,created_at
		 FROM users ORDER BY created_at LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *SQLStore) AllUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,name,email,phone,password_hash,role,school,created_at
		 FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *SQLStore) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (s *SQLStore) CreateQuiz(ctx context.Context, q Quiz) (Quiz, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = s.now()
	}
	q.TotalQuestions = len(q.Questions)
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return Quiz{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quizzes (id,title,questions_json,total_questions,created_by,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		q.ID, q.Title, string(qj), q.TotalQuestions, q.CreatedBy, q.CreatedAt.Unix())
	if err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *SQLStore) GetQuiz(ctx context.Context, id string) (Quiz, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,title,questions_json,total_questions,created_by,created_at,updated_by,updated_at
		 FROM quizzes WHERE id=$1`, id)
	q, err := scanQuiz(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Quiz{}, ErrQuizNotFound
	}
	return q, err
}

func (s *SQLStore) ListQuizzes(ctx context.Context, createdBy string) ([]Quiz, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if createdBy == "" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id,title,questions_json,total_questions,created_by,created_at,updated_by,updated_at
			 FROM quizzes ORDER BY created_at DESC`)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id,title,questions_json,total_questions,created_by,created_at,updated_by,updated_at
			 FROM quizzes WHERE created_by=$1 ORDER BY created_at DESC`, createdBy)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Quiz{}
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) UpdateQuiz(ctx context.Context, q Quiz) error {
	q.TotalQuestions = len(q.Questions)
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	if q.UpdatedAt == nil {
		t := s.now()
		q.UpdatedAt = &t
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE quizzes SET title=$1, questions_json=$2, total_questions=$3, updated_by=$4, updated_at=$5
		 WHERE id=$6`,
		q.Title, string(qj), q.TotalQuestions, q.UpdatedBy, q.UpdatedAt.Unix(), q.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrQuizNotFound
	}
	return nil
}

func (s *SQLStore) DeleteQuiz(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrQuizNotFound
	}
	return nil
}

func (s *SQLStore) InsertSubmission(ctx context.Context, sub Submission) (Submission, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = s.now()
	}
	qj, err := json.Marshal(sub.Questions)
	if err != nil {
		return Submission{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO submissions (id,quiz_id,user_id,username,correct_answers,total_questions,time_taken,questions_json,submitted_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		sub.ID, sub.QuizID, sub.UserID, sub.Username, sub.CorrectAnswers, sub.TotalQuestions,
		sub.TimeTaken, string(qj), sub.SubmittedAt.Unix())
	if err != nil {
		return Submission{}, err
	}
	return sub, nil
}

func (s *SQLStore) ListSubmissions(ctx context.Context) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,quiz_id,user_id,username,correct_answers,total_questions,time_taken,questions_json,submitted_at
		 FROM submissions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSubmissions(rows)
}

func (s *SQLStore) ListSubmissionsByUser(ctx context.Context, userID string) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,quiz_id,user_id,username,correct_answers,total_questions,time_taken,questions_json,submitted_at
		 FROM submissions WHERE user_id=$1 ORDER BY submitted_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSubmissions(rows)
}

func (s *SQLStore) DistinctSubmitterIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM submissions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var (
		u         User
		createdAt int64
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.School, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}
	u.CreatedAt = time.Unix(createdAt, 0).UTC()
	return u, nil
}

func scanQuiz(row rowScanner) (Quiz, error) {
	var (
		q         Quiz
		qjson     string
		createdAt int64
		updatedAt sql.NullInt64
	)
	err := row.Scan(&q.ID, &q.Title, &qjson, &q.TotalQuestions, &q.CreatedBy, &createdAt, &q.UpdatedBy, &updatedAt)
	if err != nil {
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return Quiz{}, err
	}
	q.CreatedAt = time.Unix(createdAt, 0).UTC()
	if updatedAt.Valid {
		t := time.Unix(updatedAt.Int64, 0).UTC()
		q.UpdatedAt = &t
	}
	return q, nil
}

func collectSubmissions(rows *sql.Rows) ([]Submission, error) {
	out := []Submission{}
	for rows.Next() {
		var (
			sub         Submission
			qjson       string
			submittedAt int64
		)
		if err := rows.Scan(&sub.ID, &sub.QuizID, &sub.UserID, &sub.Username, &sub.CorrectAnswers,
			&sub.TotalQuestions, &sub.TimeTaken, &qjson, &submittedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(qjson), &sub.Questions); err != nil {
			return nil, err
		}
		sub.SubmittedAt = time.Unix(submittedAt, 0).UTC()
		out = append(out, sub)
	}
	return out, rows.Err()
}
