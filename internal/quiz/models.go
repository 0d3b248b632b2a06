package quiz

import "time"

// User is a registered account. Email and phone are unique across all
// users; email is stored lowercased.
type User struct {
	ID           string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // "user" or "admin"
	School       string    `json:"school"`
	CreatedAt    time.Time `json:"created_at"`
}

// Question is embedded in a quiz. The correct answer must equal one of
// the options verbatim; it is stripped from responses served to quiz
// takers via the omitempty tag.
type Question struct {
	ID            string   `json:"question_id"`
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
}

type Quiz struct {
	ID             string     `json:"quiz_id"`
	Title          string     `json:"title"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedBy      string     `json:"updated_by,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// Sanitized returns a copy with correct answers removed, for serving to
// quiz takers.
func (q Quiz) Sanitized() Quiz {
	out := q
	out.Questions = make([]Question, len(q.Questions))
	for i, qu := range q.Questions {
		qu.CorrectAnswer = ""
		out.Questions[i] = qu
	}
	return out
}

// QuestionResult is the per-question outcome recorded in a submission.
type QuestionResult struct {
	QuestionID    string   `json:"question_id"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	UserAnswer    string   `json:"user_answer"`
	Correct       bool     `json:"is_correct"`
}

// Submission is one quiz attempt. It is immutable once stored;
// resubmitting the same quiz simply creates another record.
type Submission struct {
	ID             string           `json:"submission_id"`
	QuizID         string           `json:"quiz_id"`
	UserID         string           `json:"user_id"`
	Username       string           `json:"username"`
	CorrectAnswers int              `json:"correct_answers"`
	TotalQuestions int              `json:"total_questions"`
	TimeTaken      float64          `json:"time_taken"`
	Questions      []QuestionResult `json:"questions"`
	SubmittedAt    time.Time        `json:"submitted_at"`
}
