package quiz

import "errors"

var (
	// ErrUserExists is returned when a registration collides on email or phone.
	ErrUserExists = errors.New("user with this email or phone already exists")
	// ErrUserNotFound indicates an unknown user id or login identifier.
	ErrUserNotFound = errors.New("user not found")
	// ErrQuizNotFound indicates an unknown quiz id.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuestionNotFound indicates the question id is not in the quiz.
	ErrQuestionNotFound = errors.New("question not found in quiz")
	// ErrLastQuestion rejects removing a quiz's only remaining question.
	ErrLastQuestion = errors.New("cannot delete the last question; quiz must keep at least one")
)
