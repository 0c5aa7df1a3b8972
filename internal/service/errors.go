package service

import "errors"

// Errors the controllers map onto HTTP statuses. Messages are safe to show to clients.
var (
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordTooLong     = errors.New("password too long")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrForbidden           = errors.New("forbidden")
	ErrUserNotFound        = errors.New("user not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrInvalidQuestion     = errors.New("invalid question")
	ErrInvalidAnswer       = errors.New("selected answer is not one of the question's options")
	ErrCorrectnessMismatch = errors.New("is_correct does not match the graded answer")
	ErrLLMUnavailable      = errors.New("question drafting is not configured")
	ErrDraftUnparseable    = errors.New("could not parse drafted question")
)
