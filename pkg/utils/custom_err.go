package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")

	// Completion model failures.
	ErrCompletionNotConfigured = errors.New("completion provider is not configured")
	ErrEmptyCompletion         = errors.New("no content in completion response")

	// Quiz flow failures.
	ErrFlowNotFound       = errors.New("quiz flow not found or expired")
	ErrTransitionInFlight = errors.New("a transition is already in flight for this flow")

	ErrNoCollegesFound = errors.New("no colleges found")

	ErrJobSearchNotConfigured = errors.New("job search provider is not configured")
)

// UpstreamError carries a non-2xx status from a third-party API so the
// handler can propagate that status instead of collapsing everything to 500.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.Status, e.Body)
}
