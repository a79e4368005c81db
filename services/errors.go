package services

import "errors"

var (
	// ErrNotFound: a referenced alert/report/user/route does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition: the actor attempted a state change the
	// lifecycle table does not allow for their role.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrDuplicateReport: same (alert, reporter) pair reported twice.
	ErrDuplicateReport = errors.New("duplicate report")

	// ErrConflict: a concurrent writer won the race; the caller may retry.
	ErrConflict = errors.New("conflict")

	// ErrAlreadyReviewed: review fields are written exactly once.
	ErrAlreadyReviewed = errors.New("report already reviewed")
)
