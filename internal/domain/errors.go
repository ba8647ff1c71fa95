package domain

import "errors"

// Domain errors.
var (
	ErrInvalidIndex      = errors.New("invalid task number")
	ErrInvalidMenuChoice = errors.New("invalid menu option")
	ErrNoTasks           = errors.New("no tasks registered")
)
