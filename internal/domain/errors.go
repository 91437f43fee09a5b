package domain

import "errors"

var (
	// ErrTimerAlreadyRunning is returned when starting a countdown that is
	// already running headlessly.
	ErrTimerAlreadyRunning = errors.New("a focus timer is already running")

	// ErrNoActiveTimer is returned by timer commands when nothing is running.
	ErrNoActiveTimer = errors.New("no active focus timer")
)
