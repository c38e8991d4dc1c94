// Package app wires the game core, corpora, configuration, and display
// together and runs the main event loop.
package app

import "errors"

// Application errors.
var (
	// ErrQuit signals that the player asked to exit; a normal end.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates Run was called before SetBackend.
	ErrNoBackend = errors.New("no display backend configured")
)

// InitError represents a fatal startup failure in a named component.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
