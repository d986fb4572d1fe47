package game

import "errors"

// Caller-input errors. Each one is surfaced to the offending connection as
// an error notification and never terminates the session or the process.
var (
	ErrSessionNotFound   = errors.New("session-not-found")
	ErrNotInSession      = errors.New("not-in-session")
	ErrAlreadyJoined     = errors.New("already-joined")
	ErrNotHost           = errors.New("not-host")
	ErrNotDrawer         = errors.New("not-drawer")
	ErrAlreadyGuessed    = errors.New("already-guessed")
	ErrDrawerCannotGuess = errors.New("drawer-cannot-guess")
	ErrAlreadyStarted    = errors.New("game-already-started")
)
