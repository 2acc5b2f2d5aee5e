package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Player errors
	ErrPlayerNotFound = fmt.Errorf("player not found")
	ErrTransport      = fmt.Errorf("player transport error")

	// Lyrics errors
	ErrFetchFailed    = fmt.Errorf("lyrics fetch failed")
	ErrLyricsNotFound = fmt.Errorf("lyrics not found")

	// Display errors
	ErrTerminal = fmt.Errorf("terminal error")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
