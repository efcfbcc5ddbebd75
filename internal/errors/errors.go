package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrEmptyPlaylist    = errors.New("empty playlist")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidState     = errors.New("invalid session state")
	ErrConfigNotFound   = errors.New("config file not found")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrTracklistInvalid = errors.New("invalid tracklist")
)

// MixtapeError wraps an error with a user-friendly suggestion.
type MixtapeError struct {
	Err        error
	Suggestion string
}

func (e *MixtapeError) Error() string {
	return e.Err.Error()
}

func (e *MixtapeError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &MixtapeError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a MixtapeError with suggestion
	var mixErr *MixtapeError
	if errors.As(err, &mixErr) && mixErr.Suggestion != "" {
		return mixErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrEmptyPlaylist) {
		return "Provide tracks with --count, --tracks, or a [playlist] section in your config"
	}

	if errors.Is(err, ErrInvalidParameter) {
		return "Check the [shuffle] section: randomness must be > 0, buffer >= 0, min_recycle in [0,1]"
	}

	if errors.Is(err, ErrTracklistInvalid) || strings.Contains(errStr, "tracklist") {
		return "A tracklist file is a TOML file with one or more [[track]] tables"
	}

	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) ||
		strings.Contains(errStr, "config") {
		return "Run 'mixtape config init' to write a starter config file"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
