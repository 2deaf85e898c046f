// Package errors defines the user-facing error shapes for the CLI.
// Store failures are wrapped here before they reach the terminal so
// native error codes and raw causes stay out of normal output, and
// secret material never enters a message at any layer.
package errors

import (
	"fmt"
	"strings"
)

// UserError is an error with helpful context shown to the user.
type UserError struct {
	Message    string
	Suggestion string
	Details    string
	Err        error
}

func (e UserError) Error() string {
	var parts []string

	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Details != "" {
		parts = append(parts, "\n  Details: "+e.Details)
	}

	if e.Suggestion != "" {
		parts = append(parts, "\n  💡 Try: "+e.Suggestion)
	}

	return strings.Join(parts, "")
}

func (e UserError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration problem with enough context to
// fix it.
type ConfigError struct {
	Field      string
	Value      interface{}
	Message    string
	Suggestion string
}

func (e ConfigError) Error() string {
	msg := "Configuration error"
	if e.Field != "" {
		msg += fmt.Sprintf(" in field '%s'", e.Field)
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	msg += ": " + e.Message

	if e.Suggestion != "" {
		msg += "\n  💡 " + e.Suggestion
	}

	return msg
}

// VaultError wraps a credential-store failure for display. The
// underlying cause is kept for --debug logging but the rendered message
// stays generic: no native error codes, no secret content.
func VaultError(operation string, err error) error {
	return UserError{
		Message:    fmt.Sprintf("Credential vault %s failed", operation),
		Suggestion: vaultSuggestion(err),
		Err:        err,
	}
}

func vaultSuggestion(err error) string {
	if err == nil {
		return ""
	}
	errStr := err.Error()

	if strings.Contains(errStr, "not supported on this platform") {
		return "rdpmate stores credentials in the Windows Credential Manager; run it on Windows"
	}
	if strings.Contains(errStr, "access") || strings.Contains(errStr, "denied") {
		return "Check that your user session is unlocked and try again"
	}
	return "Run with --debug for the underlying cause"
}
