package middleware

import (
	"errors"
	"unicode/utf8"
)

// ValidatePrompt validates a chat prompt.
func ValidatePrompt(prompt string) error {
	if len(prompt) == 0 {
		return errors.New("prompt cannot be empty")
	}
	if len(prompt) > 100000 { // ~100KB limit
		return errors.New("prompt exceeds maximum length")
	}
	if !utf8.ValidString(prompt) {
		return errors.New("prompt must be valid UTF-8")
	}
	return nil
}
