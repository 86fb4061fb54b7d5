package elevenlabs

import (
	"errors"
	"fmt"
)

// Common errors for the ElevenLabs client.
var (
	ErrMissingAPIKey = errors.New("API key must be provided via --key or LABSKEY in .env file")
	ErrVoiceNotFound = errors.New("voice not found")
)

// APIError is a non-2xx response from the remote API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API error: HTTP %d", e.Status)
	}
	return fmt.Sprintf("API error: HTTP %d: %s", e.Status, e.Body)
}
