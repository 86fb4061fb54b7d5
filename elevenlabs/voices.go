package elevenlabs

import (
	"context"
	"fmt"
)

// Voice is one entry of the remote voice catalog.
type Voice struct {
	ID   string `json:"voice_id"`
	Name string `json:"name"`
}

type voicesResponse struct {
	Voices []Voice `json:"voices"`
}

// Voices fetches the voice catalog.
func (c *Client) Voices(ctx context.Context) ([]Voice, error) {
	var resp voicesResponse
	if err := c.get(ctx, "/v1/voices", &resp); err != nil {
		return nil, fmt.Errorf("unable to list voices: %w", err)
	}
	return resp.Voices, nil
}

// ResolveVoice matches a voice by exact name first, then by exact ID. A miss
// wraps ErrVoiceNotFound with a pointer to the listing flag.
func (c *Client) ResolveVoice(ctx context.Context, nameOrID string) (Voice, error) {
	voices, err := c.Voices(ctx)
	if err != nil {
		return Voice{}, err
	}
	for _, v := range voices {
		if v.Name == nameOrID {
			return v, nil
		}
	}
	for _, v := range voices {
		if v.ID == nameOrID {
			return v, nil
		}
	}
	return Voice{}, fmt.Errorf("%w: %q (use --list to see available voices)", ErrVoiceNotFound, nameOrID)
}
