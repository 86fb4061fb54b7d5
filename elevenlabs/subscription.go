package elevenlabs

import (
	"context"
	"fmt"
)

// Subscription reports account-level character usage.
type Subscription struct {
	CharacterCount int `json:"character_count"`
	CharacterLimit int `json:"character_limit"`
}

// Remaining returns the unused character credits.
func (s Subscription) Remaining() int {
	return s.CharacterLimit - s.CharacterCount
}

// Subscription fetches the account's usage and limit.
func (c *Client) Subscription(ctx context.Context) (Subscription, error) {
	var sub Subscription
	if err := c.get(ctx, "/v1/user/subscription", &sub); err != nil {
		return Subscription{}, fmt.Errorf("unable to fetch subscription: %w", err)
	}
	return sub, nil
}
