package domain

import "time"

// AccessToken is what a successful login returns: the signed token string
// plus presentation metadata. It is never persisted; expiry is the only
// lifecycle event.
type AccessToken struct {
	Token     string        `json:"accessToken"`
	TokenType string        `json:"tokenType"` // always "Bearer"
	ExpiresIn time.Duration `json:"-"`
}
