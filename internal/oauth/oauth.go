package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
)

// Identity is what a login provider tells us about the person signing in.
// ProviderID is the provider's stable account id, not ours.
type Identity struct {
	Email      string
	Name       string
	AvatarURL  string
	ProviderID string
	Provider   string
}

type Provider interface {
	GetConsentURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Identity, error)
	Name() string
}

// GenerateState returns a random state nonce for the consent round trip.
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
