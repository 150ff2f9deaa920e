package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// GmailTokens is the shared mailbox credential stored under KeyGmailTokens.
// ExpiryDate is unix milliseconds, matching what the OAuth token endpoint
// hands back.
type GmailTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiryDate   int64  `json:"expiry_date"`
	Email        string `json:"email"`
}

// expirySkew treats tokens expiring within the window as already expired so
// an in-flight request does not race the deadline.
const expirySkew = 2 * time.Minute

// Expired reports whether the access token is past (or within skew of) its
// expiry.
func (t GmailTokens) Expired(now time.Time) bool {
	if t.ExpiryDate == 0 {
		return true
	}
	return now.Add(expirySkew).UnixMilli() >= t.ExpiryDate
}

// GetGmailTokens loads and decodes the shared mailbox credential. The
// returned version feeds CompareAndSwap on refresh.
func (s *Service) GetGmailTokens(ctx context.Context) (*GmailTokens, int, error) {
	value, version, err := s.Get(ctx, KeyGmailTokens)
	if err != nil {
		return nil, 0, err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode gmail tokens: %w", err)
	}
	var tokens GmailTokens
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return nil, 0, fmt.Errorf("failed to decode gmail tokens: %w", err)
	}
	return &tokens, version, nil
}

// SaveGmailTokens writes the credential unconditionally (used by the OAuth
// connect flow, which is the only writer at that point).
func (s *Service) SaveGmailTokens(ctx context.Context, tokens GmailTokens) error {
	return s.Put(ctx, KeyGmailTokens, tokensToMap(tokens))
}

// SwapGmailTokens writes a refreshed credential through the version guard.
func (s *Service) SwapGmailTokens(ctx context.Context, tokens GmailTokens, expectedVersion int) error {
	return s.CompareAndSwap(ctx, KeyGmailTokens, tokensToMap(tokens), expectedVersion)
}

func tokensToMap(t GmailTokens) map[string]interface{} {
	return map[string]interface{}{
		"access_token":  t.AccessToken,
		"refresh_token": t.RefreshToken,
		"expiry_date":   t.ExpiryDate,
		"email":         t.Email,
	}
}
