package mailbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jfmartinez/leadpilot/pkg/settings"
)

// accessToken returns a usable access token, refreshing through the settings
// version guard when expired. force skips the expiry check (used after a 401).
func (c *Client) accessToken(ctx context.Context, force bool) (string, error) {
	tokens, version, err := c.settings.GetGmailTokens(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			return "", ErrNotConnected
		}
		return "", err
	}

	if !force && !tokens.Expired(time.Now()) {
		return tokens.AccessToken, nil
	}

	return c.refreshToken(ctx, tokens, version)
}

// refreshToken exchanges the refresh token for a new access token and
// persists it with compare-and-swap. If a concurrent refresh won the race,
// the freshly stored credential is used instead of failing.
func (c *Client) refreshToken(ctx context.Context, tokens *settings.GmailTokens, version int) (string, error) {
	if tokens.RefreshToken == "" {
		return "", ErrNotConnected
	}

	form := url.Values{}
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("refresh_token", tokens.RefreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// A rejected refresh token means the user must reconnect; no
		// further retries.
		log.Printf("❌ Gmail token refresh returned %d: %s", resp.StatusCode, truncate(string(data), 300))
		return "", ErrNotConnected
	}

	var refreshed struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(data, &refreshed); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if refreshed.AccessToken == "" {
		return "", ErrNotConnected
	}

	updated := settings.GmailTokens{
		AccessToken:  refreshed.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiryDate:   time.Now().Add(time.Duration(refreshed.ExpiresIn) * time.Second).UnixMilli(),
		Email:        tokens.Email,
	}

	err = c.settings.SwapGmailTokens(ctx, updated, version)
	if errors.Is(err, settings.ErrVersionConflict) {
		// Another handler refreshed first; its token is as good as ours.
		current, _, readErr := c.settings.GetGmailTokens(ctx)
		if readErr == nil && !current.Expired(time.Now()) {
			return current.AccessToken, nil
		}
		// Fall through to our own token: it is valid even if unpersisted.
		log.Printf("⚠️  Gmail token swap lost a refresh race; using in-memory token")
		return updated.AccessToken, nil
	}
	if err != nil {
		return "", err
	}

	log.Printf("✅ Gmail access token refreshed (expires %s)", time.UnixMilli(updated.ExpiryDate).Format(time.RFC3339))
	return updated.AccessToken, nil
}
