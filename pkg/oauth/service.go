package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jfmartinez/leadpilot/pkg/settings"
)

var (
	// ErrInvalidCode is returned when the authorization code is invalid
	ErrInvalidCode = errors.New("invalid authorization code")
	// ErrProviderAPIError is returned when the provider API returns an error
	ErrProviderAPIError = errors.New("OAuth provider API error")
)

// The offline access type and consent prompt are required so Google issues a
// refresh token; without one the mailbox connection dies within an hour.
const gmailScope = "https://www.googleapis.com/auth/gmail.modify https://www.googleapis.com/auth/userinfo.email"

// Config for the Gmail OAuth flow
type Config struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	AuthURL      string // default: https://accounts.google.com/o/oauth2/v2/auth
	TokenURL     string // default: https://oauth2.googleapis.com/token
}

// Service handles the Gmail OAuth connect flow
type Service struct {
	cfg      Config
	settings *settings.Service
	client   *http.Client
}

// NewService creates a new OAuth service
func NewService(cfg Config, settingsService *settings.Service) *Service {
	if cfg.AuthURL == "" {
		cfg.AuthURL = "https://accounts.google.com/o/oauth2/v2/auth"
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = "https://oauth2.googleapis.com/token"
	}
	return &Service{
		cfg:      cfg,
		settings: settingsService,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AuthURL returns the Google consent screen URL for connecting Gmail
func (s *Service) AuthURL(state string) string {
	params := url.Values{}
	params.Add("client_id", s.cfg.ClientID)
	params.Add("redirect_uri", s.cfg.CallbackURL)
	params.Add("response_type", "code")
	params.Add("scope", gmailScope)
	params.Add("access_type", "offline")
	params.Add("prompt", "consent")
	params.Add("state", state)
	return s.cfg.AuthURL + "?" + params.Encode()
}

// HandleCallback exchanges the authorization code and persists the mailbox
// tokens. Returns the connected Gmail address.
func (s *Service) HandleCallback(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("code", code)
	data.Set("client_id", s.cfg.ClientID)
	data.Set("client_secret", s.cfg.ClientSecret)
	data.Set("redirect_uri", s.cfg.CallbackURL)
	data.Set("grant_type", "authorization_code")

	resp, err := s.client.PostForm(s.cfg.TokenURL, data)
	if err != nil {
		return "", fmt.Errorf("failed to exchange code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrInvalidCode
	}

	var tokenResp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.RefreshToken == "" {
		return "", fmt.Errorf("%w: no refresh token granted", ErrProviderAPIError)
	}

	email, err := s.fetchEmail(ctx, tokenResp.AccessToken)
	if err != nil {
		return "", err
	}

	tokens := settings.GmailTokens{
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
		ExpiryDate:   time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second).UnixMilli(),
		Email:        email,
	}
	if err := s.settings.SaveGmailTokens(ctx, tokens); err != nil {
		return "", fmt.Errorf("failed to persist mailbox tokens: %w", err)
	}

	return email, nil
}

// Disconnect removes the stored mailbox tokens
func (s *Service) Disconnect(ctx context.Context) error {
	return s.settings.Delete(ctx, settings.KeyGmailTokens)
}

func (s *Service) fetchEmail(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrProviderAPIError
	}

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("failed to decode user info: %w", err)
	}
	return info.Email, nil
}
