package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Config for the Graph API client.
type Config struct {
	AccessToken string
	BaseURL     string // default https://graph.facebook.com/v19.0
}

// Client is a thin Meta Graph API client for lead detail and profile fetches.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a new Graph API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://graph.facebook.com/v19.0"
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetLeadDetails fetches a Lead Ads submission by leadgen id and maps its
// form fields (full_name, email, phone_number, company_name) into a
// LeadDetails.
func (c *Client) GetLeadDetails(ctx context.Context, leadgenID string) (*LeadDetails, error) {
	endpoint := fmt.Sprintf("%s/%s?fields=id,created_time,field_data&access_token=%s",
		c.cfg.BaseURL, url.PathEscape(leadgenID), url.QueryEscape(c.cfg.AccessToken))

	var raw struct {
		ID        string `json:"id"`
		FieldData []struct {
			Name   string   `json:"name"`
			Values []string `json:"values"`
		} `json:"field_data"`
	}
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, err
	}

	details := &LeadDetails{ID: raw.ID}
	for _, field := range raw.FieldData {
		if len(field.Values) == 0 {
			continue
		}
		value := field.Values[0]
		switch field.Name {
		case "full_name", "name":
			details.FullName = value
		case "email":
			details.Email = value
		case "phone_number", "phone":
			details.Phone = value
		case "company_name", "company":
			details.Company = value
		}
	}
	return details, nil
}

// GetProfile fetches the display name for a platform-scoped user id.
func (c *Client) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	endpoint := fmt.Sprintf("%s/%s?fields=id,name,first_name,last_name&access_token=%s",
		c.cfg.BaseURL, url.PathEscape(userID), url.QueryEscape(c.cfg.AccessToken))

	var profile Profile
	if err := c.getJSON(ctx, endpoint, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build graph request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read graph response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ Graph API returned %d: %s", resp.StatusCode, truncate(string(data), 300))
		return fmt.Errorf("graph api error: status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode graph response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
