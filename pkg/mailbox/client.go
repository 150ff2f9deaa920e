package mailbox

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jfmartinez/leadpilot/pkg/settings"
)

// ErrNotConnected is returned when no usable Gmail credential exists: the
// mailbox was never connected, or the refresh token was revoked. Callers
// surface it as "reconnect Gmail" and never retry past one refresh attempt.
var ErrNotConnected = errors.New("gmail not connected")

// Config for the Gmail client.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string // default https://gmail.googleapis.com/gmail/v1
	TokenURL     string // default https://oauth2.googleapis.com/token
}

// Client talks to the Gmail REST API using the shared credential stored in
// the settings table. It is safe to share between request handlers and the
// cron jobs; refresh races are resolved by the settings version guard.
type Client struct {
	cfg        Config
	settings   *settings.Service
	httpClient *http.Client
}

// NewClient creates a new Gmail client.
func NewClient(cfg Config, settingsService *settings.Service) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://gmail.googleapis.com/gmail/v1"
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = "https://oauth2.googleapis.com/token"
	}
	return &Client{
		cfg:      cfg,
		settings: settingsService,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Message is a normalized mailbox message with its body already extracted
// and cleaned.
type Message struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	MessageID string    `json:"message_id"`
	Date      time.Time `json:"date"`
	Snippet   string    `json:"snippet"`
	Body      string    `json:"body"`
}

// SendRequest describes an outbound message. ThreadID and InReplyTo are set
// when replying within an existing thread.
type SendRequest struct {
	To        string
	Subject   string
	Body      string
	ThreadID  string
	InReplyTo string
}

// Connected reports whether a credential exists at all (it may still need a
// refresh on first use).
func (c *Client) Connected(ctx context.Context) bool {
	_, _, err := c.settings.GetGmailTokens(ctx)
	return err == nil
}

// EnsureFreshToken refreshes and persists the shared credential if it has
// expired. The follow-up batch calls this up front so it never partially
// runs on a stale token.
func (c *Client) EnsureFreshToken(ctx context.Context) error {
	_, err := c.accessToken(ctx, false)
	return err
}

// ListMessages queries the mailbox (Gmail query syntax, e.g. "from:a@b.c")
// and returns up to maxResults messages, most recent first, with extracted
// bodies.
func (c *Client) ListMessages(ctx context.Context, query string, maxResults int) ([]Message, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	listURL := fmt.Sprintf("%s/users/me/messages?q=%s&maxResults=%d",
		c.cfg.BaseURL, url.QueryEscape(query), maxResults)

	var list struct {
		Messages []struct {
			ID       string `json:"id"`
			ThreadID string `json:"threadId"`
		} `json:"messages"`
	}
	if err := c.doJSON(ctx, http.MethodGet, listURL, nil, &list); err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(list.Messages))
	for _, ref := range list.Messages {
		msg, err := c.getMessage(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}
	return messages, nil
}

// GetThread returns all messages in a thread with extracted bodies.
func (c *Client) GetThread(ctx context.Context, threadID string) ([]Message, error) {
	threadURL := fmt.Sprintf("%s/users/me/threads/%s?format=full", c.cfg.BaseURL, threadID)

	var thread struct {
		Messages []rawMessage `json:"messages"`
	}
	if err := c.doJSON(ctx, http.MethodGet, threadURL, nil, &thread); err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(thread.Messages))
	for i := range thread.Messages {
		messages = append(messages, normalizeMessage(&thread.Messages[i]))
	}
	return messages, nil
}

// SendMessage sends an RFC 822 message through the connected mailbox and
// returns the provider message and thread ids.
func (c *Client) SendMessage(ctx context.Context, req SendRequest) (*Message, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", req.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", req.Subject)
	if req.InReplyTo != "" {
		fmt.Fprintf(&b, "In-Reply-To: %s\r\n", req.InReplyTo)
		fmt.Fprintf(&b, "References: %s\r\n", req.InReplyTo)
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(req.Body)

	payload := map[string]string{
		"raw": base64.RawURLEncoding.EncodeToString([]byte(b.String())),
	}
	if req.ThreadID != "" {
		payload["threadId"] = req.ThreadID
	}

	sendURL := fmt.Sprintf("%s/users/me/messages/send", c.cfg.BaseURL)
	var sent struct {
		ID       string `json:"id"`
		ThreadID string `json:"threadId"`
	}
	if err := c.doJSON(ctx, http.MethodPost, sendURL, payload, &sent); err != nil {
		return nil, err
	}

	return &Message{
		ID:       sent.ID,
		ThreadID: sent.ThreadID,
		To:       req.To,
		Subject:  req.Subject,
		Body:     req.Body,
		Date:     time.Now(),
	}, nil
}

// rawMessage is the provider's wire shape for a full message.
type rawMessage struct {
	ID           string   `json:"id"`
	ThreadID     string   `json:"threadId"`
	Snippet      string   `json:"snippet"`
	InternalDate string   `json:"internalDate"`
	Payload      *Payload `json:"payload"`
}

func (c *Client) getMessage(ctx context.Context, id string) (*Message, error) {
	msgURL := fmt.Sprintf("%s/users/me/messages/%s?format=full", c.cfg.BaseURL, id)

	var raw rawMessage
	if err := c.doJSON(ctx, http.MethodGet, msgURL, nil, &raw); err != nil {
		return nil, err
	}
	msg := normalizeMessage(&raw)
	return &msg, nil
}

func normalizeMessage(raw *rawMessage) Message {
	msg := Message{
		ID:       raw.ID,
		ThreadID: raw.ThreadID,
		Snippet:  raw.Snippet,
		Body:     ExtractBody(raw.Payload),
	}

	if millis, err := strconv.ParseInt(raw.InternalDate, 10, 64); err == nil && millis > 0 {
		msg.Date = time.UnixMilli(millis)
	}

	if raw.Payload != nil {
		for _, h := range raw.Payload.Headers {
			switch strings.ToLower(h.Name) {
			case "from":
				msg.From = h.Value
			case "to":
				msg.To = h.Value
			case "subject":
				msg.Subject = h.Value
			case "message-id":
				msg.MessageID = h.Value
			case "date":
				if msg.Date.IsZero() {
					if t, err := time.Parse(time.RFC1123Z, h.Value); err == nil {
						msg.Date = t
					}
				}
			}
		}
	}

	return msg
}

// doJSON performs an authenticated request with one refresh-and-retry on 401.
func (c *Client) doJSON(ctx context.Context, method, rawURL string, body, out interface{}) error {
	token, err := c.accessToken(ctx, false)
	if err != nil {
		return err
	}

	status, data, err := c.doOnce(ctx, method, rawURL, body, token)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		token, err = c.accessToken(ctx, true)
		if err != nil {
			return err
		}
		status, data, err = c.doOnce(ctx, method, rawURL, body, token)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		log.Printf("❌ Gmail API %s %s returned %d: %s", method, rawURL, status, truncate(string(data), 300))
		return fmt.Errorf("gmail api error: status %d", status)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode gmail response: %w", err)
		}
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, method, rawURL string, body interface{}, token string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("gmail request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read gmail response: %w", err)
	}
	return resp.StatusCode, data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
