// Package notify forwards contact messages to a Telegram bot. Delivery
// is best effort: single attempt, no retry, the caller only logs the
// outcome.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/emmzy1212/portfolio-backend/internal/portfolio/domain"
)

const defaultBaseURL = "https://api.telegram.org"

type Telegram struct {
	token      string
	chatID     string
	baseURL    string
	httpClient *http.Client
}

func NewTelegram(token, chatID string) *Telegram {
	return &Telegram{
		token:   token,
		chatID:  chatID,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithBaseURL overrides the API host, used by tests.
func (t *Telegram) WithBaseURL(u string) *Telegram {
	t.baseURL = u
	return t
}

// Enabled reports whether both credentials are configured.
func (t *Telegram) Enabled() bool {
	return t.token != "" && t.chatID != ""
}

type sendMessageReq struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Send delivers the contact message to the configured chat. A disabled
// notifier is a no-op.
func (t *Telegram) Send(ctx context.Context, m domain.Message) error {
	if !t.Enabled() {
		return nil
	}

	text := fmt.Sprintf(
		"New contact message\nName: %s\nEmail: %s\nSubject: %s\nMessage: %s\nTime: %s",
		m.Name, m.Email, m.Subject, m.Body, m.SentAt.Format(time.RFC1123),
	)

	body, err := json.Marshal(sendMessageReq{ChatID: t.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call telegram: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
