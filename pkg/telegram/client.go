package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"contact-relay/internal/domain"
)

const DefaultAPIURL = "https://api.telegram.org"

// maxResponseBytes bounds how much of the Bot API reply is read.
const maxResponseBytes = 1 << 20

type Config struct {
	APIURL    string
	BotToken  string
	ChannelID string
	Timeout   time.Duration
}

// Client sends messages through the Telegram Bot API sendMessage method.
type Client struct {
	apiURL    string
	botToken  string
	channelID string
	client    *http.Client
}

// NewClient creates a Bot API client. A nil httpClient gets one bounded by cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &Client{
		apiURL:    apiURL,
		botToken:  cfg.BotToken,
		channelID: cfg.ChannelID,
		client:    httpClient,
	}
}

var _ domain.Notifier = (*Client)(nil)

// SendMessage issues exactly one GET sendMessage call and decodes the reply.
// The returned outcome is nil whenever err is non-nil.
func (c *Client) SendMessage(ctx context.Context, text string) (*domain.NotificationOutcome, error) {
	query := url.Values{}
	query.Set("chat_id", c.channelID)
	query.Set("text", text)

	reqURL := fmt.Sprintf("%s/bot%s/sendMessage?%s", c.apiURL, c.botToken, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram request: %w", redact(err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send telegram message: %w", redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read telegram response (status %d): %w", resp.StatusCode, err)
	}

	var outcome domain.NotificationOutcome
	if err := json.Unmarshal(body, &outcome); err != nil {
		return nil, fmt.Errorf("telegram returned non-JSON response (status %d): %w", resp.StatusCode, err)
	}

	return &outcome, nil
}

// redact strips the request URL, which embeds the bot token, from transport
// errors before they reach logs.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s sendMessage: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
