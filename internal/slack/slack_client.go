package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"leavebot/internal/shared/contextutil"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://slack.com/api"

// HTTPClient is the transport seam; *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a thin Slack Web API client covering the two calls this
// service makes: posting messages and opening modals.
type Client struct {
	httpClient HTTPClient
	token      string
	baseURL    string
	logger     *zap.Logger
}

func NewClient(httpClient HTTPClient, token string, logger ...*zap.Logger) *Client {
	l := zap.L().Named("slack.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("slack.client")
	}
	return &Client{
		httpClient: httpClient,
		token:      token,
		baseURL:    defaultBaseURL,
		logger:     l,
	}
}

// WithBaseURL points the client at a different API host, for tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	TS    string `json:"ts"`
}

type postMessagePayload struct {
	Channel string  `json:"channel"`
	Text    string  `json:"text"`
	Blocks  []Block `json:"blocks,omitempty"`
}

// PostMessage sends a message and returns its timestamp.
func (c *Client) PostMessage(ctx context.Context, channel, text string, blocks []Block) (string, error) {
	resp, err := c.call(ctx, "chat.postMessage", postMessagePayload{
		Channel: channel,
		Text:    text,
		Blocks:  blocks,
	})
	if err != nil {
		return "", err
	}
	return resp.TS, nil
}

type openViewPayload struct {
	TriggerID string    `json:"trigger_id"`
	View      ModalView `json:"view"`
}

// OpenView opens a modal against the short-lived trigger id of a slash
// command invocation.
func (c *Client) OpenView(ctx context.Context, triggerID string, view ModalView) error {
	_, err := c.call(ctx, "views.open", openViewPayload{
		TriggerID: triggerID,
		View:      view,
	})
	return err
}

func (c *Client) call(ctx context.Context, method string, payload any) (*apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("slack %s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("slack %s response decode failed: %w", method, err)
	}
	if !result.OK {
		c.logger.Warn("slack api error",
			zap.String("method", method),
			zap.String("error", result.Error),
			zap.String("request_id", contextutil.GetRequestID(ctx)),
		)
		return nil, fmt.Errorf("slack %s failed: %s", method, result.Error)
	}
	return &result, nil
}
