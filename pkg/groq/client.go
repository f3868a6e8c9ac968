package groq

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/SeaCloudHub/captioner/pkg/app"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultTimeout = 60 * time.Second
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Debug   bool
}

// Client talks to an OpenAI compatible chat completions API.
type Client struct {
	client *resty.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	return &Client{
		client: resty.New().
			SetBaseURL(u.String()).
			SetAuthToken(cfg.APIKey).
			SetHeader("Content-Type", "application/json").
			SetTimeout(cfg.Timeout).
			SetDebug(cfg.Debug).
			OnBeforeRequest(app.ForwardRequestID),
	}, nil
}

func (c *Client) CreateChatCompletion(ctx context.Context, in *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	var (
		result ChatCompletionResponse
		apiErr ErrorResponse
	)

	resp, err := c.client.R().SetContext(ctx).
		SetBody(in).
		SetResult(&result).SetError(&apiErr).
		Post("/chat/completions")
	// error bodies that fail to parse still carry a usable status code
	if err != nil && (resp == nil || !resp.IsError()) {
		return nil, fmt.Errorf("create chat completion: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Type:       apiErr.Error.Type,
			Message:    apiErr.Error.Message,
		}
	}

	return &result, nil
}
