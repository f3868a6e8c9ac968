package huggingface

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SeaCloudHub/captioner/pkg/app"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	hub       *resty.Client
	inference *resty.Client
}

func NewClient(cfg *Config) (*Client, error) {
	hubURL, err := url.Parse(cfg.HubURL)
	if err != nil {
		return nil, fmt.Errorf("parse hub url: %w", err)
	}

	inferenceURL, err := url.Parse(cfg.InferenceURL)
	if err != nil {
		return nil, fmt.Errorf("parse inference url: %w", err)
	}

	return &Client{
		hub:       newRestyClient(hubURL, cfg),
		inference: newRestyClient(inferenceURL, cfg),
	}, nil
}

func newRestyClient(u *url.URL, cfg *Config) *resty.Client {
	return resty.New().
		SetBaseURL(u.String()).
		SetAuthToken(cfg.Token).
		SetTimeout(cfg.Timeout).
		SetDebug(cfg.debug).
		OnBeforeRequest(app.ForwardRequestID)
}

// ModelInfo fetches the hub metadata of a model, which also checks that the
// token grants access to it.
func (c *Client) ModelInfo(ctx context.Context, modelID string) (*ModelInfo, error) {
	var (
		result ModelInfo
		apiErr ErrorResponse
	)

	resp, err := c.hub.R().SetContext(ctx).
		SetRawPathParam("model", modelID).
		SetResult(&result).SetError(&apiErr).
		Get("/api/models/{model}")
	if err != nil && (resp == nil || !resp.IsError()) {
		return nil, fmt.Errorf("get model info: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", modelID, ErrModelNotFound)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, newAPIError(resp.StatusCode(), apiErr)
	}

	return &result, nil
}

// ImageToText runs the image to text pipeline of modelID on the encoded image.
func (c *Client) ImageToText(ctx context.Context, modelID string, image []byte, contentType string) ([]ImageToTextOutput, error) {
	var (
		result []ImageToTextOutput
		apiErr ErrorResponse
	)

	resp, err := c.inference.R().SetContext(ctx).
		SetRawPathParam("model", modelID).
		SetHeader("Content-Type", contentType).
		SetHeader("Accept", "application/json").
		SetHeader("X-Wait-For-Model", "true").
		SetBody(image).
		SetResult(&result).SetError(&apiErr).
		Post("/models/{model}")
	if err != nil && (resp == nil || !resp.IsError()) {
		return nil, fmt.Errorf("image to text: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, newAPIError(resp.StatusCode(), apiErr)
	}

	if len(result) == 0 {
		return nil, ErrEmptyOutput
	}

	return result, nil
}
