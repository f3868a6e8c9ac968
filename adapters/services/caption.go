package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/SeaCloudHub/captioner/domain/caption"
	"github.com/SeaCloudHub/captioner/pkg/config"
	"github.com/SeaCloudHub/captioner/pkg/huggingface"
)

// CaptionService captions images with a Hugging Face hosted image to text model.
type CaptionService struct {
	client  *huggingface.Client
	model   string
	maxSide int
}

// NewCaptionService checks that the configured model is reachable with the
// configured token. The returned error wraps caption.ErrModelUnavailable.
func NewCaptionService(ctx context.Context, cfg *config.Config) (*CaptionService, error) {
	if cfg.HuggingFace.APIKey == "" {
		return nil, fmt.Errorf("%w: HUGGINGFACE_API_KEY environment variable is required", caption.ErrModelUnavailable)
	}

	hfcfg := huggingface.NewConfig(cfg.HuggingFace.APIKey).
		WithHubURL(cfg.HuggingFace.HubURL).
		WithInferenceURL(cfg.HuggingFace.InferenceURL).
		WithTimeout(cfg.HuggingFace.Timeout)
	if cfg.Debug {
		hfcfg.Debug()
	}

	client, err := huggingface.NewClient(hfcfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", caption.ErrModelUnavailable, err)
	}

	info, err := client.ModelInfo(ctx, cfg.HuggingFace.Model)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", caption.ErrModelUnavailable, err)
	}

	if info.Disabled {
		return nil, fmt.Errorf("%w: model %s is disabled", caption.ErrModelUnavailable, cfg.HuggingFace.Model)
	}

	return &CaptionService{
		client:  client,
		model:   cfg.HuggingFace.Model,
		maxSide: cfg.HuggingFace.MaxSide,
	}, nil
}

func (s *CaptionService) Model() string {
	return s.model
}

func (s *CaptionService) Generate(ctx context.Context, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, caption.Downscale(img, s.maxSide)); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}

	outputs, err := s.client.ImageToText(ctx, s.model, buf.Bytes(), "image/png")
	if err != nil {
		return "", err
	}

	text := caption.StripSpecialTokens(outputs[0].GeneratedText)
	if text == "" {
		return "", caption.ErrEmptyCaption
	}

	return text, nil
}
