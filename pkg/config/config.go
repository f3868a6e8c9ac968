package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/SeaCloudHub/captioner/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv        string `envconfig:"APP_ENV" default:"local" mod:"trim,lcase" validate:"required"`
	Port          int    `envconfig:"PORT" default:"8000" validate:"min=1,max=65535"`
	Debug         bool   `envconfig:"DEBUG" default:"false"`
	SentryDSN     string `envconfig:"SENTRY_DSN" mod:"trim"`
	AllowOrigins  string `envconfig:"ALLOW_ORIGINS" default:"*" mod:"trim"`
	MaxUploadSize string `envconfig:"MAX_UPLOAD_SIZE" default:"10M" mod:"trim" validate:"required"`

	HuggingFace HuggingFace `envconfig:"HUGGINGFACE"`
	Groq        Groq        `envconfig:"GROQ"`
}

type HuggingFace struct {
	APIKey       string        `envconfig:"API_KEY" mod:"trim"`
	Model        string        `envconfig:"MODEL" default:"Salesforce/blip-image-captioning-base" mod:"trim" validate:"required"`
	HubURL       string        `envconfig:"HUB_URL" default:"https://huggingface.co" mod:"trim" validate:"required,url"`
	InferenceURL string        `envconfig:"INFERENCE_URL" default:"https://router.huggingface.co/hf-inference" mod:"trim" validate:"required,url"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"120s"`
	MaxSide      int           `envconfig:"MAX_SIDE" default:"1024" validate:"min=0"`
}

type Groq struct {
	APIKey      string        `envconfig:"API_KEY" mod:"trim"`
	Model       string        `envconfig:"MODEL" default:"meta-llama/llama-4-scout-17b-16e-instruct" mod:"trim" validate:"required"`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.groq.com/openai/v1" mod:"trim" validate:"required,url"`
	MaxTokens   int           `envconfig:"MAX_TOKENS" default:"200" validate:"min=1"`
	Temperature float64       `envconfig:"TEMPERATURE" default:"0.8" validate:"min=0,max=2"`
	TopP        float64       `envconfig:"TOP_P" default:"0.9" validate:"min=0,max=1"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"60s"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := validation.Conform().Struct(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("conform config: %w", err)
	}

	if err := validation.Validate().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.AppEnv == "local"
}

// EnhancementEnabled reports whether a credential for the enhancement service is set.
func (c *Config) EnhancementEnabled() bool {
	return c.Groq.APIKey != ""
}
