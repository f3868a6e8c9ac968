package huggingface

import "time"

const (
	DefaultHubURL       = "https://huggingface.co"
	DefaultInferenceURL = "https://router.huggingface.co/hf-inference"
	DefaultTimeout      = 120 * time.Second
)

type Config struct {
	Token        string
	HubURL       string
	InferenceURL string
	Timeout      time.Duration
	debug        bool
}

func NewConfig(token string) *Config {
	return &Config{
		Token:        token,
		HubURL:       DefaultHubURL,
		InferenceURL: DefaultInferenceURL,
		Timeout:      DefaultTimeout,
	}
}

func (c *Config) WithHubURL(hubURL string) *Config {
	c.HubURL = hubURL

	return c
}

func (c *Config) WithInferenceURL(inferenceURL string) *Config {
	c.InferenceURL = inferenceURL

	return c
}

func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout

	return c
}

func (c *Config) Debug() *Config {
	c.debug = true

	return c
}
