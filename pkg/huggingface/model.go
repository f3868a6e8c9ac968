package huggingface

import (
	"errors"
	"fmt"
)

var (
	ErrModelNotFound = errors.New("model not found")
	ErrEmptyOutput   = errors.New("empty inference output")
)

type ModelInfo struct {
	ID          string `json:"id"`
	PipelineTag string `json:"pipeline_tag"`
	Disabled    bool   `json:"disabled"`
}

type ImageToTextOutput struct {
	GeneratedText string `json:"generated_text"`
}

type ErrorResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

type APIError struct {
	StatusCode int
	Message    string
	// EstimatedTime is the cold start wait, in seconds, reported while a model loads.
	EstimatedTime float64
}

func newAPIError(statusCode int, body ErrorResponse) *APIError {
	return &APIError{
		StatusCode:    statusCode,
		Message:       body.Error,
		EstimatedTime: body.EstimatedTime,
	}
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("huggingface: unexpected status code: %d", e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.EstimatedTime > 0 {
		msg += fmt.Sprintf(" (estimated time %.0fs)", e.EstimatedTime)
	}

	return msg
}
