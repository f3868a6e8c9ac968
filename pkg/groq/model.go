package groq

import (
	"errors"
	"fmt"
)

var (
	ErrNoChoices = errors.New("groq: response has no choices")
	ErrNoContent = errors.New("groq: first choice has no message content")
)

const RoleUser = "user"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p"`
}

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int              `json:"index"`
	Message      *ResponseMessage `json:"message"`
	FinishReason string           `json:"finish_reason"`
}

// ResponseMessage keeps content nullable so an absent field is told apart from "".
type ResponseMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Content returns the text of the first choice.
func (r *ChatCompletionResponse) Content() (string, error) {
	if len(r.Choices) == 0 {
		return "", ErrNoChoices
	}

	msg := r.Choices[0].Message
	if msg == nil || msg.Content == nil {
		return "", ErrNoContent
	}

	return *msg.Content, nil
}

type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("groq: unexpected status code: %d", e.StatusCode)
	}

	return fmt.Sprintf("groq: unexpected status code: %d: %s", e.StatusCode, e.Message)
}
