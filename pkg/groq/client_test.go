package groq_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SeaCloudHub/captioner/pkg/app"
	"github.com/SeaCloudHub/captioner/pkg/groq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *groq.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := groq.NewClient(groq.Config{APIKey: "gsk_test", BaseURL: srv.URL})
	require.NoError(t, err)

	return client
}

func TestCreateChatCompletion(t *testing.T) {
	req := &groq.ChatCompletionRequest{
		Model:       "meta-llama/llama-4-scout-17b-16e-instruct",
		Messages:    []groq.Message{{Role: groq.RoleUser, Content: "describe a red shirt"}},
		MaxTokens:   200,
		Temperature: 0.8,
		TopP:        0.9,
	}

	t.Run("it should send the request and decode the choices", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer gsk_test", r.Header.Get("Authorization"))

			var got groq.ChatCompletionRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, *req, got)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"chatcmpl-1","choices":[{"index":0,"message":{"role":"assistant","content":"A vibrant red cotton T-shirt."}}]}`))
		})

		resp, err := client.CreateChatCompletion(context.Background(), req)
		require.NoError(t, err)

		content, err := resp.Content()
		require.NoError(t, err)
		assert.Equal(t, "A vibrant red cotton T-shirt.", content)
	})

	t.Run("it should return an api error on a non 200 status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"tokens"}}`))
		})

		_, err := client.CreateChatCompletion(context.Background(), req)

		var apiErr *groq.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.Equal(t, "groq: unexpected status code: 429: Rate limit reached", apiErr.Error())
	})

	t.Run("it should report a response without choices", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"chatcmpl-2","choices":[]}`))
		})

		resp, err := client.CreateChatCompletion(context.Background(), req)
		require.NoError(t, err)

		_, err = resp.Content()
		assert.ErrorIs(t, err, groq.ErrNoChoices)
	})

	t.Run("it should report a first choice without content", func(t *testing.T) {
		bodies := []string{
			`{"choices":[{"message":{"role":"assistant"}}]}`,
			`{"choices":[{"message":null}]}`,
			`{"choices":[{}]}`,
		}

		for _, body := range bodies {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			})

			resp, err := client.CreateChatCompletion(context.Background(), req)
			require.NoError(t, err)

			_, err = resp.Content()
			assert.ErrorIs(t, err, groq.ErrNoContent, body)
		}
	})

	t.Run("it should forward the request id", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "req-42", r.Header.Get("X-Request-Id"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
		})

		_, err := client.CreateChatCompletion(app.WithRequestID(context.Background(), "req-42"), req)
		require.NoError(t, err)
	})
}
