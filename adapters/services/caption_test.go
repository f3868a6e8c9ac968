package services_test

import (
	"context"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SeaCloudHub/captioner/adapters/services"
	"github.com/SeaCloudHub/captioner/domain/caption"
	"github.com/SeaCloudHub/captioner/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blip = "Salesforce/blip-image-captioning-base"

func testConfig(url string) *config.Config {
	return &config.Config{
		HuggingFace: config.HuggingFace{
			APIKey:       "hf_test",
			Model:        blip,
			HubURL:       url,
			InferenceURL: url,
			Timeout:      5 * time.Second,
			MaxSide:      64,
		},
		Groq: config.Groq{
			APIKey:      "gsk_test",
			Model:       "meta-llama/llama-4-scout-17b-16e-instruct",
			BaseURL:     url,
			MaxTokens:   200,
			Temperature: 0.8,
			TopP:        0.9,
			Timeout:     5 * time.Second,
		},
	}
}

type fakeHub struct {
	modelStatus int
	caption     string
	uploaded    image.Config
}

func (h *fakeHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/api/models/" + blip:
		w.WriteHeader(h.modelStatus)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": blip, "pipeline_tag": "image-to-text"})
	case "/models/" + blip:
		cfg, err := png.DecodeConfig(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad image"}`))

			return
		}

		h.uploaded = cfg
		_ = json.NewEncoder(w).Encode([]map[string]string{{"generated_text": h.caption}})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestNewCaptionService(t *testing.T) {
	t.Run("it should fail without a token", func(t *testing.T) {
		cfg := testConfig("http://127.0.0.1:1")
		cfg.HuggingFace.APIKey = ""

		_, err := services.NewCaptionService(context.Background(), cfg)

		assert.ErrorIs(t, err, caption.ErrModelUnavailable)
		assert.ErrorContains(t, err, "HUGGINGFACE_API_KEY")
	})

	t.Run("it should fail when the model cannot be fetched", func(t *testing.T) {
		srv := httptest.NewServer(&fakeHub{modelStatus: http.StatusUnauthorized})
		defer srv.Close()

		_, err := services.NewCaptionService(context.Background(), testConfig(srv.URL))

		assert.ErrorIs(t, err, caption.ErrModelUnavailable)
	})

	t.Run("it should load an available model", func(t *testing.T) {
		srv := httptest.NewServer(&fakeHub{modelStatus: http.StatusOK})
		defer srv.Close()

		svc, err := services.NewCaptionService(context.Background(), testConfig(srv.URL))
		require.NoError(t, err)

		assert.Equal(t, blip, svc.Model())
	})
}

func TestCaptionServiceGenerate(t *testing.T) {
	t.Run("it should downscale the image and strip special tokens", func(t *testing.T) {
		hub := &fakeHub{modelStatus: http.StatusOK, caption: "[CLS] a red square [SEP]"}
		srv := httptest.NewServer(hub)
		defer srv.Close()

		svc, err := services.NewCaptionService(context.Background(), testConfig(srv.URL))
		require.NoError(t, err)

		text, err := svc.Generate(context.Background(), image.NewNRGBA(image.Rect(0, 0, 128, 32)))
		require.NoError(t, err)

		assert.Equal(t, "a red square", text)
		assert.Equal(t, 64, hub.uploaded.Width)
		assert.Equal(t, 16, hub.uploaded.Height)
	})

	t.Run("it should reject an empty caption", func(t *testing.T) {
		srv := httptest.NewServer(&fakeHub{modelStatus: http.StatusOK, caption: "[SEP]"})
		defer srv.Close()

		svc, err := services.NewCaptionService(context.Background(), testConfig(srv.URL))
		require.NoError(t, err)

		_, err = svc.Generate(context.Background(), image.NewNRGBA(image.Rect(0, 0, 8, 8)))

		assert.ErrorIs(t, err, caption.ErrEmptyCaption)
	})
}
