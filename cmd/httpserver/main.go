package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SeaCloudHub/captioner/adapters/httpserver"
	"github.com/SeaCloudHub/captioner/adapters/services"
	"github.com/SeaCloudHub/captioner/pkg/config"
	"github.com/SeaCloudHub/captioner/pkg/logger"
	"github.com/SeaCloudHub/captioner/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
)

// @title Product Image Captioning API
// @version 1.0

// @schemes http https

// @description Captions product images and rewrites captions into product descriptions.
func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot create logger: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	applog.Infow("loading captioning model", "model", cfg.HuggingFace.Model)

	generator, err := services.NewCaptionService(context.Background(), cfg)
	if err != nil {
		applog.Fatalf("cannot load captioning model: %v", err)
	}

	applog.Infow("captioning model loaded", "model", generator.Model())

	options := []httpserver.Options{httpserver.WithCaptionGenerator(generator)}

	if cfg.EnhancementEnabled() {
		enhancer, err := services.NewEnhancerService(cfg)
		if err != nil {
			applog.Fatal(err)
		}

		options = append(options, httpserver.WithDescriptionEnhancer(enhancer))
	} else {
		applog.Warn("GROQ_API_KEY is not set, enhanced captions fall back to the original caption")
	}

	server, err := httpserver.New(cfg, applog, options...)
	if err != nil {
		applog.Fatal(err)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	applog.Infow("server started!", "addr", addr)
	applog.Fatal(http.ListenAndServe(addr, server))
}
