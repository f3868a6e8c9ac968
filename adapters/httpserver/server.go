package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/SeaCloudHub/captioner/adapters/httpserver/model"
	"github.com/SeaCloudHub/captioner/domain/caption"
	"github.com/SeaCloudHub/captioner/pkg/apperror"
	"github.com/SeaCloudHub/captioner/pkg/config"
	"github.com/SeaCloudHub/captioner/pkg/sentry"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Options func(s *Server) error

type Server struct {
	router *echo.Echo
	Config *config.Config
	Logger *zap.SugaredLogger

	// captioning pipeline, DescriptionEnhancer stays nil when enhancement is disabled
	CaptionGenerator    caption.Generator
	DescriptionEnhancer caption.Enhancer

	captions *caption.Service
}

func WithCaptionGenerator(g caption.Generator) Options {
	return func(s *Server) error {
		s.CaptionGenerator = g

		return nil
	}
}

func WithDescriptionEnhancer(e caption.Enhancer) Options {
	return func(s *Server) error {
		s.DescriptionEnhancer = e

		return nil
	}
}

func New(cfg *config.Config, logger *zap.SugaredLogger, options ...Options) (*Server, error) {
	s := Server{
		router: echo.New(),
		Config: cfg,
		Logger: logger,
	}

	s.router.HideBanner = true
	s.router.HidePort = true
	s.router.HTTPErrorHandler = s.httpErrorHandler

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	if s.CaptionGenerator == nil {
		return nil, errors.New("caption generator is required")
	}

	s.captions = caption.NewService(s.CaptionGenerator, s.DescriptionEnhancer)

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthCheck(s.router.Group(""))
	s.RegisterCaptionRoutes(s.router.Group(""))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.router.Use(middleware.Recover())
	s.router.Use(middleware.Secure())
	s.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.router.Use(middleware.Gzip())
	s.router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	if s.Config.MaxUploadSize != "" {
		s.router.Use(middleware.BodyLimit(s.Config.MaxUploadSize))
	}

	// CORS
	if s.Config.AllowOrigins != "" {
		aos := strings.Split(s.Config.AllowOrigins, ",")
		s.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: aos,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) RegisterHealthCheck(router *echo.Group) {
	router.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK!!!")
	})
}

func (s *Server) error(c echo.Context, err error) error {
	var appErr apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.ErrInternalServer(err)
	}

	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
		zap.String("code", appErr.ErrorCode),
	)

	if appErr.HTTPCode >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	return c.JSON(appErr.HTTPCode, model.ErrorResponse{
		Detail: appErr.Detail(),
	})
}

// httpErrorHandler renders errors raised outside handlers (unknown routes,
// body limit, panics) with the same envelope.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = s.error(c, err)

		return
	}

	detail := fmt.Sprint(he.Message)
	if he.Code == http.StatusRequestEntityTooLarge {
		_ = s.error(c, apperror.ErrEntityTooLarge(errors.New(detail)))

		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)

		return
	}

	_ = c.JSON(he.Code, model.ErrorResponse{Detail: detail})
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
