package app

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrFileNotFound = errors.New("file field not found in form")

// Upload is a multipart file read fully into memory.
type Upload struct {
	ID           string
	FileName     string
	ContentType  string
	DetectedType string
	Data         []byte
}

func (u *Upload) Size() int {
	return len(u.Data)
}

// BindMultipartFile reads the first part named key. ContentType is the type
// declared by the client, DetectedType is sniffed from the content.
func BindMultipartFile(c echo.Context, key string) (*Upload, error) {
	reader, err := c.Request().MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("parsing multipart form: %w", err)
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, key)
		}

		if err != nil {
			return nil, fmt.Errorf("reading multipart form: %w", err)
		}

		if part.FormName() != key {
			continue
		}

		data, err := io.ReadAll(part)
		if err != nil {
			return nil, fmt.Errorf("reading multipart file: %w", err)
		}

		return &Upload{
			ID:           gonanoid.Must(11),
			FileName:     part.FileName(),
			ContentType:  part.Header.Get(echo.HeaderContentType),
			DetectedType: mimetype.Detect(data).String(),
			Data:         data,
		}, nil
	}
}

// IsTooLarge reports whether err comes from a body that exceeded the limit
// set by the body limit middleware.
func IsTooLarge(err error) bool {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code == http.StatusRequestEntityTooLarge
	}

	var mbe *http.MaxBytesError

	return errors.As(err, &mbe)
}
