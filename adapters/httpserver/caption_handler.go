package httpserver

import (
	"net/http"

	"github.com/SeaCloudHub/captioner/adapters/httpserver/model"
	"github.com/SeaCloudHub/captioner/domain/caption"
	"github.com/SeaCloudHub/captioner/pkg/app"
	"github.com/SeaCloudHub/captioner/pkg/apperror"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const captionFormField = "file"

// Caption godoc
// @Summary Caption
// @Description Generate a caption for an image and rewrite it as a product description
// @Tags caption
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} model.CaptionResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /caption [post]
func (s *Server) Caption(c echo.Context) error {
	var ctx = app.NewEchoContextAdapter(c)

	upload, err := app.BindMultipartFile(c, captionFormField)
	if err != nil {
		if app.IsTooLarge(err) {
			return s.error(c, apperror.ErrEntityTooLarge(err))
		}

		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	s.Logger.Infow("caption requested",
		"request_id", s.requestID(c),
		"upload_id", upload.ID,
		"file_name", upload.FileName,
		"content_type", upload.ContentType,
		"detected_type", upload.DetectedType,
		"size", upload.Size(),
	)

	result, err := s.captions.Caption(ctx, caption.Blob{
		Data:        upload.Data,
		ContentType: upload.ContentType,
		FileName:    upload.FileName,
	})
	if err != nil {
		if errors.Is(err, caption.ErrNotAnImage) {
			return s.error(c, apperror.ErrInvalidFileType(err))
		}

		return s.error(c, apperror.ErrProcessing(err))
	}

	return c.JSON(http.StatusOK, model.NewCaptionResponse(result))
}

func (s *Server) RegisterCaptionRoutes(router *echo.Group) {
	router.POST("/caption", s.Caption)
}
