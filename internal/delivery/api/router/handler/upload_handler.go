package handler

import (
	"io"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// uploadFormField is the multipart field carrying the image.
const uploadFormField = "file"

type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
}

type UploadHandler struct {
	uploadUC usecase.UploadUsecase
}

func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{uploadUC: params.UploadUC}
}

type DeleteImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Multipart field \"file\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "Unable to read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "Unable to read uploaded file")
	}

	out, err := h.uploadUC.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

func (h *UploadHandler) DeleteImage(c echo.Context) error {
	var req DeleteImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid delete input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.uploadUC.DeleteImage(c.Request().Context(), req.URL); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Image deleted")
}
