package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"storefront/internal/delivery/api/validator"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartContext(t *testing.T, field, filename, contentType string, data []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/uploads", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUploadHandler_UploadImage(t *testing.T) {
	uploadUC := mockUC.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC})
	data := []byte("\x89PNG\r\n\x1a\nrest-of-image")

	uploadUC.EXPECT().
		UploadImage(mock.Anything, &usecase.UploadImageInput{Filename: "pallu.png", ContentType: "image/png", Data: data}).
		Return(&usecase.UploadOutput{Key: "products/abc.png", URL: "https://cdn.example.com/products/abc.png"}, nil)

	c, rec := multipartContext(t, uploadFormField, "pallu.png", "image/png", data)
	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var out usecase.UploadOutput
	decodeData(t, rec, &out)
	assert.Equal(t, "products/abc.png", out.Key)
}

func TestUploadHandler_UploadImage_Rejections(t *testing.T) {
	uploadUC := mockUC.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC})

	c, rec := multipartContext(t, "image", "pallu.png", "image/png", []byte("x"))
	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_FILE", decodeError(t, rec).Code)

	uploadUC.EXPECT().UploadImage(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUnsupportedMediaType)
	c, rec = multipartContext(t, uploadFormField, "notes.txt", "text/plain", []byte("hello"))
	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, domainerrors.ErrUnsupportedMediaType.HTTPCode(), rec.Code)
}

func TestUploadHandler_DeleteImage(t *testing.T) {
	uploadUC := mockUC.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC})

	uploadUC.EXPECT().DeleteImage(mock.Anything, "https://cdn.example.com/products/abc.png").Return(nil)
	c, rec := newTestContext(testRequest{method: http.MethodDelete, target: "/", body: `{"url":"https://cdn.example.com/products/abc.png"}`})
	require.NoError(t, h.DeleteImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(testRequest{method: http.MethodDelete, target: "/", body: `{"url":""}`})
	require.NoError(t, h.DeleteImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
