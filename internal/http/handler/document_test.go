package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gemtrade/internal/service"
	serviceMocks "gemtrade/internal/service/mocks"
	"gemtrade/internal/storage"
)

func TestServeUpload(t *testing.T) {
	mockIntake := new(serviceMocks.MockDocumentIntake)
	app := fiber.New()
	app.Get("/uploads/:file", ServeUpload(mockIntake))

	t.Run("streams the stored document", func(t *testing.T) {
		body := io.NopCloser(strings.NewReader("%PDF-1.4"))
		mockIntake.On("Open", mock.Anything, "uuid-passport.pdf").
			Return(body, storage.ObjectInfo{ContentType: "application/pdf", Size: 8}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/uploads/uuid-passport.pdf", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

		b, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "%PDF-1.4", string(b))
		mockIntake.AssertExpectations(t)
	})

	t.Run("missing object", func(t *testing.T) {
		mockIntake.On("Open", mock.Anything, "missing.pdf").
			Return(nil, storage.ObjectInfo{}, errors.New("NoSuchKey")).Once()

		req := httptest.NewRequest(http.MethodGet, "/uploads/missing.pdf", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var res messagePayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "File not found", res.Message)
	})

	t.Run("invalid name", func(t *testing.T) {
		mockIntake.On("Open", mock.Anything, "bad%name").
			Return(nil, storage.ObjectInfo{}, service.ErrDocumentNameRequired).Once()

		req := httptest.NewRequest(http.MethodGet, "/uploads/bad%25name", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res messagePayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "Invalid file name", res.Message)
	})
}
