package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorHelpers(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, BadRequest("bad").Code)
	assert.Equal(t, fiber.StatusNotFound, NotFound("gone").Code)

	internal := Internal("broke", "stack details")
	assert.Equal(t, fiber.StatusInternalServerError, internal.Code)
	assert.Equal(t, "broke", internal.Error())
	assert.Equal(t, "stack details", internal.Details)
}

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   map[string]interface{}
	}{
		{
			name:       "app error keeps its code and message",
			err:        NotFound("Message not found or cannot edit assistant messages"),
			wantStatus: fiber.StatusNotFound,
			wantBody:   map[string]interface{}{"error": "Message not found or cannot edit assistant messages"},
		},
		{
			name:       "app error with details includes them",
			err:        Internal("Failed to delete session", "disk full"),
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   map[string]interface{}{"error": "Failed to delete session", "details": "disk full"},
		},
		{
			name:       "plain error becomes generic 500",
			err:        errors.New("gorm: broken pipe"),
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   map[string]interface{}{"error": "Internal server error", "details": "gorm: broken pipe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/boom", func(ctx *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Message string `json:"message" validate:"required"`
	}

	assert.NoError(t, ValidateRequest(payload{Message: "hello"}))

	err := ValidateRequest(payload{})
	require.Error(t, err)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, fiber.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "Message")
}
