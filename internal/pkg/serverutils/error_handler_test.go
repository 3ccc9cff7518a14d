package serverutils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageQuery struct {
	Page int `validate:"required,gt=0"`
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("connection refused")
	})
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, MessageNotFound)
	})
	app.Get("/invalid", func(ctx *fiber.Ctx) error {
		return ValidateRequest(pageQuery{})
	})

	tests := []struct {
		path        string
		wantStatus  int
		wantMessage string
	}{
		{"/boom", fiber.StatusInternalServerError, MessageError},
		{"/missing", fiber.StatusNotFound, MessageNotFound},
		{"/invalid", fiber.StatusBadRequest, "Page failed on required"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			var body BaseResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestValidateRequestPasses(t *testing.T) {
	assert.NoError(t, ValidateRequest(pageQuery{Page: 2}))
}
