package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/ventas-api/internal/interfaces/http"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

func requestApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestID(), apphttp.RequestLogger(logger.Nop()))
	app.Get("/id", func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetRequestID(c))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "boom")
	})
	return app
}

func TestRequestID_GeneraUUID(t *testing.T) {
	resp, err := requestApp().Test(httptest.NewRequest(http.MethodGet, "/id", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	id := resp.Header.Get(apphttp.HeaderRequestID)
	_, err = uuid.Parse(id)
	assert.NoError(t, err, "debe generarse un UUID: %q", id)
}

func TestRequestID_RespetaCabecera(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")

	resp, err := requestApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRequestLogger_ConservaEstadoDeError(t *testing.T) {
	resp, err := requestApp().Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}
