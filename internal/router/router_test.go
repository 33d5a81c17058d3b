package router

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHealthRoute(t *testing.T) {
	app := fiber.New()
	r := &Router{}
	r.RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "OK", body["status"])
}

func TestCorsMiddlewareAllowsConfiguredOrigin(t *testing.T) {
	app := fiber.New()
	app.Use(CorsMiddleware("http://localhost:3000"))
	(&Router{}).RegisterRoutes(app)

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}
