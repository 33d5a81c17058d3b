package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the dashboard frontend origin.
func CorsMiddleware(origin string) fiber.Handler {
	if origin == "" {
		origin = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins: origin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		// Credentialed requests are only valid for a concrete origin.
		AllowCredentials: origin != "*",
	})
}
