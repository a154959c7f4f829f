package server

import (
	"polyglot/internal/middleware"
	"polyglot/internal/response"

	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

// GetFeatureFlags returns the configured feature flags as written in
// FEATURE_FLAGS along with the rollout percentage each one resolves to.
// @Summary List configured feature flags
// @Tags feature-flags
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /feature-flags [get]
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	rollout := map[string]int{}
	for _, name := range s.featureFlags.Names() {
		rollout[name] = s.featureFlags.Rollout(name)
	}
	return c.JSON(response.Success(fiber.Map{
		"raw":     s.featureFlags.Raw(),
		"rollout": rollout,
	}, middleware.RequestID(c)))
}

// OpenAPISpec serves the registered OpenAPI document at its historical path.
func (s *Server) OpenAPISpec(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return respondWithError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}
