package server

import (
	"errors"
	"log/slog"
	"strings"
	"unicode"

	"polyglot/internal/middleware"
	"polyglot/internal/models"
	"polyglot/internal/response"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// statusFor maps an error code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeInvalidLanguage, models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeMethodNotAllowed:
		return fiber.StatusMethodNotAllowed
	case models.CodeRateLimited:
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}

// toAppError classifies any handler error. Anything unrecognised becomes
// INTERNAL_ERROR so its text never reaches the client.
func toAppError(c *fiber.Ctx, err error) *models.AppError {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return models.NewNotFoundError("Endpoint", c.Path())
		case fiber.StatusMethodNotAllowed:
			return models.NewMethodNotAllowedError()
		case fiber.StatusTooManyRequests:
			return models.NewRateLimitedError()
		case fiber.StatusBadRequest:
			return models.NewValidationError(fe.Message)
		}
	}

	return models.NewInternalError(err)
}

// respondWithError writes the error envelope for err and returns nil.
func respondWithError(c *fiber.Ctx, err error) error {
	appErr := toAppError(c, err)
	status := statusFor(appErr.Code)

	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request error",
			slog.String("code", appErr.Code),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}

	return c.Status(status).JSON(
		response.Failure(appErr.Code, appErr.Message, appErr.Details, middleware.RequestID(c)))
}

// ErrorHandler is the fiber error handler. It covers errors that escape the
// handlers: recovered panics, routing misses and middleware failures.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondWithError(c, err)
}

// readOnly rejects every method but GET. A bare OPTIONS that CORS did not
// treat as a preflight is answered with 204.
func readOnly(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodGet:
		return c.Next()
	case fiber.MethodOptions:
		return c.SendStatus(fiber.StatusNoContent)
	default:
		return respondWithError(c, models.NewMethodNotAllowedError())
	}
}

// parseID extracts a route parameter by name as a non-negative uint. Zero is
// accepted and simply matches no row.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id < 0 {
		_ = respondWithError(c, models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "postId" -> "post ID", "referenceId" -> "reference ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		words := splitCamel(param[:len(param)-2])
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}
