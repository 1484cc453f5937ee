package middleware

import (
	"strings"

	"culture-match/internal/domain"
	"culture-match/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	RespondentIDKey     = "respondentID"
)

// Protected requires a valid bearer token and stores its subject under RespondentIDKey.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			return domain.NewError(domain.CodeUnauthorized, "Invalid or expired token", err)
		}

		c.Locals(RespondentIDKey, claims.Subject)
		return c.Next()
	}
}

// RespondentID returns the respondent stored by Protected, or "".
func RespondentID(c *fiber.Ctx) string {
	id, _ := c.Locals(RespondentIDKey).(string)
	return id
}
