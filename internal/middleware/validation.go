package middleware

import (
	"culture-match/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const ValidatedLimitKey = "validated_limit"

// ValidationMiddleware validates query parameters before they reach handlers.
type ValidationMiddleware struct {
	validator *validation.Validator
}

func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: v}
}

// ValidateLimit parses the optional limit query parameter into ValidatedLimitKey.
func (vm *ValidationMiddleware) ValidateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, errs := vm.validator.ParseLimit(c.Query("limit"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedLimitKey, limit)
		return c.Next()
	}
}
