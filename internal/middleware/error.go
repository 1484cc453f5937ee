package middleware

import (
	"errors"
	"net/http"

	"culture-match/internal/domain"
	"culture-match/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse lists every invalid field of a rejected request.
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// ErrorHandler renders errors returned by handlers and middleware.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if fields, ok := asValidationErrors(err); ok {
			logger.Get().Warn("Request rejected by validation",
				zap.String("path", c.Path()),
				zap.Int("fields", len(fields)))
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  fields,
			})
		}

		resp := toErrorResponse(err)
		logError(c, err, resp)
		return c.Status(resp.Status).JSON(resp)
	}
}

func asValidationErrors(err error) ([]domain.ValidationError, bool) {
	var list domain.ValidationErrors
	if errors.As(err, &list) {
		return list, true
	}
	var single *domain.ValidationError
	if errors.As(err, &single) {
		return []domain.ValidationError{*single}, true
	}
	return nil, false
}

func toErrorResponse(err error) ErrorResponse {
	var de *domain.DomainError
	if errors.As(err, &de) {
		resp := ErrorResponse{Code: string(de.Code), Message: de.Message, Status: statusForCode(de.Code)}
		if len(de.Context) > 0 {
			resp.Details = de.Context
		}
		return resp
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message, Status: fe.Code}
	}

	return ErrorResponse{
		Code:    string(domain.CodeInternal),
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
	}
}

// 5xx are logged as errors with the full cause; everything else is a warning.
func logError(c *fiber.Ctx, err error, resp ErrorResponse) {
	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("code", resp.Code),
		zap.Int("status", resp.Status),
	}
	if resp.Status >= http.StatusInternalServerError {
		logger.Get().Error("Request failed", append(fields, zap.Error(err))...)
		return
	}
	logger.Get().Warn("Request failed", append(fields, zap.String("message", resp.Message))...)
}

func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeNotFound, domain.CodeProfileNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeInvalidCategory,
		domain.CodeValidation, domain.CodeMissingField, domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
