package handler

import (
	"culture-match/internal/domain"
	"culture-match/internal/dto"
	"culture-match/internal/middleware"
	"culture-match/internal/service"
	"culture-match/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// MatchHandler handles compatibility requests.
type MatchHandler struct {
	matches   service.MatchService
	validator *validation.Validator
}

func NewMatchHandler(matches service.MatchService, validator *validation.Validator) *MatchHandler {
	return &MatchHandler{matches: matches, validator: validator}
}

// Compare godoc
// @Summary Compare two category score maps
// @Description Returns the 0-100 compatibility percentage with a per-category breakdown
// @Tags compatibility
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "Score maps"
// @Success 200 {object} dto.CompareResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /compatibility [post]
func (h *MatchHandler) Compare(c *fiber.Ctx) error {
	var req dto.CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateCompareRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.matches.Compare(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetMyMatches godoc
// @Summary Rank other respondents by compatibility
// @Tags compatibility
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of matches (default 10, max 50)"
// @Success 200 {object} dto.MatchesResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /profiles/me/matches [get]
func (h *MatchHandler) GetMyMatches(c *fiber.Ctx) error {
	limit, _ := c.Locals(middleware.ValidatedLimitKey).(int)

	resp, err := h.matches.FindMatches(c.UserContext(), middleware.RespondentID(c), limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
