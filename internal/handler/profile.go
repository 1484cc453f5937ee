package handler

import (
	"culture-match/internal/domain"
	"culture-match/internal/dto"
	"culture-match/internal/middleware"
	"culture-match/internal/service"
	"culture-match/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles questionnaire submissions and profile reads.
type ProfileHandler struct {
	profiles  service.ProfileService
	validator *validation.Validator
}

func NewProfileHandler(profiles service.ProfileService, validator *validation.Validator) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, validator: validator}
}

// SubmitAnswers godoc
// @Summary Submit questionnaire answers
// @Description Scores the answers and replaces the caller's cultural profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answers body dto.SubmitAnswersRequest true "Answers"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateSubmitAnswersRequest(&req); len(errs) > 0 {
		return errs
	}

	profile, err := h.profiles.SubmitAnswers(c.UserContext(), middleware.RespondentID(c), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProfileResponse(profile))
}

// GetMyProfile godoc
// @Summary Get my cultural profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /profiles/me [get]
func (h *ProfileHandler) GetMyProfile(c *fiber.Ctx) error {
	profile, err := h.profiles.GetProfile(c.UserContext(), middleware.RespondentID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProfileResponse(profile))
}
