package handler

import (
	"culture-match/internal/domain"
	"culture-match/internal/dto"
	"culture-match/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionnaireHandler serves the question schema and category list.
type QuestionnaireHandler struct {
	profiles service.ProfileService
}

func NewQuestionnaireHandler(profiles service.ProfileService) *QuestionnaireHandler {
	return &QuestionnaireHandler{profiles: profiles}
}

// GetQuestionnaire godoc
// @Summary Get the questionnaire
// @Description Returns the active cultural questionnaire
// @Tags questionnaire
// @Produce json
// @Success 200 {object} dto.QuestionnaireResponse
// @Router /questionnaire [get]
func (h *QuestionnaireHandler) GetQuestionnaire(c *fiber.Ctx) error {
	schema := h.profiles.Questionnaire()
	return c.JSON(dto.QuestionnaireResponse{
		Version:   schema.Version,
		Questions: schema.Questions,
	})
}

// GetCategories godoc
// @Summary List categories
// @Description Returns all cultural categories with their compatibility weights and question ids
// @Tags questionnaire
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (h *QuestionnaireHandler) GetCategories(c *fiber.Ctx) error {
	schema := h.profiles.Questionnaire()
	out := make([]dto.CategoryResponse, 0, len(domain.AllCategories()))
	for _, cat := range domain.AllCategories() {
		resp := dto.CategoryResponse{ID: string(cat), Label: cat.Label(), QuestionIDs: []string{}}
		for _, q := range schema.ByCategory(cat) {
			resp.QuestionIDs = append(resp.QuestionIDs, q.ID)
		}
		if w, ok := cat.CompatibilityWeight(); ok {
			resp.CompatibilityWeight = &w
		}
		out = append(out, resp)
	}
	return c.JSON(out)
}
