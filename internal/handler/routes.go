package handler

import (
	"culture-match/internal/middleware"
	"culture-match/internal/service"
	"culture-match/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything the API routes need.
type Handlers struct {
	Questionnaire *QuestionnaireHandler
	Profile       *ProfileHandler
	Match         *MatchHandler
	Health        *HealthHandler
	Auth          service.AuthService
	Validator     *validation.Validator
}

// SetupRoutes mounts the API under /api.
func SetupRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api")
	api.Get("/health", h.Health.Health)
	api.Get("/questionnaire", h.Questionnaire.GetQuestionnaire)
	api.Get("/categories", h.Questionnaire.GetCategories)
	api.Post("/compatibility", h.Match.Compare)

	vm := middleware.NewValidationMiddleware(h.Validator)
	profiles := api.Group("/profiles", middleware.Protected(h.Auth))
	profiles.Post("/", h.Profile.SubmitAnswers)
	profiles.Get("/me", h.Profile.GetMyProfile)
	profiles.Get("/me/matches", vm.ValidateLimit(), h.Match.GetMyMatches)
}
