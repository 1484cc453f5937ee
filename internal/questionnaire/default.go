package questionnaire

import "culture-match/internal/domain"

const defaultVersion = "2024.1"

func opts(pairs ...interface{}) []domain.Option {
	out := make([]domain.Option, 0, len(pairs)/3)
	for i := 0; i+2 < len(pairs); i += 3 {
		out = append(out, domain.Option{
			ID:    pairs[i].(string),
			Label: pairs[i+1].(string),
			Value: pairs[i+2].(float64),
		})
	}
	return out
}

var defaultQuestions = []domain.Question{
	{
		ID: "food_sunday_lunch", Category: domain.CategoryFood, Type: domain.QuestionTypeMultipleChoice, Weight: 1.5,
		Prompt: "How important is a traditional Sunday lunch to you?",
		Options: opts(
			"essential", "Essential, every week with bacalhau or cozido", 10.0,
			"often", "Often, when family is around", 7.0,
			"sometimes", "Sometimes, on special occasions", 4.0,
			"rarely", "Rarely", 1.0,
		),
	},
	{
		ID: "food_dishes", Category: domain.CategoryFood, Type: domain.QuestionTypeImageSelection, Weight: 1.0,
		Prompt: "Which dishes would you love to share with a partner?",
		Options: opts(
			"bacalhau", "Bacalhau à Brás", 9.0,
			"pasteis", "Pastéis de nata", 8.0,
			"francesinha", "Francesinha", 8.0,
			"caldo_verde", "Caldo verde", 9.0,
			"sushi", "Something international", 3.0,
		),
	},
	{
		ID: "music_fado", Category: domain.CategoryMusic, Type: domain.QuestionTypeSlider, Weight: 1.2,
		Prompt: "How much does fado move you? (0-10)",
	},
	{
		ID: "music_events", Category: domain.CategoryMusic, Type: domain.QuestionTypeMultipleChoice, Weight: 1.0,
		Prompt: "Which music events do you attend?",
		Options: opts(
			"fado_house", "Fado houses", 10.0,
			"folk", "Folk groups (ranchos)", 9.0,
			"kizomba", "Kizomba and lusophone nights", 7.0,
			"none", "I rarely go to Portuguese music events", 2.0,
		),
	},
	{
		ID: "traditions_ranking", Category: domain.CategoryTraditions, Type: domain.QuestionTypeRanking, Weight: 2.0,
		Prompt: "Rank these traditions by how much you keep them alive",
		Options: opts(
			"religious", "Religious celebrations and romarias", 9.0,
			"crafts", "Crafts such as azulejos and embroidery", 8.0,
			"customs", "Family customs passed between generations", 10.0,
			"modern", "Modern takes on old customs", 5.0,
		),
	},
	{
		ID: "traditions_pass_on", Category: domain.CategoryTraditions, Type: domain.QuestionTypeSlider, Weight: 1.5,
		Prompt: "How important is passing traditions to the next generation? (0-10)",
	},
	{
		ID: "family_closeness", Category: domain.CategoryFamily, Type: domain.QuestionTypeMultipleChoice, Weight: 2.0,
		Prompt: "How involved is your extended family in your life?",
		Options: opts(
			"daily", "We talk every day", 10.0,
			"weekly", "Every week", 8.0,
			"monthly", "A few times a month", 5.0,
			"independent", "I am quite independent", 2.0,
		),
	},
	{
		ID: "family_future", Category: domain.CategoryFamily, Type: domain.QuestionTypeSlider, Weight: 1.5,
		Prompt: "How much does family shape your plans for the future? (0-10)",
	},
	{
		ID: "language_home", Category: domain.CategoryLanguage, Type: domain.QuestionTypeMultipleChoice, Weight: 1.8,
		Prompt: "Which language do you speak at home?",
		Options: opts(
			"portuguese", "Mostly Portuguese", 10.0,
			"mixed", "A mix of Portuguese and English", 7.0,
			"english_some", "Mostly English with some Portuguese", 4.0,
			"english", "Only English", 1.0,
		),
	},
	{
		ID: "language_fluency", Category: domain.CategoryLanguage, Type: domain.QuestionTypeSlider, Weight: 1.2,
		Prompt: "How fluent is your Portuguese? (0-10)",
	},
	{
		ID: "integration_balance", Category: domain.CategoryIntegration, Type: domain.QuestionTypeSlider, Weight: 1.2,
		Prompt: "How comfortable are you moving between Portuguese and local culture? (0-10)",
	},
	{
		ID: "integration_circle", Category: domain.CategoryIntegration, Type: domain.QuestionTypeMultipleChoice, Weight: 1.0,
		Prompt: "What does your social circle look like?",
		Options: opts(
			"mixed", "A balanced mix of backgrounds", 10.0,
			"mostly_local", "Mostly locals", 6.0,
			"mostly_pt", "Mostly Portuguese speakers", 5.0,
		),
	},
	{
		ID: "community_participation", Category: domain.CategoryCommunity, Type: domain.QuestionTypeMultipleChoice, Weight: 1.3,
		Prompt: "How do you take part in the Portuguese community?",
		Options: opts(
			"organiser", "I help organise events", 10.0,
			"member", "I am a member of an association", 8.0,
			"visitor", "I go to events now and then", 5.0,
			"none", "I am not involved", 1.0,
		),
	},
	{
		ID: "community_church", Category: domain.CategoryCommunity, Type: domain.QuestionTypeSlider, Weight: 1.0,
		Prompt: "How connected are you to your local parish or community centre? (0-10)",
	},
	{
		ID: "values_ranking", Category: domain.CategoryValues, Type: domain.QuestionTypeRanking, Weight: 1.7,
		Prompt: "Rank what matters most to you in a relationship",
		Options: opts(
			"family", "Family first", 10.0,
			"faith", "Shared faith", 9.0,
			"respect", "Respect for elders", 9.0,
			"adventure", "Adventure and novelty", 5.0,
			"career", "Career ambitions", 4.0,
		),
	},
	{
		ID: "holidays_santos", Category: domain.CategoryHolidays, Type: domain.QuestionTypeMultipleChoice, Weight: 1.0,
		Prompt: "How do you celebrate the Santos Populares?",
		Options: opts(
			"sardines", "Grilled sardines and marchas every June", 10.0,
			"sometimes", "When a local festa is on", 6.0,
			"never", "I don't celebrate them", 1.0,
		),
	},
	{
		ID: "holidays_christmas", Category: domain.CategoryHolidays, Type: domain.QuestionTypeSlider, Weight: 1.0,
		Prompt: "How traditional is your Consoada on Christmas Eve? (0-10)",
	},
	{
		ID: "regional_origin", Category: domain.CategoryRegional, Type: domain.QuestionTypeImageSelection, Weight: 1.0,
		Prompt: "Which regions do you feel connected to?",
		Options: opts(
			"minho", "Minho", 9.0,
			"porto", "Porto e Norte", 9.0,
			"lisboa", "Lisboa", 8.0,
			"alentejo", "Alentejo", 9.0,
			"algarve", "Algarve", 8.0,
			"acores", "Açores", 10.0,
			"madeira", "Madeira", 10.0,
			"none", "None in particular", 2.0,
		),
	},
	{
		ID: "regional_pride", Category: domain.CategoryRegional, Type: domain.QuestionTypeSlider, Weight: 1.0,
		Prompt: "How strongly do you identify with your family's home region? (0-10)",
	},
}

// Default returns the built-in questionnaire.
func Default() *Schema {
	questions := make([]domain.Question, len(defaultQuestions))
	copy(questions, defaultQuestions)
	s, err := NewSchema(defaultVersion, questions)
	if err != nil {
		panic("questionnaire: invalid built-in schema: " + err.Error())
	}
	return s
}
