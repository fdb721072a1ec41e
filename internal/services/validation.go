package services

import (
	"strings"

	"github.com/IoneseiGabriel/DavaQuiz/internal/apperr"
	"github.com/IoneseiGabriel/DavaQuiz/internal/models"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
	minOptions           = 2
	maxOptions           = 6
)

func validateGameRequest(req *CreateGameRequest) error {
	if req == nil {
		return apperr.Validationf("game request cannot be empty")
	}

	if err := validateTitle(req.Title); err != nil {
		return err
	}

	if err := validateDescription(req.Description); err != nil {
		return err
	}

	if len(req.Questions) == 0 {
		return apperr.Validationf("at least one question is required")
	}

	if len(req.Questions) != req.QuestionCount {
		return apperr.Validationf("question count mismatch: declared %d, got %d",
			req.QuestionCount, len(req.Questions))
	}

	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apperr.Validationf("game title cannot be empty")
	}
	if len(title) > maxTitleLength {
		return apperr.Validationf("game title must be at most %d characters", maxTitleLength)
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return apperr.Validationf("game description must be at most %d characters", maxDescriptionLength)
	}
	return nil
}

func validateQuestionInput(q QuestionInput) error {
	if strings.TrimSpace(q.Text) == "" {
		return apperr.Validationf("question text cannot be empty")
	}

	if len(q.Options) < minOptions || len(q.Options) > maxOptions {
		return apperr.Validationf("each question must have between %d and %d options", minOptions, maxOptions)
	}

	if q.CorrectOptionIndex == nil {
		return apperr.Validationf("a correct option index is required for each question")
	}

	if *q.CorrectOptionIndex < 0 || *q.CorrectOptionIndex >= len(q.Options) {
		return apperr.Validationf("the correct option index is out of bounds for your question: %s", q.Text)
	}

	if strings.TrimSpace(q.ImageURL) == "" {
		return apperr.Validationf("image URL cannot be empty")
	}

	return nil
}

// validateStatusTransition enforces the one-way game lifecycle: staying in
// the current status is always a no-op, DRAFT may move to PUBLISHED, and a
// published game never returns to draft.
func validateStatusTransition(current, requested models.GameStatus) error {
	if current == requested {
		return nil
	}
	if current == models.GameStatusDraft && requested == models.GameStatusPublished {
		return nil
	}
	return apperr.Conflictf("invalid status transition from %s to %s", current, requested)
}

func checkPageArgument(value int, name string) error {
	if value < 0 {
		return apperr.Validationf("invalid %s number", name)
	}
	return nil
}
