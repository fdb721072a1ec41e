package services

import (
	"strings"
	"testing"

	"github.com/IoneseiGabriel/DavaQuiz/internal/apperr"
	"github.com/IoneseiGabriel/DavaQuiz/internal/models"
)

func intPtr(v int) *int { return &v }

func validQuestionInput() QuestionInput {
	return QuestionInput{
		Text:               "What is the capital of France?",
		Options:            []string{"Paris", "London", "Berlin"},
		CorrectOptionIndex: intPtr(0),
		ImageURL:           "http://localhost:8080/api/images/paris.png",
	}
}

func validCreateGameRequest() *CreateGameRequest {
	return &CreateGameRequest{
		Title:         "Geography Quiz",
		Description:   "Capitals of Europe",
		QuestionCount: 1,
		Questions:     []QuestionInput{validQuestionInput()},
	}
}

func TestValidateGameRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateGameRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(r *CreateGameRequest) {}},
		{
			name:    "blank title",
			mutate:  func(r *CreateGameRequest) { r.Title = "   " },
			wantErr: "title cannot be empty",
		},
		{
			name:    "title too long",
			mutate:  func(r *CreateGameRequest) { r.Title = strings.Repeat("x", 101) },
			wantErr: "at most 100 characters",
		},
		{
			name:    "description too long",
			mutate:  func(r *CreateGameRequest) { r.Description = strings.Repeat("x", 501) },
			wantErr: "at most 500 characters",
		},
		{
			name:    "no questions",
			mutate:  func(r *CreateGameRequest) { r.Questions = nil; r.QuestionCount = 0 },
			wantErr: "at least one question",
		},
		{
			name:    "question count mismatch",
			mutate:  func(r *CreateGameRequest) { r.QuestionCount = 3 },
			wantErr: "question count mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateGameRequest()
			tt.mutate(req)

			err := validateGameRequest(req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Fatalf("expected validation kind, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected message to contain %q, got %q", tt.wantErr, err.Error())
			}
		})
	}

	t.Run("nil request", func(t *testing.T) {
		if err := validateGameRequest(nil); !apperr.IsKind(err, apperr.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestValidateQuestionInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QuestionInput)
		wantErr string
	}{
		{name: "valid", mutate: func(q *QuestionInput) {}},
		{
			name:    "blank text",
			mutate:  func(q *QuestionInput) { q.Text = "  " },
			wantErr: "question text cannot be empty",
		},
		{
			name:    "too few options",
			mutate:  func(q *QuestionInput) { q.Options = []string{"only"} },
			wantErr: "between 2 and 6 options",
		},
		{
			name: "too many options",
			mutate: func(q *QuestionInput) {
				q.Options = []string{"a", "b", "c", "d", "e", "f", "g"}
			},
			wantErr: "between 2 and 6 options",
		},
		{
			name:    "missing correct index",
			mutate:  func(q *QuestionInput) { q.CorrectOptionIndex = nil },
			wantErr: "correct option index is required",
		},
		{
			name:    "negative correct index",
			mutate:  func(q *QuestionInput) { q.CorrectOptionIndex = intPtr(-1) },
			wantErr: "out of bounds",
		},
		{
			name: "correct index past last option",
			mutate: func(q *QuestionInput) {
				q.Options = []string{"A", "B"}
				q.CorrectOptionIndex = intPtr(2)
			},
			wantErr: "out of bounds",
		},
		{
			name:    "blank image URL",
			mutate:  func(q *QuestionInput) { q.ImageURL = "" },
			wantErr: "image URL cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestionInput()
			tt.mutate(&q)

			err := validateQuestionInput(q)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected message to contain %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateStatusTransition(t *testing.T) {
	draft := models.GameStatusDraft
	published := models.GameStatusPublished

	tests := []struct {
		current   models.GameStatus
		requested models.GameStatus
		allowed   bool
	}{
		{draft, draft, true},
		{draft, published, true},
		{published, published, true},
		{published, draft, false},
	}

	for _, tt := range tests {
		err := validateStatusTransition(tt.current, tt.requested)
		if tt.allowed {
			if err != nil {
				t.Fatalf("%s -> %s: unexpected error: %v", tt.current, tt.requested, err)
			}
			continue
		}
		if !apperr.IsKind(err, apperr.KindConflict) {
			t.Fatalf("%s -> %s: expected conflict error, got %v", tt.current, tt.requested, err)
		}
		if !strings.Contains(err.Error(), string(tt.current)) || !strings.Contains(err.Error(), string(tt.requested)) {
			t.Fatalf("expected message to name both states, got %q", err.Error())
		}
	}
}
