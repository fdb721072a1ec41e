package services

import (
	"time"

	"github.com/IoneseiGabriel/DavaQuiz/internal/apperr"
	"github.com/IoneseiGabriel/DavaQuiz/internal/filter"
	"github.com/IoneseiGabriel/DavaQuiz/internal/models"
	"github.com/IoneseiGabriel/DavaQuiz/internal/ws"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GameService struct {
	db  *gorm.DB
	hub *ws.Hub
}

func NewGameService(db *gorm.DB, hub *ws.Hub) *GameService {
	return &GameService{db: db, hub: hub}
}

type QuestionInput struct {
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectOptionIndex *int     `json:"correctOptionIndex"`
	ImageURL           string   `json:"imageUrl"`
}

type CreateGameRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	QuestionCount int             `json:"questionCount"`
	Questions     []QuestionInput `json:"questions"`
}

// UpdateGameRequest carries a partial metadata patch; only non-nil fields
// are applied.
type UpdateGameRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type GamePage struct {
	Content       []models.Game `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalPages    int           `json:"totalPages"`
	TotalElements int64         `json:"totalElements"`
	FilteredBy    []string      `json:"filteredBy,omitempty"`
	LastPage      bool          `json:"lastPage"`
}

// ListGames retrieves one page of games matching the given field=value
// filters. A nonzero page at or past the end of the filtered result set is
// reported as not found; page zero of an empty result set is an empty page.
func (s *GameService) ListGames(page, size int, filters map[string]string) (*GamePage, error) {
	if err := checkPageArgument(page, "page"); err != nil {
		return nil, err
	}
	if err := checkPageArgument(size, "size"); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, apperr.Validationf("invalid size number")
	}

	scope, err := filter.GameScope(filters)
	if err != nil {
		return nil, err
	}

	query := s.db.Model(&models.Game{})
	if scope != nil {
		query = scope(query)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if page != 0 && page >= totalPages {
		return nil, apperr.NotFoundf("page with number %d was not found", page)
	}

	var games []models.Game
	err = query.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&games).Error
	if err != nil {
		return nil, err
	}

	return &GamePage{
		Content:       games,
		Page:          page,
		Size:          size,
		TotalPages:    totalPages,
		TotalElements: total,
		FilteredBy:    filter.FilteredBy(filters),
		LastPage:      page >= totalPages-1,
	}, nil
}

// CreateGame validates the payload and persists the game together with all
// of its questions in a single transaction.
func (s *GameService) CreateGame(userID uint, req *CreateGameRequest) (*models.Game, error) {
	if err := validateGameRequest(req); err != nil {
		return nil, err
	}

	status := models.GameStatusDraft
	if req.Status != "" {
		parsed, ok := models.ParseGameStatus(req.Status)
		if !ok {
			return nil, apperr.Validationf("invalid game status '%s'", req.Status)
		}
		status = parsed
	}

	questions := make([]models.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		if err := validateQuestionInput(q); err != nil {
			return nil, err
		}
		questions = append(questions, models.Question{
			Text:               q.Text,
			Options:            datatypes.JSONSlice[string](q.Options),
			CorrectOptionIndex: *q.CorrectOptionIndex,
			ImageURL:           q.ImageURL,
		})
	}

	game := models.Game{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		CreatedBy:   userID,
		Questions:   questions,
	}

	if err := s.db.Create(&game).Error; err != nil {
		return nil, err
	}

	return &game, nil
}

// UpdateGameMetadata applies a partial patch to a game's title, description
// and status. The game is loaded by id and creator in one lookup, so a
// missing game and a foreign game are reported uniformly as not found.
func (s *GameService) UpdateGameMetadata(gameID, userID uint, req *UpdateGameRequest) (*models.Game, error) {
	var game models.Game
	if err := s.db.Where("id = ? AND created_by = ?", gameID, userID).First(&game).Error; err != nil {
		return nil, apperr.NotFoundf("game not found")
	}

	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
		game.Title = *req.Title
	}

	if req.Description != nil {
		if err := validateDescription(*req.Description); err != nil {
			return nil, err
		}
		game.Description = *req.Description
	}

	published := false
	if req.Status != nil {
		requested, ok := models.ParseGameStatus(*req.Status)
		if !ok {
			return nil, apperr.Validationf("invalid game status '%s'", *req.Status)
		}
		if err := validateStatusTransition(game.Status, requested); err != nil {
			return nil, err
		}
		published = game.Status == models.GameStatusDraft && requested == models.GameStatusPublished
		game.Status = requested
	}

	// An empty patch still refreshes the updated-at timestamp.
	game.UpdatedAt = time.Now()

	if err := s.db.Save(&game).Error; err != nil {
		return nil, err
	}

	if published {
		s.hub.Broadcast(game.ID, ws.Event{Type: ws.EventGamePublished, Data: gameEvent(&game)})
	}

	return &game, nil
}

// AddQuestion attaches a single question to a draft game owned by the given
// user. Checks run in a fixed order so the most specific failure wins:
// existence, then draft state, then ownership, then field validation.
func (s *GameService) AddQuestion(gameID, userID uint, input QuestionInput) (*models.Question, error) {
	var game models.Game
	if err := s.db.First(&game, gameID).Error; err != nil {
		return nil, apperr.NotFoundf("game not found with id: %d", gameID)
	}

	if game.Status != models.GameStatusDraft {
		return nil, apperr.Conflictf("cannot add questions to a non-draft game")
	}

	if game.CreatedBy != userID {
		return nil, apperr.Forbidden("you are not allowed to modify this game")
	}

	if err := validateQuestionInput(input); err != nil {
		return nil, err
	}

	question := models.Question{
		GameID:             game.ID,
		Text:               input.Text,
		Options:            datatypes.JSONSlice[string](input.Options),
		CorrectOptionIndex: *input.CorrectOptionIndex,
		ImageURL:           input.ImageURL,
	}

	tx := s.db.Begin()
	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Model(&game).Update("updated_at", time.Now()).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &question, nil
}

func gameEvent(game *models.Game) map[string]any {
	return map[string]any{
		"game_id": game.ID,
		"title":   game.Title,
		"status":  game.Status,
	}
}
