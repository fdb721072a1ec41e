package services

import (
	"github.com/IoneseiGabriel/DavaQuiz/internal/apperr"
	"github.com/IoneseiGabriel/DavaQuiz/internal/models"
	"github.com/IoneseiGabriel/DavaQuiz/internal/ws"

	"gorm.io/gorm"
)

const (
	minPlayerNameLength = 3
	maxPlayerNameLength = 100
)

type PlayerService struct {
	db  *gorm.DB
	hub *ws.Hub
}

func NewPlayerService(db *gorm.DB, hub *ws.Hub) *PlayerService {
	return &PlayerService{db: db, hub: hub}
}

type CreatePlayerRequest struct {
	GameID uint   `json:"gameId"`
	Name   string `json:"name"`
}

// CreatePlayer registers a player on a published game and notifies the
// game's lobby.
func (s *PlayerService) CreatePlayer(req *CreatePlayerRequest) (*models.Player, error) {
	if req == nil {
		return nil, apperr.Validationf("invalid player request")
	}

	if len(req.Name) < minPlayerNameLength || len(req.Name) > maxPlayerNameLength {
		return nil, apperr.Validationf("player name must be between %d and %d characters",
			minPlayerNameLength, maxPlayerNameLength)
	}

	var game models.Game
	if err := s.db.First(&game, req.GameID).Error; err != nil {
		return nil, apperr.NotFoundf("game not found")
	}

	if game.Status != models.GameStatusPublished {
		return nil, apperr.Validationf("game not open for players")
	}

	player := models.Player{
		GameID: game.ID,
		Name:   req.Name,
	}
	if err := s.db.Create(&player).Error; err != nil {
		return nil, err
	}

	s.hub.Broadcast(game.ID, ws.Event{
		Type: ws.EventPlayerJoined,
		Data: map[string]any{
			"player_id": player.ID,
			"game_id":   player.GameID,
			"name":      player.Name,
		},
	})

	return &player, nil
}
