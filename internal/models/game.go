package models

import (
	"strings"
	"time"
)

// GameStatus is the lifecycle state of a game. Transitions only ever go
// DRAFT -> PUBLISHED; a published game never returns to draft.
type GameStatus string

const (
	GameStatusDraft     GameStatus = "DRAFT"
	GameStatusPublished GameStatus = "PUBLISHED"
)

// ParseGameStatus normalizes a raw status string case-insensitively.
func ParseGameStatus(raw string) (GameStatus, bool) {
	switch GameStatus(strings.ToUpper(raw)) {
	case GameStatusDraft:
		return GameStatusDraft, true
	case GameStatusPublished:
		return GameStatusPublished, true
	}
	return "", false
}

type Game struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:100;not null" json:"title"`
	Description string     `gorm:"size:500" json:"description,omitempty"`
	Status      GameStatus `gorm:"size:20;not null;default:'DRAFT'" json:"status"`
	CreatedBy   uint       `gorm:"not null;index" json:"created_by"`
	Questions   []Question `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// QuestionCount is included in game payloads so clients can render list
// entries without the full question bodies.
func (g *Game) QuestionCount() int {
	return len(g.Questions)
}
