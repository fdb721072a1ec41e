package models

import "time"

// Player is a participant in a single published game.
type Player struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GameID    uint      `gorm:"not null;index" json:"game_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
