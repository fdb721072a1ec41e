package models

import "gorm.io/datatypes"

type Question struct {
	ID                 uint                        `gorm:"primaryKey" json:"id"`
	GameID             uint                        `gorm:"not null;index" json:"game_id"`
	Text               string                      `gorm:"type:text;not null" json:"text"`
	Options            datatypes.JSONSlice[string] `gorm:"not null" json:"options"`
	CorrectOptionIndex int                         `gorm:"not null" json:"correct_option_index"`
	ImageURL           string                      `gorm:"size:500;not null" json:"image_url"`
}
