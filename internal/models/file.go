package models

import "time"

// File is an uploaded image stored as a BLOB row and served back by name.
type File struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	URL         string    `gorm:"size:150;uniqueIndex;not null" json:"url"`
	ContentType string    `gorm:"size:50;not null" json:"content_type"`
	Content     []byte    `gorm:"not null" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
