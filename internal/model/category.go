package model

import "time"

// Category groups tasks by area (work, health, study, etc.).
// Names are globally unique; the match is case-sensitive.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex"`
	Description string
	ColorCode   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Tasks       []Task `gorm:"foreignKey:CategoryID"`
}
