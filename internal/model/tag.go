package model

import "time"

// Tag is a free-form label attached to tasks. Names are globally unique.
type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []Task `gorm:"many2many:task_tags"`
}
