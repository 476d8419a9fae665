package models

import "time"

// Writing is a single stored text: a poem, a short story or a loose note.
// Content holds the rich-text HTML produced by the editor.
type Writing struct {
	ID        uint      `gorm:"primaryKey"`
	Category  string    `gorm:"size:32;index;not null"`
	Title     string    `gorm:"size:255;not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultTitle is used when a writing is saved with an empty title.
const DefaultTitle = "Sin título"
