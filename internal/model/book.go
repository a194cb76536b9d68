package model

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Author    Author    `gorm:"foreignKey:AuthorID"`
	Summary   string    `gorm:"not null"`
	ISBN      string    `gorm:"column:isbn;not null"`
	Genres    []Genre   `gorm:"many2many:book_genres"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
