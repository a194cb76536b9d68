package model

import (
	"time"

	"github.com/google/uuid"
)

// Genre names are unique; creating a genre that already exists reuses it.
type Genre struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
