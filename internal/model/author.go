package model

import (
	"time"

	"github.com/google/uuid"
)

type Author struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName   string    `gorm:"size:100;not null"`
	FamilyName  string    `gorm:"size:100;not null;index"`
	DateOfBirth *time.Time
	DateOfDeath *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
