package model

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

// DefaultStatus is assigned to new instances that arrive without a status.
const DefaultStatus = StatusMaintenance

var Statuses = []Status{
	StatusAvailable,
	StatusMaintenance,
	StatusLoaned,
	StatusReserved,
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type BookInstance struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BookID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Book         Book           `gorm:"foreignKey:BookID"`
	Imprint      string         `gorm:"not null"`
	Status       Status         `gorm:"size:16;not null;index"`
	DueBack      *time.Time
	CreationDate time.Time      `gorm:"not null;<-:create"`
	History      []HistoryEntry `gorm:"foreignKey:BookInstanceID"`
	UpdatedAt    time.Time
}

// HistoryEntry records one status transition. Rows are insert-only.
type HistoryEntry struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	BookInstanceID uuid.UUID `gorm:"type:uuid;not null;index;<-:create"`
	Action         Status    `gorm:"size:16;not null;<-:create"`
	Time           time.Time `gorm:"column:occurred_at;not null;<-:create"`
}

func (HistoryEntry) TableName() string {
	return "book_instance_history"
}
