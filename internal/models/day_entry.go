package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OutcomeChecked = "checked"
	OutcomeMissed  = "missed"
)

// DayEntry is one record of a goal's append-only day ledger. Entries
// are never mutated or removed after the append, except for Note.
type DayEntry struct {
	ID        string    `gorm:"primaryKey"`
	GoalID    string    `gorm:"not null;index"`
	DayNumber int       `gorm:"not null"`
	Date      time.Time `gorm:"type:date;not null"`
	Outcome   string    `gorm:"not null"`
	Note      string
	CreatedAt time.Time `gorm:"not null"`
}

func (DayEntry) TableName() string {
	return "days"
}

func (entry *DayEntry) BeforeCreate(tx *gorm.DB) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return nil
}

// IsValidOutcome reports whether value is one of the two ledger
// outcomes.
func IsValidOutcome(value string) bool {
	return value == OutcomeChecked || value == OutcomeMissed
}
