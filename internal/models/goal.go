package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal is a streak target of TotalDays days starting on StartDate.
// CompletedCount is mutated only by the progress service, through
// ledger appends.
type Goal struct {
	ID             string    `gorm:"primaryKey"`
	OwnerID        string    `gorm:"not null;uniqueIndex:uidx_goals_owner_title"`
	Title          string    `gorm:"not null;uniqueIndex:uidx_goals_owner_title"`
	TotalDays      int       `gorm:"not null"`
	CompletedCount int       `gorm:"not null;default:0"`
	StartDate      time.Time `gorm:"type:date;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	ModifiedAt     time.Time `gorm:"not null"`
}

func (goal *Goal) BeforeCreate(tx *gorm.DB) error {
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	return nil
}
