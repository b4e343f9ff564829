package db

import (
	"strings"

	"github.com/avrilov/stride/internal/services"
	"gorm.io/gorm"
)

type Repositories struct {
	Profiles *ProfileRepository
	Goals    *GoalRepository
	Days     *DayEntryRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles: NewProfileRepository(database),
		Goals:    NewGoalRepository(database),
		Days:     NewDayEntryRepository(database),
	}
}

// translateUniqueViolation maps sqlite unique-index violations to the
// retryable conflict error; every other error passes through.
func translateUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return services.ErrStorageConflict
	}
	return err
}
