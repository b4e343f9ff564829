package db

import (
	"github.com/avrilov/stride/internal/models"
	"gorm.io/gorm"
)

type DayEntryRepository struct {
	database *gorm.DB
}

func NewDayEntryRepository(database *gorm.DB) *DayEntryRepository {
	return &DayEntryRepository{database: database}
}

func (repo *DayEntryRepository) FindByID(entryID string) (models.DayEntry, bool, error) {
	entry := models.DayEntry{}
	result := repo.database.Where("id = ?", entryID).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.DayEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *DayEntryRepository) ListByGoal(goalID string) ([]models.DayEntry, error) {
	entries := make([]models.DayEntry, 0)
	if err := repo.database.
		Where("goal_id = ?", goalID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *DayEntryRepository) HasCheckedDay(goalID string, dayNumber int) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.DayEntry{}).
		Where("goal_id = ? AND day_number = ? AND outcome = ?", goalID, dayNumber, models.OutcomeChecked).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// AppendWithProgress appends the entry and persists the goal's updated
// completed_count and modified_at in one transaction. The partial
// unique index over checked (goal_id, day_number) pairs turns a racing
// double-append into a conflict instead of a corrupt ledger.
func (repo *DayEntryRepository) AppendWithProgress(entry *models.DayEntry, goal *models.Goal) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.Goal{}).Where("id = ?", goal.ID).Updates(map[string]any{
			"completed_count": goal.CompletedCount,
			"modified_at":     goal.ModifiedAt,
		}).Error
	})
	return translateUniqueViolation(err)
}

func (repo *DayEntryRepository) UpdateNote(entryID string, note string) error {
	return repo.database.Model(&models.DayEntry{}).Where("id = ?", entryID).Update("note", note).Error
}
