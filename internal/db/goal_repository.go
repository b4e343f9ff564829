package db

import (
	"github.com/avrilov/stride/internal/models"
	"gorm.io/gorm"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) FindByID(goalID string) (models.Goal, bool, error) {
	goal := models.Goal{}
	result := repo.database.Where("id = ?", goalID).Limit(1).Find(&goal)
	if result.Error != nil {
		return models.Goal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Goal{}, false, nil
	}
	return goal, true, nil
}

func (repo *GoalRepository) ExistsByOwnerAndTitle(ownerID string, title string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Goal{}).
		Where("owner_id = ? AND title = ?", ownerID, title).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *GoalRepository) ListByOwner(ownerID string) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) Create(goal *models.Goal) error {
	return translateUniqueViolation(repo.database.Create(goal).Error)
}
