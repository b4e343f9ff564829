package services

import (
	"errors"
	"strings"
	"time"

	"github.com/avrilov/stride/internal/models"
)

type GoalRepository interface {
	FindByID(goalID string) (models.Goal, bool, error)
	ExistsByOwnerAndTitle(ownerID string, title string) (bool, error)
	ListByOwner(ownerID string) ([]models.Goal, error)
	Create(goal *models.Goal) error
}

type DayLedgerRepository interface {
	FindByID(entryID string) (models.DayEntry, bool, error)
	ListByGoal(goalID string) ([]models.DayEntry, error)
	HasCheckedDay(goalID string, dayNumber int) (bool, error)
	AppendWithProgress(entry *models.DayEntry, goal *models.Goal) error
	UpdateNote(entryID string, note string) error
}

// ProgressService is the day-ledger state machine. It is the only
// writer of day entries and of Goal.CompletedCount: a goal's checked
// day numbers are always exactly 1..CompletedCount, with no gaps.
type ProgressService struct {
	goals  GoalRepository
	ledger DayLedgerRepository
	locks  *goalLockSet
	now    func() time.Time
}

func NewProgressService(goals GoalRepository, ledger DayLedgerRepository) *ProgressService {
	return &ProgressService{
		goals:  goals,
		ledger: ledger,
		locks:  newGoalLockSet(),
		now:    time.Now,
	}
}

func (service *ProgressService) CreateGoal(requesterID string, title string, totalDays int, startDate time.Time) (GoalView, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return GoalView{}, ErrInvalidTitle
	}
	if totalDays < 1 {
		return GoalView{}, ErrInvalidTotalDays
	}

	exists, err := service.goals.ExistsByOwnerAndTitle(requesterID, title)
	if err != nil {
		return GoalView{}, storageFailure(err)
	}
	if exists {
		return GoalView{}, ErrDuplicateTitle
	}

	goal := models.Goal{
		OwnerID:    requesterID,
		Title:      title,
		TotalDays:  totalDays,
		StartDate:  DateOnly(startDate),
		ModifiedAt: service.now(),
	}
	if err := service.goals.Create(&goal); err != nil {
		if errors.Is(err, ErrStorageConflict) {
			// Lost a create race on the (owner, title) unique index.
			return GoalView{}, ErrDuplicateTitle
		}
		return GoalView{}, storageFailure(err)
	}
	return PresentGoal(goal), nil
}

// RecordDay validates a proposed check-in or miss for a goal's day
// slot and appends it to the ledger. The sequencing cursor is
// CompletedCount: the only legal day number is CompletedCount+1, for
// both outcomes, so a missed slot stays current until it is checked.
func (service *ProgressService) RecordDay(goalID string, requesterID string, dayNumber int, proposedDate time.Time, outcome string) (GoalView, error) {
	if !models.IsValidOutcome(outcome) {
		return GoalView{}, ErrInvalidOutcome
	}

	unlock := service.locks.Lock(goalID)
	defer unlock()

	goal, err := service.loadOwnedGoal(goalID, requesterID)
	if err != nil {
		return GoalView{}, err
	}

	if dayNumber < 1 || dayNumber > goal.TotalDays {
		return GoalView{}, DayOutOfRangeError{DayNumber: dayNumber, TotalDays: goal.TotalDays}
	}

	// The duplicate guard runs before sequencing so a retried
	// check-in is rejected as already checked, not as out of order.
	alreadyChecked, err := service.ledger.HasCheckedDay(goalID, dayNumber)
	if err != nil {
		return GoalView{}, storageFailure(err)
	}
	if alreadyChecked {
		return GoalView{}, ErrDayAlreadyChecked
	}

	nextDay := goal.CompletedCount + 1
	if dayNumber != nextDay {
		return GoalView{}, OutOfSequenceError{Expected: nextDay}
	}

	expectedDate := ExpectedDate(goal.StartDate, dayNumber)
	if !SameDate(proposedDate, expectedDate) {
		return GoalView{}, DateMismatchError{Expected: expectedDate}
	}

	entry := models.DayEntry{
		GoalID:    goal.ID,
		DayNumber: dayNumber,
		Date:      expectedDate,
		Outcome:   outcome,
	}
	goal.ModifiedAt = service.now()
	if outcome == models.OutcomeChecked {
		goal.CompletedCount++
	}

	if err := service.ledger.AppendWithProgress(&entry, &goal); err != nil {
		if errors.Is(err, ErrStorageConflict) {
			return GoalView{}, ErrStorageConflict
		}
		return GoalView{}, storageFailure(err)
	}
	return PresentGoal(goal), nil
}

// AnnotateDay sets or replaces the free-text note on an existing
// ledger entry. The entry itself stays immutable.
func (service *ProgressService) AnnotateDay(entryID string, note string) error {
	_, found, err := service.ledger.FindByID(entryID)
	if err != nil {
		return storageFailure(err)
	}
	if !found {
		return ErrDayNotFound
	}
	if err := service.ledger.UpdateNote(entryID, note); err != nil {
		return storageFailure(err)
	}
	return nil
}

func (service *ProgressService) GetGoal(goalID string, requesterID string) (GoalView, error) {
	goal, err := service.loadOwnedGoal(goalID, requesterID)
	if err != nil {
		return GoalView{}, err
	}
	return PresentGoal(goal), nil
}

func (service *ProgressService) ListGoals(requesterID string) ([]GoalView, error) {
	goals, err := service.goals.ListByOwner(requesterID)
	if err != nil {
		return nil, storageFailure(err)
	}
	views := make([]GoalView, 0, len(goals))
	for _, goal := range goals {
		views = append(views, PresentGoal(goal))
	}
	return views, nil
}

func (service *ProgressService) GetDay(entryID string) (models.DayEntry, error) {
	entry, found, err := service.ledger.FindByID(entryID)
	if err != nil {
		return models.DayEntry{}, storageFailure(err)
	}
	if !found {
		return models.DayEntry{}, ErrDayNotFound
	}
	return entry, nil
}

// ListDays returns a goal's ledger in append order.
func (service *ProgressService) ListDays(goalID string, requesterID string) ([]models.DayEntry, error) {
	if _, err := service.loadOwnedGoal(goalID, requesterID); err != nil {
		return nil, err
	}
	entries, err := service.ledger.ListByGoal(goalID)
	if err != nil {
		return nil, storageFailure(err)
	}
	return entries, nil
}

// loadOwnedGoal resolves the goal and enforces ownership. An existing
// goal owned by someone else is reported the same as a missing one.
func (service *ProgressService) loadOwnedGoal(goalID string, requesterID string) (models.Goal, error) {
	goal, found, err := service.goals.FindByID(goalID)
	if err != nil {
		return models.Goal{}, storageFailure(err)
	}
	if !found || goal.OwnerID != requesterID {
		return models.Goal{}, ErrGoalNotFound
	}
	return goal, nil
}
