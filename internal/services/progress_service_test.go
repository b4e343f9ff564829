package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/avrilov/stride/internal/models"
)

type goalRepositoryStub struct {
	mu        sync.Mutex
	goals     map[string]models.Goal
	nextID    int
	clock     time.Time
	findErr   error
	createErr error
}

func newGoalRepositoryStub() *goalRepositoryStub {
	return &goalRepositoryStub{
		goals:  make(map[string]models.Goal),
		nextID: 1,
		clock:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (stub *goalRepositoryStub) FindByID(goalID string) (models.Goal, bool, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.findErr != nil {
		return models.Goal{}, false, stub.findErr
	}
	goal, ok := stub.goals[goalID]
	return goal, ok, nil
}

func (stub *goalRepositoryStub) ExistsByOwnerAndTitle(ownerID string, title string) (bool, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	for _, goal := range stub.goals {
		if goal.OwnerID == ownerID && goal.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (stub *goalRepositoryStub) ListByOwner(ownerID string) ([]models.Goal, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	goals := make([]models.Goal, 0)
	for _, goal := range stub.goals {
		if goal.OwnerID == ownerID {
			goals = append(goals, goal)
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].CreatedAt.Equal(goals[j].CreatedAt) {
			return goals[i].ID < goals[j].ID
		}
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
	return goals, nil
}

func (stub *goalRepositoryStub) Create(goal *models.Goal) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.createErr != nil {
		return stub.createErr
	}
	for _, existing := range stub.goals {
		if existing.OwnerID == goal.OwnerID && existing.Title == goal.Title {
			return ErrStorageConflict
		}
	}
	goal.ID = fmt.Sprintf("goal-%d", stub.nextID)
	stub.nextID++
	goal.CreatedAt = stub.clock
	stub.clock = stub.clock.Add(time.Minute)
	stub.goals[goal.ID] = *goal
	return nil
}

func (stub *goalRepositoryStub) put(goal models.Goal) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.goals[goal.ID] = goal
}

type dayLedgerRepositoryStub struct {
	mu        sync.Mutex
	entries   []models.DayEntry
	nextID    int
	goals     *goalRepositoryStub
	appendErr error
	notesErr  error
}

func newDayLedgerRepositoryStub(goals *goalRepositoryStub) *dayLedgerRepositoryStub {
	return &dayLedgerRepositoryStub{
		nextID: 1,
		goals:  goals,
	}
}

func (stub *dayLedgerRepositoryStub) FindByID(entryID string) (models.DayEntry, bool, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	for _, entry := range stub.entries {
		if entry.ID == entryID {
			return entry, true, nil
		}
	}
	return models.DayEntry{}, false, nil
}

func (stub *dayLedgerRepositoryStub) ListByGoal(goalID string) ([]models.DayEntry, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	entries := make([]models.DayEntry, 0)
	for _, entry := range stub.entries {
		if entry.GoalID == goalID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (stub *dayLedgerRepositoryStub) HasCheckedDay(goalID string, dayNumber int) (bool, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	return stub.hasCheckedDayLocked(goalID, dayNumber), nil
}

func (stub *dayLedgerRepositoryStub) hasCheckedDayLocked(goalID string, dayNumber int) bool {
	for _, entry := range stub.entries {
		if entry.GoalID == goalID && entry.DayNumber == dayNumber && entry.Outcome == models.OutcomeChecked {
			return true
		}
	}
	return false
}

// AppendWithProgress mirrors the sqlite repository: the append and the
// counter update land together, and the checked-day unique index turns
// a duplicate into a conflict.
func (stub *dayLedgerRepositoryStub) AppendWithProgress(entry *models.DayEntry, goal *models.Goal) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.appendErr != nil {
		return stub.appendErr
	}
	if entry.Outcome == models.OutcomeChecked && stub.hasCheckedDayLocked(entry.GoalID, entry.DayNumber) {
		return ErrStorageConflict
	}
	entry.ID = fmt.Sprintf("day-%d", stub.nextID)
	stub.nextID++
	entry.CreatedAt = time.Now()
	stub.entries = append(stub.entries, *entry)
	stub.goals.put(*goal)
	return nil
}

func (stub *dayLedgerRepositoryStub) UpdateNote(entryID string, note string) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.notesErr != nil {
		return stub.notesErr
	}
	for i := range stub.entries {
		if stub.entries[i].ID == entryID {
			stub.entries[i].Note = note
			return nil
		}
	}
	return errors.New("missing entry")
}

func newProgressFixture() (*ProgressService, *goalRepositoryStub, *dayLedgerRepositoryStub) {
	goals := newGoalRepositoryStub()
	ledger := newDayLedgerRepositoryStub(goals)
	service := NewProgressService(goals, ledger)
	service.now = func() time.Time {
		return time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	}
	return service, goals, ledger
}
