package db

import (
	"errors"
	"testing"
	"time"

	"github.com/avrilov/stride/internal/models"
	"github.com/avrilov/stride/internal/services"
)

func TestAppendWithProgressPersistsEntryAndCounters(t *testing.T) {
	_, repos := openTestDatabase(t)
	_, goal := seedOwnerAndGoal(t, repos)

	recordedAt := time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC)
	entry := models.DayEntry{
		GoalID:    goal.ID,
		DayNumber: 1,
		Date:      goal.StartDate,
		Outcome:   models.OutcomeChecked,
	}
	goal.CompletedCount = 1
	goal.ModifiedAt = recordedAt

	if err := repos.Days.AppendWithProgress(&entry, &goal); err != nil {
		t.Fatalf("append: %v", err)
	}
	if entry.ID == "" {
		t.Fatalf("expected an assigned entry id")
	}

	stored, found, err := repos.Goals.FindByID(goal.ID)
	if err != nil || !found {
		t.Fatalf("reload goal: found=%v err=%v", found, err)
	}
	if stored.CompletedCount != 1 {
		t.Fatalf("CompletedCount = %d, want 1", stored.CompletedCount)
	}
	if !stored.ModifiedAt.Equal(recordedAt) {
		t.Fatalf("ModifiedAt = %s, want %s", stored.ModifiedAt, recordedAt)
	}

	checked, err := repos.Days.HasCheckedDay(goal.ID, 1)
	if err != nil {
		t.Fatalf("has checked day: %v", err)
	}
	if !checked {
		t.Fatalf("expected day 1 to be checked")
	}
}

func TestAppendWithProgressRejectsSecondCheckedEntry(t *testing.T) {
	_, repos := openTestDatabase(t)
	_, goal := seedOwnerAndGoal(t, repos)

	first := models.DayEntry{GoalID: goal.ID, DayNumber: 1, Date: goal.StartDate, Outcome: models.OutcomeChecked}
	goal.CompletedCount = 1
	if err := repos.Days.AppendWithProgress(&first, &goal); err != nil {
		t.Fatalf("first append: %v", err)
	}

	// The partial unique index is the backstop when two writers race
	// past the engine's duplicate guard.
	second := models.DayEntry{GoalID: goal.ID, DayNumber: 1, Date: goal.StartDate, Outcome: models.OutcomeChecked}
	racingGoal := goal
	racingGoal.CompletedCount = 2
	if err := repos.Days.AppendWithProgress(&second, &racingGoal); !errors.Is(err, services.ErrStorageConflict) {
		t.Fatalf("got %v, want ErrStorageConflict", err)
	}

	stored, _, err := repos.Goals.FindByID(goal.ID)
	if err != nil {
		t.Fatalf("reload goal: %v", err)
	}
	if stored.CompletedCount != 1 {
		t.Fatalf("CompletedCount = %d after rolled-back append, want 1", stored.CompletedCount)
	}
}

func TestAppendWithProgressAllowsRepeatedMisses(t *testing.T) {
	_, repos := openTestDatabase(t)
	_, goal := seedOwnerAndGoal(t, repos)

	for i := 0; i < 2; i++ {
		entry := models.DayEntry{GoalID: goal.ID, DayNumber: 1, Date: goal.StartDate, Outcome: models.OutcomeMissed}
		if err := repos.Days.AppendWithProgress(&entry, &goal); err != nil {
			t.Fatalf("miss append %d: %v", i+1, err)
		}
	}

	entries, err := repos.Days.ListByGoal(goal.ID)
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}

func TestListByGoalReturnsLedgerInAppendOrder(t *testing.T) {
	_, repos := openTestDatabase(t)
	_, goal := seedOwnerAndGoal(t, repos)

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	for day := 1; day <= 3; day++ {
		entry := models.DayEntry{
			GoalID:    goal.ID,
			DayNumber: day,
			Date:      goal.StartDate.AddDate(0, 0, day-1),
			Outcome:   models.OutcomeChecked,
			CreatedAt: base.Add(time.Duration(day) * time.Hour),
		}
		goal.CompletedCount = day
		if err := repos.Days.AppendWithProgress(&entry, &goal); err != nil {
			t.Fatalf("append day %d: %v", day, err)
		}
	}

	entries, err := repos.Days.ListByGoal(goal.ID)
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, entry := range entries {
		if entry.DayNumber != i+1 {
			t.Fatalf("entries[%d].DayNumber = %d, want %d", i, entry.DayNumber, i+1)
		}
	}
}

func TestUpdateNoteLeavesTheRestOfTheEntryAlone(t *testing.T) {
	_, repos := openTestDatabase(t)
	_, goal := seedOwnerAndGoal(t, repos)

	entry := models.DayEntry{GoalID: goal.ID, DayNumber: 1, Date: goal.StartDate, Outcome: models.OutcomeChecked}
	goal.CompletedCount = 1
	if err := repos.Days.AppendWithProgress(&entry, &goal); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repos.Days.UpdateNote(entry.ID, "two medium problems"); err != nil {
		t.Fatalf("update note: %v", err)
	}

	stored, found, err := repos.Days.FindByID(entry.ID)
	if err != nil || !found {
		t.Fatalf("reload entry: found=%v err=%v", found, err)
	}
	if stored.Note != "two medium problems" {
		t.Fatalf("Note = %q", stored.Note)
	}
	if stored.DayNumber != 1 || stored.Outcome != models.OutcomeChecked {
		t.Fatalf("entry mutated beyond the note: %+v", stored)
	}
}
