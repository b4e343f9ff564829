package services

import (
	"time"

	"github.com/avrilov/stride/internal/models"
)

// GoalView decorates a goal record with display-only fields. Views are
// computed on every read and never persisted.
type GoalView struct {
	models.Goal

	CompletionPercentage int
	CurrentDayNumber     int
	CurrentDayDate       time.Time
	Finished             bool
}

// PresentGoal derives the projection fields. CurrentDayNumber is the
// next actionable day (TotalDays+1 once finished). CurrentDayDate is
// the date of the most recently completed day; for a fresh goal it
// equals StartDate.
func PresentGoal(goal models.Goal) GoalView {
	view := GoalView{
		Goal:             goal,
		CurrentDayNumber: goal.CompletedCount + 1,
		CurrentDayDate:   DateOnly(goal.StartDate),
		Finished:         goal.TotalDays > 0 && goal.CompletedCount == goal.TotalDays,
	}
	if goal.TotalDays > 0 {
		view.CompletionPercentage = goal.CompletedCount * 100 / goal.TotalDays
	}
	if goal.CompletedCount > 0 {
		view.CurrentDayDate = ExpectedDate(goal.StartDate, goal.CompletedCount)
	}
	return view
}
