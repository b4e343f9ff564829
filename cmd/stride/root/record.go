package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avrilov/stride/internal/models"
	"github.com/avrilov/stride/internal/ui"
)

func newCheckCmd() *cobra.Command {
	return newRecordCmd(
		"check <goal>",
		"Check today's day for a goal",
		models.OutcomeChecked,
	)
}

func newMissCmd() *cobra.Command {
	return newRecordCmd(
		"miss <goal>",
		"Record today's day as missed",
		models.OutcomeMissed,
	)
}

func newRecordCmd(use string, short string, outcome string) *cobra.Command {
	var dayNumber int
	var date string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("goal id or title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := openApp()
			if err != nil {
				return err
			}

			view, err := application.findGoal(args[0])
			if err != nil {
				return err
			}

			proposedDate := time.Now()
			if date != "" {
				proposedDate, err = time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
				}
			}
			if dayNumber == 0 {
				dayNumber = view.CurrentDayNumber
			}

			updated, err := application.progress.RecordDay(view.ID, application.profile.ID, dayNumber, proposedDate, outcome)
			if err != nil {
				return err
			}

			if outcome == models.OutcomeChecked {
				fmt.Printf("%s day %d checked — %d%% of %q\n", ui.IconDone, dayNumber, updated.CompletionPercentage, updated.Title)
				if updated.Finished {
					fmt.Println(ui.Good.Render(ui.IconFlag + " goal finished, well done"))
				}
			} else {
				fmt.Printf("%s day %d recorded as missed — it stays the current day until checked\n", ui.IconMissed, dayNumber)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&dayNumber, "day", "n", 0, "Day number (default: the goal's next day)")
	cmd.Flags().StringVar(&date, "date", "", "Calendar date of the day (YYYY-MM-DD, default today)")

	return cmd
}
