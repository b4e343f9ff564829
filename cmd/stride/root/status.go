package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avrilov/stride/internal/services"
	"github.com/avrilov/stride/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var withLedger bool

	cmd := &cobra.Command{
		Use:   "status <goal>",
		Short: "Show a goal's progress and ledger",
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

			fmt.Println(ui.Heading(ui.IconTarget, view.Title))
			fmt.Println(ui.LabelValue("progress", fmt.Sprintf("%s %d%%", ui.ProgressBar(view.CompletedCount, view.TotalDays, 20), view.CompletionPercentage)))
			fmt.Println(ui.LabelValue("completed", fmt.Sprintf("%d of %d", view.CompletedCount, view.TotalDays)))
			if view.Finished {
				fmt.Println(ui.Good.Render(ui.IconFlag + " finished"))
			} else {
				nextDate := services.ExpectedDate(view.StartDate, view.CurrentDayNumber)
				fmt.Println(ui.LabelValue("next day", fmt.Sprintf("%d (%s)", view.CurrentDayNumber, nextDate.Format("2006-01-02"))))
			}

			if !withLedger {
				return nil
			}

			entries, err := application.progress.ListDays(view.ID, application.profile.ID)
			if err != nil {
				return err
			}
			for _, entry := range entries {
				line := fmt.Sprintf("  day %2d  %s  %s", entry.DayNumber, entry.Date.Format("2006-01-02"), ui.OutcomeText(entry.Outcome))
				if entry.Note != "" {
					line += "  " + ui.Muted.Render(ui.IconNote+" "+entry.Note)
				}
				line += "  " + ui.Muted.Render(entry.ID)
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withLedger, "ledger", "l", false, "Include the day ledger")

	return cmd
}
