package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avrilov/stride/internal/ui"
)

func newAddCmd() *cobra.Command {
	var days int
	var start string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := openApp()
			if err != nil {
				return err
			}

			startDate := time.Now()
			if start != "" {
				startDate, err = time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q, want YYYY-MM-DD", start)
				}
			}

			view, err := application.progress.CreateGoal(application.profile.ID, args[0], days, startDate)
			if err != nil {
				return err
			}

			fmt.Println(ui.Heading(ui.IconTarget, view.Title))
			fmt.Println(ui.LabelValue("id", view.ID))
			fmt.Println(ui.LabelValue("days", view.TotalDays))
			fmt.Println(ui.LabelValue("starts", view.StartDate.Format("2006-01-02")))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 0, "Goal length in days")
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}
