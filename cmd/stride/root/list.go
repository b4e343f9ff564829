package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avrilov/stride/internal/ui"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := openApp()
			if err != nil {
				return err
			}

			views, err := application.progress.ListGoals(application.profile.ID)
			if err != nil {
				return err
			}
			if len(views) == 0 {
				fmt.Println(ui.Muted.Render("no goals yet — try: stride add \"100 days of LeetCode\" --days 100"))
				return nil
			}

			for _, view := range views {
				marker := ui.IconTarget
				if view.Finished {
					marker = ui.IconFlag
				}
				fmt.Printf("%s %s  %s %3d%%  %s\n",
					marker,
					ui.Title.Render(view.Title),
					ui.ProgressBar(view.CompletedCount, view.TotalDays, 20),
					view.CompletionPercentage,
					ui.Muted.Render(fmt.Sprintf("day %d/%d", view.CompletedCount, view.TotalDays)),
				)
			}
			return nil
		},
	}
}
