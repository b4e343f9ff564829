package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avrilov/stride/internal/ui"
)

func newNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "note <day-entry-id> <text>...",
		Short: "Attach a note to a recorded day",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("day entry id and note text are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := openApp()
			if err != nil {
				return err
			}

			entryID := args[0]
			note := strings.Join(args[1:], " ")
			if err := application.progress.AnnotateDay(entryID, note); err != nil {
				return err
			}

			entry, err := application.progress.GetDay(entryID)
			if err != nil {
				return err
			}
			fmt.Printf("%s day %d (%s): %s\n", ui.IconNote, entry.DayNumber, entry.Date.Format("2006-01-02"), entry.Note)
			return nil
		},
	}
}
