package root

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avrilov/stride/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "stride",
	Short:         "Stride — day-streak goal tracker",
	Long:          "Stride tracks multi-day goals (\"100 days of LeetCode\") one day at a time:\neach day is either checked or missed, strictly in order.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newStatusCmd(),
		newCheckCmd(),
		newMissCmd(),
		newNoteCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func loadDotEnv() {
	// Missing .env is fine; env vars win over defaults either way.
	_ = godotenv.Load()
}
