package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitrazepam01/jmx-history/internal/courseware"
	"github.com/nitrazepam01/jmx-history/internal/quiz"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show drill statistics without opening the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		questions, err := courseware.Load(cfg.CoursewarePath)
		if err != nil {
			return fmt.Errorf("load courseware: %w", err)
		}

		store, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()

		status, err := store.FetchStatus(cmd.Context(), cfg.UserID)
		if err != nil {
			return fmt.Errorf("fetch history: %w", err)
		}

		sum := quiz.Summarize(len(questions), status)
		fmt.Printf("User:      %s\n", cfg.UserID)
		fmt.Printf("Questions: %d\n", sum.Total)
		fmt.Printf("Completed: %d\n", sum.Completed)
		fmt.Printf("Correct:   %d\n", sum.Correct)
		fmt.Printf("Accuracy:  %d%%\n", sum.AccuracyPct)
		fmt.Printf("Mistakes:  %d\n", sum.Mistakes())
		if len(sum.WrongIndices) > 0 {
			fmt.Print("Wrong:    ")
			for _, idx := range sum.WrongIndices {
				fmt.Printf(" #%d", idx+1)
			}
			fmt.Println()
		}
		return nil
	},
}
