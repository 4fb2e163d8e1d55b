package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitrazepam01/jmx-history/internal/courseware"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the question bank CSV and report unusable rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		questions, err := courseware.Load(cfg.CoursewarePath)
		if err != nil {
			return fmt.Errorf("load courseware: %w", err)
		}

		bad := courseware.Warnings(questions)
		fmt.Printf("%s: %d question(s), %d unusable\n", cfg.CoursewarePath, len(questions), len(bad))
		for _, idx := range bad {
			q := questions[idx]
			reason := "answer letter has no matching option"
			if len(q.Options) == 0 {
				reason = "no options parsed"
			}
			fmt.Printf("  #%d: %s (answer %q, options %q)\n", idx+1, reason, q.Correct, courseware.Letters(q))
		}
		if len(bad) > 0 {
			return fmt.Errorf("%d unusable question(s)", len(bad))
		}
		return nil
	},
}
