package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all attempt history for the configured user",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete history without --yes")
		}

		cfg := loadConfig(cmd)
		store, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()

		if err := store.Reset(cmd.Context(), cfg.UserID); err != nil {
			return fmt.Errorf("reset history: %w", err)
		}
		fmt.Printf("History cleared for %s\n", cfg.UserID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
