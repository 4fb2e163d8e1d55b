package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nitrazepam01/jmx-history/internal/config"
	"github.com/nitrazepam01/jmx-history/internal/history"
)

var rootCmd = &cobra.Command{
	Use:   "jmx-history",
	Short: "Terminal drill tool for multiple-choice question banks",
	Long:  "JMX History — a terminal drill tool that works through a CSV question bank, keeps your attempt history, and explains wrong answers with an AI tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("courseware", "", "Path to the question bank CSV (overrides JMX_COURSEWARE)")
	rootCmd.PersistentFlags().String("user", "", "User identity for history rows (overrides JMX_USER_ID)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration, letting flags win over the
// environment.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("courseware"); p != "" {
		cfg.CoursewarePath = p
	}
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		cfg.UserID = u
	}
	return cfg
}

// openStore connects to the remote store when a DSN is configured, the
// local sqlite file otherwise.
func openStore(cfg config.Config) (history.Store, error) {
	if cfg.DatabaseURL != "" {
		return history.OpenPostgres(cfg.DatabaseURL)
	}
	path := cfg.SQLitePath
	if path == "" {
		var err error
		path, err = history.DefaultSQLitePath()
		if err != nil {
			return nil, err
		}
	}
	return history.OpenSQLite(path)
}
