package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nitrazepam01/jmx-history/internal/app"
	"github.com/nitrazepam01/jmx-history/internal/courseware"
	"github.com/nitrazepam01/jmx-history/internal/explain"
	"github.com/nitrazepam01/jmx-history/internal/llm"
)

// runApp loads the question bank, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := loadConfig(cmd)

	questions, err := courseware.Load(cfg.CoursewarePath)
	if err != nil {
		return fmt.Errorf("load courseware: %w", err)
	}
	if len(questions) == 0 {
		return fmt.Errorf("courseware %s has no questions", cfg.CoursewarePath)
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	var gen *explain.Generator
	provider, err := llm.NewProviderFromEnv(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Wrong answers will not get AI explanations.")
		gen = explain.NewGenerator(nil, cfg.StudentName)
	} else {
		gen = explain.NewGenerator(provider, cfg.StudentName)
	}

	return app.Run(app.Options{
		Questions: questions,
		Store:     store,
		Explainer: gen,
		UserID:    cfg.UserID,
		SessionID: uuid.NewString(),
	})
}
