// Package config resolves runtime configuration from a .env file and the
// environment. LLM provider selection lives in internal/llm; everything
// else is here.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is the non-LLM runtime configuration.
type Config struct {
	// CoursewarePath is the question bank CSV.
	CoursewarePath string

	// DatabaseURL is the remote attempt store DSN (postgres://...). Empty
	// means the local sqlite fallback is used instead.
	DatabaseURL string

	// SQLitePath overrides the default local store location. Only
	// consulted when DatabaseURL is empty.
	SQLitePath string

	// UserID identifies whose history rows to read and write. The
	// default matches the deployed single-learner identity so existing
	// rows keep working.
	UserID string

	// StudentName personalizes the tutor's greeting. Optional.
	StudentName string
}

// Load reads .env (if present) and the environment. It never fails: every
// value has a default and a missing .env file is normal.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		CoursewarePath: getenv("JMX_COURSEWARE", "courseware.csv"),
		DatabaseURL:    os.Getenv("JMX_DATABASE_URL"),
		SQLitePath:     os.Getenv("JMX_DB"),
		UserID:         getenv("JMX_USER_ID", "user_01"),
		StudentName:    os.Getenv("JMX_STUDENT_NAME"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
