package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, v := range []string{"JMX_COURSEWARE", "JMX_DATABASE_URL", "JMX_DB", "JMX_USER_ID", "JMX_STUDENT_NAME"} {
		t.Setenv(v, "")
	}

	cfg := Load()
	if cfg.CoursewarePath != "courseware.csv" {
		t.Fatalf("unexpected courseware default %q", cfg.CoursewarePath)
	}
	if cfg.UserID != "user_01" {
		t.Fatalf("unexpected user default %q", cfg.UserID)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected empty database URL, got %q", cfg.DatabaseURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JMX_COURSEWARE", "bank.csv")
	t.Setenv("JMX_DATABASE_URL", "postgres://db.example/history")
	t.Setenv("JMX_USER_ID", "learner_7")
	t.Setenv("JMX_STUDENT_NAME", "Jiang")

	cfg := Load()
	if cfg.CoursewarePath != "bank.csv" || cfg.UserID != "learner_7" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.DatabaseURL != "postgres://db.example/history" {
		t.Fatalf("database URL not applied: %q", cfg.DatabaseURL)
	}
	if cfg.StudentName != "Jiang" {
		t.Fatalf("student name not applied: %q", cfg.StudentName)
	}
}
