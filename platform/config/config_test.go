package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/app")
	t.Setenv("SESSION_JWT_SECRET", "s3cret")
	t.Setenv("DIRECTORY_API_URL", "https://directory.example.com")
	t.Setenv("DIRECTORY_API_KEY", "key")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
}

func TestLoadWithRequiredEnv(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development default")
	}
	if cfg.GetRedisURL() != "redis://localhost:6379" {
		t.Fatalf("unexpected redis url %q", cfg.GetRedisURL())
	}
}

func TestLoadRequiresRedisURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without REDIS_URL")
	}
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without SESSION_JWT_SECRET")
	}
}
