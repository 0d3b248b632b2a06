package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q, want sqlite", cfg.DBDriver)
	}
	if cfg.TokenTTL != DefaultTokenTTL {
		t.Errorf("TokenTTL = %v, want %v", cfg.TokenTTL, DefaultTokenTTL)
	}
	if cfg.AdminUser != "admin" || cfg.AdminName != "Administrator" {
		t.Errorf("admin identity defaults wrong: %q %q", cfg.AdminUser, cfg.AdminName)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Error("CORSOrigins default missing")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("AUTH_TOKEN_TTL", "24h")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want :9090", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("DBDriver = %q, want postgres", cfg.DBDriver)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadYAMLWithEnvOnTop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizd.yaml")
	data := []byte("http_addr: \":7000\"\ndb_driver: postgres\nadmin_user: boss@example.com\ntoken_ttl: 48h\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":7000" {
		t.Errorf("HTTPAddr = %q, want :7000 from file", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q, want env to win over file", cfg.DBDriver)
	}
	if cfg.AdminUser != "boss@example.com" {
		t.Errorf("AdminUser = %q", cfg.AdminUser)
	}
	if cfg.TokenTTL != 48*time.Hour {
		t.Errorf("TokenTTL = %v, want 48h", cfg.TokenTTL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestTTLFallbackOnGarbage(t *testing.T) {
	t.Setenv("AUTH_TOKEN_TTL", "not-a-duration")
	cfg := FromEnv()
	if cfg.TokenTTL != DefaultTokenTTL {
		t.Errorf("TokenTTL = %v, want fallback %v", cfg.TokenTTL, DefaultTokenTTL)
	}
}
