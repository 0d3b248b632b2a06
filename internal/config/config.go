package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the process needs. Values come from an
// optional YAML file first, then environment variables override.
type Config struct {
	HTTPAddr string `yaml:"http_addr"`

	DBDriver string `yaml:"db_driver"`
	DBDSN    string `yaml:"db_dsn"`

	AuthSecret  string        `yaml:"auth_secret"`
	TokenTTLRaw string        `yaml:"token_ttl"`
	TokenTTL    time.Duration `yaml:"-"`

	// The reserved admin identity. It is not a row in the users table;
	// login and the leaderboard give it special handling.
	AdminUser     string `yaml:"admin_user"`
	AdminName     string `yaml:"admin_name"`
	AdminPassHash string `yaml:"admin_pass_hash"` // bcrypt

	CORSOrigins []string `yaml:"cors_origins"`
}

// DefaultTokenTTL is roughly one year. Tokens carry no revocation
// path; rotating AUTH_SECRET is the only way to invalidate them.
const DefaultTokenTTL = 8766 * time.Hour

// Load reads the YAML file at path (if non-empty) and applies
// environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// FromEnv builds a Config from environment variables alone.
func FromEnv() Config {
	cfg := Config{}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyEnv() {
	c.HTTPAddr = envOr("HTTP_ADDR", c.HTTPAddr)
	c.DBDriver = envOr("DB_DRIVER", c.DBDriver)
	c.DBDSN = envOr("DB_DSN", c.DBDSN)
	c.AuthSecret = envOr("AUTH_SECRET", c.AuthSecret)
	c.TokenTTLRaw = envOr("AUTH_TOKEN_TTL", c.TokenTTLRaw)
	c.AdminUser = envOr("ADMIN_USER", c.AdminUser)
	c.AdminName = envOr("ADMIN_NAME", c.AdminName)
	c.AdminPassHash = envOr("ADMIN_PASS_HASH", c.AdminPassHash)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitCSV(v)
	}
}

func (c *Config) applyDefaults() {
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}
	if c.DBDriver == "" {
		c.DBDriver = "sqlite"
	}
	if c.AuthSecret == "" {
		c.AuthSecret = "supersecret-dev-key"
	}
	c.TokenTTL = ttlDuration(c.TokenTTLRaw, DefaultTokenTTL)
	if c.AdminUser == "" {
		c.AdminUser = "admin"
	}
	if c.AdminName == "" {
		c.AdminName = "Administrator"
	}
	if c.AdminPassHash == "" {
		// bcrypt("admin123"), dev only
		c.AdminPassHash = "$2a$12$0BSfDgTCjSJQEAUEWTbJK.VUGsFLdWyYmnXUqFaFgZt8Qs2MJMW2y"
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ttlDuration parses a duration string or returns the fallback when it
// is empty or malformed.
func ttlDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return fallback
}
