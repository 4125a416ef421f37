package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	JWTSecret    string // secret used to sign JWTs
	AccessTTLMin int    // access token time-to-live in minutes

	StoreDriver string // "redis" (default), "mysql" or "memory"
	DBUser      string // mysql username (STORE_DRIVER=mysql only)
	DBPass      string // mysql password (optional)
	DBHost      string // mysql host address
	DBPort      string // mysql port number
	DBName      string // mysql database name

	AdminEmailDomain string // house domain granted the admin role at registration

	EmailJS EmailJSConfig // transactional email provider credentials
}

// EmailJSConfig carries the three opaque provider identifiers.  Absence of
// proper configuration is a valid, supported state: the notification
// gateway then degrades to a pure log statement.
type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// Configured reports whether real credentials are present.  The literal
// placeholders shipped in .env.example count as unconfigured.
func (e EmailJSConfig) Configured() bool {
	if e.ServiceID == "" || e.TemplateID == "" || e.PublicKey == "" {
		return false
	}
	return e.ServiceID != "your_service_id" && e.PublicKey != "your_public_key"
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message; everything else has a
// development-friendly default.
func Load() Config {
	cfg := Config{
		Env:              envDefault("APP_ENV", "dev"),
		Port:             envDefault("APP_PORT", "8080"),
		JWTSecret:        must("JWT_SECRET"),
		AccessTTLMin:     envIntDefault("ACCESS_TOKEN_TTL_MIN", 60),
		StoreDriver:      envDefault("STORE_DRIVER", "redis"),
		AdminEmailDomain: envDefault("ADMIN_EMAIL_DOMAIN", "himalayancrown.com"),
		EmailJS: EmailJSConfig{
			ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
			TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
			PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		},
	}
	if cfg.StoreDriver == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
