package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 int
	DatabasePath         string
	AdminSecret          string
	ReportingDatabaseURL string
}

// ParseFlags validates flags and sets configuration
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Optional .env file for local development
	_ = godotenv.Load()

	fs := flag.NewFlagSet("agriquote", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database path")
	fs.StringVar(&cfg.ReportingDatabaseURL, "reporting-db", "", "Optional reporting database URL (postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminSecret, "admin-secret", "", "Admin shared secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4004 // default
		}
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "proposals.db"
	}

	if cfg.ReportingDatabaseURL == "" {
		cfg.ReportingDatabaseURL = os.Getenv("REPORTING_DATABASE_URL")
	}

	// Secret - MUST be provided
	if cfg.AdminSecret == "" {
		cfg.AdminSecret = os.Getenv("ADMIN_SECRET")
	}
	if cfg.AdminSecret == "" {
		return Config{}, errors.New("ADMIN_SECRET required")
	}

	return cfg, nil
}
