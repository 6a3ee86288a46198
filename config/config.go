package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"churnpredict/pkg/logging"
)

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"

	// credentialsPlaceholder is the token in MONGO_URI replaced by the escaped user:password pair.
	credentialsPlaceholder = "<db_username>:<db_password>"
)

type AppConfig struct {
	Port        string
	StoreDriver string
	StaticDir   string

	MongoUsername string
	MongoPassword string
	MongoRawURI   string
	MongoURI      string
	MongoDBName   string

	SQLitePath string

	FieldSampleSize int

	LogLevel  string
	LogFormat string
}

// Load reads .env (when present) and the process environment.
// A misconfigured store is reported as an error; callers treat it as fatal.
func Load() (AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logging.Debug().Err(err).Msg("[cfg] no .env file loaded")
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		StoreDriver:   strings.ToLower(get("STORE_DRIVER", DriverMongo)),
		StaticDir:     get("STATIC_DIR", "static"),
		MongoUsername: os.Getenv("MONGO_USERNAME"),
		MongoPassword: os.Getenv("MONGO_PASSWORD"),
		MongoRawURI:   os.Getenv("MONGO_URI"),
		MongoDBName:   os.Getenv("MONGO_DB_NAME"),
		SQLitePath:    get("SQLITE_PATH", "churn.db"),
		LogLevel:      get("LOG_LEVEL", "info"),
		LogFormat:     get("LOG_FORMAT", "json"),
	}

	size, err := strconv.Atoi(get("FIELD_SAMPLE_SIZE", "1000"))
	if err != nil || size <= 0 {
		return cfg, fmt.Errorf("FIELD_SAMPLE_SIZE must be a positive integer, got %q", os.Getenv("FIELD_SAMPLE_SIZE"))
	}
	cfg.FieldSampleSize = size

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.StoreDriver == DriverMongo {
		cfg.MongoURI = BuildMongoURI(cfg.MongoRawURI, cfg.MongoUsername, cfg.MongoPassword)
	}
	return cfg, nil
}

// Validate reports every missing or invalid setting for the selected driver.
func (c AppConfig) Validate() error {
	var errs []error
	switch c.StoreDriver {
	case DriverMongo:
		required := []struct{ name, value string }{
			{"MONGO_USERNAME", c.MongoUsername},
			{"MONGO_PASSWORD", c.MongoPassword},
			{"MONGO_URI", c.MongoRawURI},
			{"MONGO_DB_NAME", c.MongoDBName},
		}
		for _, r := range required {
			if r.value == "" {
				errs = append(errs, fmt.Errorf("%s is required", r.name))
			}
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}
	return errors.Join(errs...)
}

// BuildMongoURI substitutes the escaped credentials into the URI template.
func BuildMongoURI(rawURI, username, password string) string {
	creds := url.QueryEscape(username) + ":" + url.QueryEscape(password)
	return strings.Replace(rawURI, credentialsPlaceholder, creds, 1)
}

// Redacted is safe to log.
func (c AppConfig) Redacted() AppConfig {
	out := c
	if out.MongoPassword != "" {
		out.MongoPassword = "***"
	}
	out.MongoURI = ""
	return out
}
