// Package config loads application configuration from environment
// variables.  A .env file in the working directory is read first when
// present; real environment variables always win over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
)

// MinBcryptCost is the lowest work factor accepted for password hashing.
const MinBcryptCost = 10

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
	Env  string // APP_ENV (dev, test, prod)
	Port string // APP_PORT

	StoreDriver string // STORE_DRIVER: memory | mongo | mysql

	MongoURI      string // MONGODB_URI
	MongoDatabase string // MONGODB_DATABASE

	DBUser string // DB_USER (mysql)
	DBPass string // DB_PASS (optional)
	DBHost string // DB_HOST
	DBPort string // DB_PORT
	DBName string // DB_NAME

	GoogleClientID string // GOOGLE_CLIENT_ID, audience of Google ID tokens

	JWTSecret    string // JWT_SECRET signs session tokens
	AccessTTLMin int    // ACCESS_TOKEN_TTL_MIN
	BcryptCost   int    // BCRYPT_COST, clamped to MinBcryptCost

	AllowedEmailDomains []string // ALLOWED_EMAIL_DOMAINS, empty accepts any domain
	AllowedOrigins      []string // ALLOWED_ORIGINS for CORS

	RabbitMQURL            string // RABBITMQ_URL; empty disables booking events
	BookingConsumerEnabled bool   // BOOKING_CONSUMER_ENABLED

	LogLevel       string // LOG_LEVEL: debug | info | warn | error
	LogFile        string // LOG_FILE; empty logs to stdout only
	BookingLogFile string // BOOKING_LOG_FILE written by the booking consumer
}

// Load reads the configuration.  It returns an error naming every required
// variable that is missing for the selected store driver.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:                    getenv("APP_ENV", "dev"),
		Port:                   getenv("APP_PORT", "5000"),
		StoreDriver:            strings.ToLower(getenv("STORE_DRIVER", DriverMemory)),
		MongoURI:               os.Getenv("MONGODB_URI"),
		MongoDatabase:          getenv("MONGODB_DATABASE", "eventsphere"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPass:                 os.Getenv("DB_PASS"),
		DBHost:                 getenv("DB_HOST", "127.0.0.1"),
		DBPort:                 getenv("DB_PORT", "3306"),
		DBName:                 getenv("DB_NAME", "eventsphere"),
		GoogleClientID:         os.Getenv("GOOGLE_CLIENT_ID"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		AccessTTLMin:           envInt("ACCESS_TOKEN_TTL_MIN", 24*60),
		BcryptCost:             envInt("BCRYPT_COST", MinBcryptCost),
		AllowedEmailDomains:    splitList(getenvAllowEmpty("ALLOWED_EMAIL_DOMAINS", "gmail.com")),
		AllowedOrigins:         splitList(getenv("ALLOWED_ORIGINS", "*")),
		RabbitMQURL:            firstNonEmpty(os.Getenv("RABBITMQ_URL"), os.Getenv("AMQP_URL")),
		BookingConsumerEnabled: envBool("BOOKING_CONSUMER_ENABLED", false),
		LogLevel:               getenv("LOG_LEVEL", "info"),
		LogFile:                os.Getenv("LOG_FILE"),
		BookingLogFile:         getenv("BOOKING_LOG_FILE", "logs/booking.log"),
	}
	if cfg.BcryptCost < MinBcryptCost {
		cfg.BcryptCost = MinBcryptCost
	}
	if cfg.AccessTTLMin < 1 {
		cfg.AccessTTLMin = 1
	}

	var missing []string
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	switch cfg.StoreDriver {
	case DriverMemory:
	case DriverMongo:
		if cfg.MongoURI == "" {
			missing = append(missing, "MONGODB_URI")
		}
	case DriverMySQL:
		if cfg.DBUser == "" {
			missing = append(missing, "DB_USER")
		}
	default:
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if len(missing) > 0 {
		return cfg, fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvAllowEmpty distinguishes an unset variable from one set to "".
func getenvAllowEmpty(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	switch strings.ToLower(os.Getenv(k)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return d
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
