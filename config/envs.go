package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrMissingSecret = errors.New("JWT_SECRET is not set")

// Config holds the application's configuration values.
type Config struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	InitialRows     int    // Row count of a new or reset board
	InitialCols     int    // Column count of a new or reset board
	StartRow        int    // Row of the default start node
	StartCol        int    // Column of the default start node
	FinishRow       int    // Row of the default finish node
	FinishCol       int    // Column of the default finish node
	DBHost          string // Hostname or IP address for the database; empty keeps boards in memory
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
	RedisAddr       string // Redis address; empty uses in-process locks and change feed
	RedisPassword   string // Password for Redis
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
	TokenTTLMinutes int    // Lifetime of board edit tokens
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		InitialRows:     getEnvAsIntWithDefault("INITIAL_ROWS", 20),
		InitialCols:     getEnvAsIntWithDefault("INITIAL_COLS", 50),
		StartRow:        getEnvAsIntWithDefault("START_ROW", 10),
		StartCol:        getEnvAsIntWithDefault("START_COL", 15),
		FinishRow:       getEnvAsIntWithDefault("FINISH_ROW", 10),
		FinishCol:       getEnvAsIntWithDefault("FINISH_COL", 35),
		DBHost:          getEnvWithDefault("DB_HOST", ""),
		DBPort:          getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:          getEnvWithDefault("DB_USER", ""),
		DBPassword:      getEnvWithDefault("DB_PASS", ""),
		DBName:          getEnvWithDefault("DB_NAME", "pathgrid"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:   getEnvWithDefault("REDIS_PASS", ""),
		JWTSecret:       getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "pathgrid"),
		TokenTTLMinutes: getEnvAsIntWithDefault("TOKEN_TTL_MINUTES", 24*60),
	}
}

// Validate reports configuration the server cannot start without.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
// A value that does not parse is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
