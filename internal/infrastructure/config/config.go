package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Migration modes
const (
	MigrationAuto = "auto"
	MigrationDrop = "drop"
)

// Config stores all configuration of the application
type Config struct {
	// Environment type: LOCAL or SERVER
	EnvType string `yaml:"env_type"`

	// Database
	DBDriver        string `yaml:"db_driver"`
	DBHost          string `yaml:"db_host"`
	DBUser          string `yaml:"db_user"`
	DBPassword      string `yaml:"db_password"`
	DBName          string `yaml:"db_name"`
	DBPort          string `yaml:"db_port"`
	DBPath          string `yaml:"db_path"`           // sqlite only
	DBMigrationMode string `yaml:"db_migration_mode"` // auto (default) or drop

	// Server
	ServerPort      string  `yaml:"server_port"`
	CORSAllowOrigin string  `yaml:"cors_allow_origin"`
	RateLimitRPS    float64 `yaml:"rate_limit_rps"` // <= 0 disables rate limiting
	RateLimitBurst  int     `yaml:"rate_limit_burst"`

	// Redis
	RedisEnabled  bool          `yaml:"redis_enabled"`
	RedisHost     string        `yaml:"redis_host"`
	RedisPort     string        `yaml:"redis_port"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`

	// JWT Authentication
	JWTSecretKey string        `yaml:"jwt_secret_key"`
	JWTExpiry    time.Duration `yaml:"jwt_expiry"`

	// Logging
	LogDir string `yaml:"log_dir"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		EnvType:         "LOCAL",
		DBDriver:        DriverMySQL,
		DBPort:          "3306",
		DBMigrationMode: MigrationAuto,
		ServerPort:      "3000",
		CORSAllowOrigin: "*",
		RateLimitRPS:    10,
		RateLimitBurst:  20,
		RedisHost:       "localhost",
		RedisPort:       "6379",
		CacheTTL:        30 * time.Second,
		JWTSecretKey:    "your_secret_key_here_change_in_production",
		JWTExpiry:       7 * 24 * time.Hour,
		LogDir:          "logs",
	}
}

// LoadConfig builds the configuration: defaults, then the optional YAML file
// at path, then environment variables.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	envType := strings.ToUpper(getEnv("ENV_TYPE", c.EnvType))
	prefix := ""
	switch envType {
	case "LOCAL":
		prefix = "LOCAL_"
	case "SERVER":
		prefix = "SERVER_"
	default:
		return fmt.Errorf("unknown ENV_TYPE %q", envType)
	}
	c.EnvType = envType

	// Database config - environment specific variables win over plain ones
	c.DBDriver = strings.ToLower(getPrefixed(prefix, "DB_DRIVER", c.DBDriver))
	c.DBHost = getPrefixed(prefix, "DB_HOST", c.DBHost)
	c.DBUser = getPrefixed(prefix, "DB_USER", c.DBUser)
	c.DBPassword = getPrefixed(prefix, "DB_PASSWORD", c.DBPassword)
	c.DBName = getPrefixed(prefix, "DB_NAME", c.DBName)
	c.DBPort = getPrefixed(prefix, "DB_PORT", c.DBPort)
	c.DBPath = getPrefixed(prefix, "DB_PATH", c.DBPath)
	c.DBMigrationMode = strings.ToLower(getPrefixed(prefix, "DB_MIGRATION_MODE", c.DBMigrationMode))

	c.ServerPort = getPrefixed(prefix, "SERVER_PORT", getEnv("PORT", c.ServerPort))
	c.CORSAllowOrigin = getEnv("CORS_ALLOW_ORIGIN", c.CORSAllowOrigin)
	c.LogDir = getEnv("LOG_DIR", c.LogDir)
	c.JWTSecretKey = getEnv("JWT_SECRET_KEY", getEnv("JWT_SECRET", c.JWTSecretKey))

	c.RedisHost = getPrefixed(prefix, "REDIS_HOST", c.RedisHost)
	c.RedisPort = getPrefixed(prefix, "REDIS_PORT", c.RedisPort)
	c.RedisPassword = getEnv("REDIS_PASSWORD", c.RedisPassword)

	var err error
	if c.RedisEnabled, err = getEnvAsBool("REDIS_ENABLED", c.RedisEnabled); err != nil {
		return err
	}
	if c.RedisDB, err = getEnvAsInt("REDIS_DB", c.RedisDB); err != nil {
		return err
	}
	if c.RateLimitBurst, err = getEnvAsInt("RATE_LIMIT_BURST", c.RateLimitBurst); err != nil {
		return err
	}
	if c.RateLimitRPS, err = getEnvAsFloat("RATE_LIMIT_RPS", c.RateLimitRPS); err != nil {
		return err
	}
	if c.CacheTTL, err = getEnvAsDuration("CACHE_TTL", c.CacheTTL); err != nil {
		return err
	}
	if c.JWTExpiry, err = getEnvAsDuration("JWT_EXPIRY", c.JWTExpiry); err != nil {
		return err
	}
	return nil
}

// Validate checks the combination of settings
func (c *Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case DriverMySQL, DriverPostgres:
		if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
			errs = append(errs, fmt.Errorf("%s driver requires DB_HOST, DB_USER and DB_NAME", c.DBDriver))
		}
	case DriverSQLite:
		if c.DBPath == "" {
			errs = append(errs, errors.New("sqlite driver requires DB_PATH"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver))
	}

	if c.DBMigrationMode != MigrationAuto && c.DBMigrationMode != MigrationDrop {
		errs = append(errs, fmt.Errorf("unknown DB_MIGRATION_MODE %q", c.DBMigrationMode))
	}
	if c.JWTSecretKey == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY must not be empty"))
	}
	if c.JWTExpiry <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRY must be positive"))
	}
	return errors.Join(errs...)
}

// GetDSN returns the database connection string for the configured driver
func (c *Config) GetDSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
	case DriverSQLite:
		return c.DBPath
	default:
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
	}
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// IsLocal reports whether the service runs in the LOCAL environment
func (c *Config) IsLocal() bool {
	return c.EnvType == "LOCAL"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getPrefixed(prefix, key, defaultValue string) string {
	return getEnv(prefix+key, getEnv(key, defaultValue))
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}
