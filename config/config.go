package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Port       string
	Facebook   FacebookConfig
	Redis      RedisConfig
	ClickHouse ClickHouseConfig
}

// FacebookConfig holds the Conversions API destination settings
type FacebookConfig struct {
	APIEndpoint    string // Graph API base, no trailing slash
	APIVersion     string // e.g. "v12.0"
	PixelID        string // destination pixel/dataset id (required)
	AccessToken    string // Conversions API access token (required)
	ActionSource   string // default action_source when the event carries none
	TestEventCode  string // default test_event_code when the event carries none
	TimeoutSeconds int    // outbound request timeout
}

// RedisConfig holds Redis connection settings for the delivery counters
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	Endpoint string
}

// ClickHouseConfig holds ClickHouse settings for the delivery audit log
type ClickHouseConfig struct {
	Enabled               bool
	Host                  string
	Port                  string
	Database              string
	User                  string
	Password              string
	DSN                   string
	BufferChannelCapacity int // capacity of the audit buffer channel
	BatchSize             int // number of records to batch before flushing
	FlushIntervalSeconds  int // time interval in seconds to flush batches
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "3000"),
		Facebook: FacebookConfig{
			APIEndpoint:    getEnv("FB_API_ENDPOINT", "https://graph.facebook.com"),
			APIVersion:     getEnv("FB_API_VERSION", "v12.0"),
			PixelID:        getEnv("FB_PIXEL_ID", ""),
			AccessToken:    getEnv("FB_ACCESS_TOKEN", ""),
			ActionSource:   getEnv("FB_ACTION_SOURCE", ""),
			TestEventCode:  getEnv("FB_TEST_EVENT_CODE", ""),
			TimeoutSeconds: getEnvAsInt("FB_REQUEST_TIMEOUT_SECONDS", 10),
		},
		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "1") == "1",
			Host:     getEnv("REDIS_HOST", "127.0.0.1"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			Endpoint: getEnv("REDIS_ENDPOINT", ""),
		},
		ClickHouse: ClickHouseConfig{
			Enabled:               getEnv("CLICKHOUSE_ENABLED", "1") == "1",
			Host:                  getEnv("CLICKHOUSE_HOST", "127.0.0.1"),
			Port:                  getEnv("CLICKHOUSE_PORT", "9000"),
			Database:              getEnv("CLICKHOUSE_DATABASE", "default"),
			User:                  getEnv("CLICKHOUSE_USER", "app"),
			Password:              getEnv("CLICKHOUSE_PASSWORD", ""),
			DSN:                   getEnv("CLICKHOUSE_DSN", ""),
			BufferChannelCapacity: getEnvAsInt("AUDIT_BUFFER_CAPACITY", 10000),
			BatchSize:             getEnvAsInt("AUDIT_BATCH_SIZE", 1000),
			FlushIntervalSeconds:  getEnvAsInt("AUDIT_FLUSH_INTERVAL_SECONDS", 1),
		},
	}
}

// Validate checks that the required destination settings are present.
func (c *Config) Validate() error {
	if c.Facebook.PixelID == "" {
		return fmt.Errorf("FB_PIXEL_ID is required")
	}
	if c.Facebook.AccessToken == "" {
		return fmt.Errorf("FB_ACCESS_TOKEN is required")
	}
	return nil
}

func (c *ClickHouseConfig) GetClickHouseDSN() string {
	if c.DSN != "" {
		return c.DSN
	}

	// Build DSN from components
	dsn := "clickhouse://"
	if c.User != "" {
		dsn += c.User
		if c.Password != "" {
			dsn += ":" + c.Password
		}
		dsn += "@"
	}
	dsn += c.Host + ":" + c.Port + "/" + c.Database
	return dsn
}

func (r *RedisConfig) GetRedisAddr() string {
	if r.Endpoint != "" {
		return r.Endpoint
	}
	return r.Host + ":" + r.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
