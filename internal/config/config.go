package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string
	APIKey      string // API key for authentication
	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	// Database is optional; an empty DBHost keeps all state in memory
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Creature data provider
	PokeAPIURL     string
	PokeAPITimeout time.Duration
	CacheSize      int
	CacheTTL       time.Duration
	CreatureTTL    time.Duration

	// Battles
	DefaultLevel     int
	MaxTurns         int
	MatchTTL         time.Duration
	MatchCapacity    int
	SimWorkers       int
	BattleConfigPath string

	// Event delivery
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// Discord bot
	DiscordToken   string
	DiscordAppID   string
	DiscordGuildID string
	APIURL         string
}

// Load loads the server configuration from environment variables.
// API_KEY is mandatory.
func Load() (*Config, error) {
	cfg, err := LoadLocal()
	if err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// LoadLocal loads the configuration without requiring an API key, for
// tools that never expose the HTTP API
func LoadLocal() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),
		APIKey:      getEnv("API_KEY", ""),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", ""),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "battlesim"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		PokeAPIURL:     getEnv("POKEAPI_URL", DefaultPokeAPIURL),
		PokeAPITimeout: getEnvAsDuration("POKEAPI_TIMEOUT", DefaultPokeAPITimeout),
		CacheSize:      getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:       getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),
		CreatureTTL:    getEnvAsDuration("CREATURE_CACHE_TTL", DefaultCreatureTTL),

		DefaultLevel:     getEnvAsInt("DEFAULT_LEVEL", DefaultLevel),
		MaxTurns:         getEnvAsInt("MAX_TURNS", DefaultMaxTurns),
		MatchTTL:         getEnvAsDuration("MATCH_TTL", DefaultMatchTTL),
		MatchCapacity:    getEnvAsInt("MATCH_CAPACITY", DefaultMatchCapacity),
		SimWorkers:       getEnvAsInt("SIM_WORKERS", DefaultSimWorkers),
		BattleConfigPath: getEnv("BATTLE_CONFIG_PATH", ""),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),

		DiscordToken:   getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:   getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID: getEnv("DISCORD_GUILD_ID", ""),
		APIURL:         getEnv("API_URL", DefaultAPIURL),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// UsesDatabase reports whether a Postgres backend is configured
func (c *Config) UsesDatabase() bool {
	return c.DBHost != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getEnvAsDuration parses a time.Duration variable, falling back on absence or parse failure
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
