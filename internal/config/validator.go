package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// MinAPIKeyLength is the shortest API key accepted without a warning
const MinAPIKeyLength = 32

// RequiredDiscordEnv lists what the Discord bot cannot start without
var RequiredDiscordEnv = []string{
	"API_KEY",
	"API_URL",
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
}

// ValidateEnv checks ENV_SCHEMA_VERSION and that every name in required is set
func ValidateEnv(required ...string) error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, v)
	}

	var missing []string
	for _, name := range required {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// EnvWarnings reports settings that work but are probably mistakes
func EnvWarnings() []string {
	var warnings []string

	if key := os.Getenv("API_KEY"); key != "" && len(key) < MinAPIKeyLength {
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters; generate one with: openssl rand -hex 32", MinAPIKeyLength))
	}

	if path := os.Getenv("BATTLE_CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			warnings = append(warnings, fmt.Sprintf("BATTLE_CONFIG_PATH %q is not readable; stock tuning will fail to load", path))
		}
	}

	if os.Getenv("DB_HOST") != "" && os.Getenv("DB_PASSWORD") == "" {
		warnings = append(warnings, "DB_HOST is set but DB_PASSWORD is empty")
	}

	if n, err := strconv.Atoi(os.Getenv("SIM_WORKERS")); err == nil && n > 4*runtime.NumCPU() {
		warnings = append(warnings, fmt.Sprintf("SIM_WORKERS=%d is more than four per CPU (%d CPUs)", n, runtime.NumCPU()))
	}

	return warnings
}

// ValidateEnvWithWarnings runs ValidateEnv and, when it passes, EnvWarnings
func ValidateEnvWithWarnings(required ...string) ([]string, error) {
	if err := ValidateEnv(required...); err != nil {
		return nil, err
	}
	return EnvWarnings(), nil
}
