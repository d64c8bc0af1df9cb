// Package config loads the demo application's tunables from the
// environment. Everything has a playable default, so the binary runs with no
// environment at all; a .env file or exported variables override.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/beka-birhanu/pulse-maze/game"
)

// Config holds the demo application's configuration values. It is returned
// by value and passed explicitly to whoever needs it; the game core keeps no
// process-wide settings.
type Config struct {
	Rows            int          // maze height in cells
	Cols            int          // maze width in cells
	Seed            *int64       // fixed session seed, nil for wall-clock seeding
	MinGoalDistance int          // preferred minimum start-to-goal manhattan distance
	Timings         game.Timings // guidance pulse cadence
}

// Load reads the configuration from the environment, loading a .env file
// first when one is present.
func Load() Config {
	// A missing .env file is the normal case for the demo.
	_ = godotenv.Load()

	timings := game.DefaultTimings()
	timings.Charge = getEnvAsDuration("GUIDANCE_CHARGE_MS", timings.Charge)
	timings.PulseBase = getEnvAsDuration("GUIDANCE_PULSE_BASE_MS", timings.PulseBase)
	timings.PulseGrowth = getEnvAsFloat("GUIDANCE_PULSE_GROWTH", timings.PulseGrowth)
	timings.Settle = getEnvAsDuration("GUIDANCE_SETTLE_MS", timings.Settle)

	return Config{
		Rows:            getEnvAsInt("MAZE_ROWS", 8),
		Cols:            getEnvAsInt("MAZE_COLS", 8),
		Seed:            getEnvAsSeed("MAZE_SEED"),
		MinGoalDistance: getEnvAsInt("GOAL_MIN_DISTANCE", 4),
		Timings:         timings,
	}
}

// getEnvAsInt retrieves an integer environment variable or returns the
// default when unset or unparsable.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSeed retrieves an optional session seed; unset means an unseeded,
// non-reproducible session.
func getEnvAsSeed(key string) *int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

// getEnvAsDuration retrieves a millisecond count or returns the default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	ms, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(ms)
	if err != nil || value < 0 {
		return defaultValue
	}
	return time.Duration(value) * time.Millisecond
}

// getEnvAsFloat retrieves a float environment variable or returns the
// default.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
