package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by COGLLAMA_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() {
	envFile := os.Getenv("COGLLAMA_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; env vars may be set directly.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

// DatabaseURL returns the Postgres URL for snapshot persistence. Empty
// means persistence is not wired and snapshot endpoints degrade.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// InferenceThreshold returns the minimum belief strength for reasoning.
// Zero means the stage default.
func InferenceThreshold() float64 {
	t, err := strconv.ParseFloat(os.Getenv("INFERENCE_THRESHOLD"), 64)
	if err != nil || t <= 0 {
		return 0
	}
	return t
}

// ActionThreshold returns the minimum utility score for action selection.
// Zero means the stage default.
func ActionThreshold() float64 {
	t, err := strconv.ParseFloat(os.Getenv("ACTION_THRESHOLD"), 64)
	if err != nil || t <= 0 {
		return 0
	}
	return t
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
