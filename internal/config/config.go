package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	DatasetSource   string // http(s) URL or local file path of the word CSV
	DatasetTTL      time.Duration
	ChunkSize       int // words per set when the CSV has no Set column
	TTSLang         string
	TemplatesPath   string
	StaticFilesPath string
	SessionDuration time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is applied first when
// present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatasetSource:   getEnv("DATASET_SOURCE", "./data/words.csv"),
		DatasetTTL:      getDurationEnv("DATASET_TTL", 5*time.Minute),
		ChunkSize:       getIntEnv("CHUNK_SIZE", 10),
		TTSLang:         getEnv("TTS_LANG", "en"),
		TemplatesPath:   getEnv("TEMPLATES_PATH", "./web/templates"),
		StaticFilesPath: getEnv("STATIC_PATH", "./web/static"),
		SessionDuration: getDurationEnv("SESSION_DURATION", 24*time.Hour),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
