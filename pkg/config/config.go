package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string
	Environment     string

	// MediaStorage selects how complaint media is persisted:
	// "inline" embeds data URIs in the document, "gcs" uploads to Cloud Storage.
	MediaStorage string

	GeminiApiKey string
	GeminiModel  string

	MaxComplaintImages int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		FirebaseProject:    getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:     getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:      getEnv("STORAGE_BUCKET", ""),
		Environment:        getEnv("ENVIRONMENT", "development"),
		MediaStorage:       getEnv("MEDIA_STORAGE", "inline"),
		GeminiApiKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		MaxComplaintImages: getEnvAsInt("MAX_COMPLAINT_IMAGES", 3),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
