package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mrsameer/rag-with-gemini/internal/constant"
)

type Config struct {
	App        AppConfig
	FileSearch FileSearchConfig
	Keys       APIKeys
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type FileSearchConfig struct {
	// StoreName pins the active store to a full resource name; empty means
	// resolve by display name.
	StoreName        string
	StoreDisplayName string
	Model            string
	ChunkTokens      int
	OverlapTokens    int
	OperationTimeout time.Duration
}

type APIKeys struct {
	GoogleGemini string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
		},
		FileSearch: FileSearchConfig{
			StoreName:        getEnv("FILE_SEARCH_STORE_NAME", ""),
			StoreDisplayName: getEnv("FILE_SEARCH_DISPLAY_NAME", constant.DefaultStoreName),
			Model:            getEnv("GEMINI_MODEL", constant.DefaultGenerativeModel),
			ChunkTokens:      getEnvAsInt("CHUNK_TOKENS", constant.DefaultChunkTokens),
			OverlapTokens:    getEnvAsInt("CHUNK_OVERLAP_TOKENS", constant.DefaultOverlapTokens),
			OperationTimeout: time.Duration(getEnvAsInt("OPERATION_TIMEOUT_SECONDS", int(constant.DefaultOperationTimeout/time.Second))) * time.Second,
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GEMINI_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
