package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"legalchat-be/internal/constant"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Tools    ToolConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	// SecretKey is reserved for session signing; the chat flow itself never
	// reads it.
	SecretKey string
}

type DatabaseConfig struct {
	// Driver selects "sqlite" (default, local file) or "postgres".
	Driver     string
	SqlitePath string
	Connection string // postgres DSN, only read when Driver == "postgres"
}

type APIKeys struct {
	Groq string
}

type AIConfig struct {
	LLMProvider string // "groq"
	LLMModel    string // e.g. "llama-3.3-70b-versatile"
	LLMBaseURL  string
}

type ToolConfig struct {
	LawNotesURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			SecretKey:          getEnv("SECRET_KEY", "your-secret-key-here"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			SqlitePath: getEnv("DB_PATH", "legal_chat.db"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			Groq: getEnv("GROQ_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider: getEnv("LLM_PROVIDER", "groq"),
			LLMModel:    getEnv("LLM_MODEL", constant.GroqDefaultModel),
			LLMBaseURL:  getEnv("LLM_BASE_URL", constant.GroqDefaultBaseURL),
		},
		Tools: ToolConfig{
			LawNotesURL: getEnv("LAW_NOTES_URL", constant.LawNotesDefaultURL),
		},
	}

	if cfg.Keys.Groq == "" {
		log.Fatal("GROQ_API_KEY is not set. Please set it in the environment or in a .env file.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
