package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Knowledge KnowledgeConfig
	Ai        AIConfig
	Guidance  GuidanceConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JwtSecret          string
}

type DatabaseConfig struct {
	// Connection is empty when the corpus is served from the YAML file.
	Connection string
}

type KnowledgeConfig struct {
	CorpusPath string
}

type AIConfig struct {
	LLMProvider   string // "ollama", "openai", "huggingface"
	LLMModel      string
	OllamaBaseURL string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Retries       uint
}

type GuidanceConfig struct {
	CitationLimit     int
	GenerationTimeout time.Duration
	RecordTTL         time.Duration
}

type TelemetryConfig struct {
	Enabled  bool
	Endpoint string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) UsesDatabase() bool {
	return c.Database.Connection != ""
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/craftguide.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Knowledge: KnowledgeConfig{
			CorpusPath: getEnv("KNOWLEDGE_CORPUS_PATH", "data/knowledge.yaml"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:      getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
			Retries:       uint(getEnvAsInt("LLM_RETRIES", 1)),
		},
		Guidance: GuidanceConfig{
			CitationLimit:     getEnvAsInt("GUIDANCE_CITATION_LIMIT", 5),
			GenerationTimeout: time.Duration(getEnvAsInt("GUIDANCE_GENERATION_TIMEOUT", 30)) * time.Second,
			RecordTTL:         time.Duration(getEnvAsInt("GUIDANCE_RECORD_TTL", 60)) * time.Minute,
		},
		Telemetry: TelemetryConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
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
	if value, err := strconv.Atoi(strValue); err == nil && value >= 0 {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
