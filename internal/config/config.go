package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// API Settings
	APITitle   string
	APIVersion string
	APIPrefix  string
	Port       string

	// CORS
	CORSOrigins []string

	// Study database
	StudyDataPath string

	// Annotation backend: "memory" or "postgres"
	AnnotationBackend string
	PostgresURI       string

	// Chat provider: "anthropic" or "vertex"
	ChatProvider     string
	ChatMaxTokens    int
	AnthropicBaseURL string
	AnthropicAPIKey  string
	AnthropicModel   string

	// Vertex AI settings (used when ChatProvider = "vertex")
	GCPProjectID    string
	GCPLocation     string
	VertexChatModel string

	// Bibel TV passage API
	BibleTVBaseURL   string
	BibleTVAPIKey    string
	BibleTranslation string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		APITitle:    getEnv("API_TITLE", "Video Study Bible API"),
		APIVersion:  getEnv("API_VERSION", "1.0.0"),
		APIPrefix:   getEnv("API_PREFIX", "/api/v1"),
		Port:        getEnv("PORT", "8081"),
		CORSOrigins: parseCORSOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		StudyDataPath: getEnv("STUDY_DATA_PATH", "data/study_bible_database.json"),

		AnnotationBackend: getEnv("ANNOTATION_BACKEND", "memory"), // "memory" or "postgres"
		PostgresURI:       getEnv("POSTGRES_URI", ""),

		ChatProvider:     getEnv("CHAT_PROVIDER", "anthropic"), // "anthropic" or "vertex"
		ChatMaxTokens:    getEnvInt("CHAT_MAX_TOKENS", 1024),
		AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),

		GCPProjectID:    getEnv("GCP_PROJECT_ID", ""),
		GCPLocation:     getEnv("GCP_LOCATION", "us-central1"),
		VertexChatModel: getEnv("VERTEX_CHAT_MODEL", "gemini-2.0-flash"),

		BibleTVBaseURL:   getEnv("BIBLETV_BASE_URL", "https://bibelthek-backend.bibeltv.de"),
		BibleTVAPIKey:    getEnv("BIBLETV_API_KEY", ""),
		BibleTranslation: getEnv("BIBLE_TRANSLATION", "LUT"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	parts := strings.Split(value, ",")
	origins = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
