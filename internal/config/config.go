package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	// Gemini provider
	GeminiAPIKey   string
	Model          string
	TimeoutSeconds int
	// Prompt assembly limits; lossy by design, tunable without code changes
	HistoryWindow  int
	MaxPromptChars int
	// Persona/mode prompt template file (built-in defaults used when absent)
	PromptsFile string
	// Midtrans Snap
	MidtransServerKey string
	MidtransBaseURL   string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:              getEnvDefault("PORT", "8080"),
		AllowedOrigins:    getEnvListDefault("ALLOWED_ORIGINS", []string{"*"}),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:             getEnvDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		TimeoutSeconds:    getEnvIntDefault("GEMINI_TIMEOUT_SECONDS", 60),
		HistoryWindow:     getEnvIntDefault("HISTORY_WINDOW", 6),
		MaxPromptChars:    getEnvIntDefault("MAX_PROMPT_CHARS", 4000),
		PromptsFile:       getEnvDefault("PROMPTS_FILE", "prompts/assistant.yaml"),
		MidtransServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransBaseURL:   getEnvDefault("MIDTRANS_BASE_URL", "https://app.sandbox.midtrans.com/snap/v1"),
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("warning: GEMINI_API_KEY is not set; chat requests will fail until provided")
	}
	if cfg.MidtransServerKey == "" {
		log.Println("warning: MIDTRANS_SERVER_KEY is not set; payment requests will fail until provided")
	}
	return cfg
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvListDefault(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			s := strings.TrimSpace(p)
			if s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
		log.Printf("warning: %s=%q is not a positive integer, using %d", key, v, def)
	}
	return def
}
