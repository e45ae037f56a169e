package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string `validate:"required"`
	Env             string `validate:"oneof=dev local staging production"`
	CORSAllowOrigin []string
	DatabaseURL     string
	PhrasebookPath  string

	HFAPIToken        string
	HFBaseURL         string `validate:"required,url"`
	SentimentModel    string `validate:"required"`
	EmotionModel      string `validate:"required"`
	ClassifierTimeout time.Duration

	OpenAIAPIKey        string
	OpenAIBaseURL       string  `validate:"omitempty,url"`
	LLMModel            string  `validate:"required"`
	LLMMaxTokens        int64   `validate:"gte=1,lte=4096"`
	LLMTemperature      float64 `validate:"gte=0,lte=2"`
	LLMTopP             float64 `validate:"gte=0,lte=1"`
	LLMFrequencyPenalty float64 `validate:"gte=-2,lte=2"`
	LLMPresencePenalty  float64 `validate:"gte=-2,lte=2"`
	RewriteIntensity    string  `validate:"oneof=subtle moderate strong"`

	RateLimitRPS   float64 `validate:"gte=0"`
	RateLimitBurst int     `validate:"gte=0"`
	MaxTextBytes   int64   `validate:"gt=0"`
	ScoreCacheSize int     `validate:"gte=0"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	if env == "production" && os.Getenv("HF_API_TOKEN") == "" {
		log.Printf("HF_API_TOKEN is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		PhrasebookPath:  getEnv("PHRASEBOOK_PATH", ""),

		HFAPIToken:        os.Getenv("HF_API_TOKEN"),
		HFBaseURL:         getEnv("HF_BASE_URL", "https://router.huggingface.co/hf-inference"),
		SentimentModel:    getEnv("SENTIMENT_MODEL", "distilbert-base-uncased-finetuned-sst-2-english"),
		EmotionModel:      getEnv("EMOTION_MODEL", "j-hartmann/emotion-english-distilroberta-base"),
		ClassifierTimeout: time.Duration(getEnvInt("CLASSIFIER_TIMEOUT_SECONDS", 30)) * time.Second,

		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", ""),
		LLMModel:            getEnv("LLM_MODEL", "gpt-3.5-turbo-instruct"),
		LLMMaxTokens:        int64(getEnvInt("LLM_MAX_TOKENS", 150)),
		LLMTemperature:      getEnvFloat("LLM_TEMPERATURE", 0.7),
		LLMTopP:             getEnvFloat("LLM_TOP_P", 1.0),
		LLMFrequencyPenalty: getEnvFloat("LLM_FREQUENCY_PENALTY", 0),
		LLMPresencePenalty:  getEnvFloat("LLM_PRESENCE_PENALTY", 0),
		RewriteIntensity:    normalizeIntensity(getEnv("REWRITE_INTENSITY", "moderate")),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		MaxTextBytes:   int64(getEnvInt("MAX_TEXT_BYTES", 200000)),
		ScoreCacheSize: getEnvInt("SCORE_CACHE_SIZE", 512),
	}
}

// IsDevLike reports whether missing external services may be replaced by local stand-ins.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config env %s invalid int: %v", key, err)
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config env %s invalid float: %v", key, err)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeIntensity(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "subtle":
		return "subtle"
	case "strong":
		return "strong"
	default:
		return "moderate"
	}
}
