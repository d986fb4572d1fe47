package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment. A .env
// file is honored in development; real environment variables win.
type Config struct {
	ListenAddr     string
	AllowedOrigins []string
	Debug          bool

	WordsFile     string
	RoundDuration time.Duration

	EventRate  int
	EventBurst int

	UploadsDir string

	VisionAPIURL string
	VisionAPIKey string
	VisionModel  string
}

// Load reads the environment, applying defaults for anything unset.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":5000"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		Debug:          os.Getenv("DEBUG") == "true",
		WordsFile:      os.Getenv("WORDS_FILE"),
		RoundDuration:  time.Duration(getEnvInt("ROUND_SECONDS", 30)) * time.Second,
		EventRate:      getEnvInt("WS_EVENT_RATE", 20),
		EventBurst:     getEnvInt("WS_EVENT_BURST", 40),
		UploadsDir:     getEnv("UPLOADS_DIR", "uploads"),
		VisionAPIURL:   getEnv("VISION_API_URL", "https://api.openai.com/v1/chat/completions"),
		VisionAPIKey:   os.Getenv("VISION_API_KEY"),
		VisionModel:    getEnv("VISION_MODEL", "gpt-4-turbo"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
