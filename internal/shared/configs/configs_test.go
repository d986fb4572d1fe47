package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LISTEN_ADDR", "ALLOWED_ORIGINS", "DEBUG", "WORDS_FILE",
		"ROUND_SECONDS", "WS_EVENT_RATE", "WS_EVENT_BURST", "UPLOADS_DIR",
		"VISION_API_URL", "VISION_API_KEY", "VISION_MODEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":5000", cfg.ListenAddr)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.WordsFile)
	assert.Equal(t, 30*time.Second, cfg.RoundDuration)
	assert.Equal(t, 20, cfg.EventRate)
	assert.Equal(t, 40, cfg.EventBurst)
	assert.Equal(t, "uploads", cfg.UploadsDir)
	assert.Equal(t, "gpt-4-turbo", cfg.VisionModel)
	assert.Empty(t, cfg.VisionAPIKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":8080")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DEBUG", "true")
	t.Setenv("ROUND_SECONDS", "12")
	t.Setenv("WS_EVENT_RATE", "5")
	t.Setenv("WS_EVENT_BURST", "10")
	t.Setenv("VISION_API_KEY", "sk-test")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 12*time.Second, cfg.RoundDuration)
	assert.Equal(t, 5, cfg.EventRate)
	assert.Equal(t, 10, cfg.EventBurst)
	assert.Equal(t, "sk-test", cfg.VisionAPIKey)
}

func TestLoadBadRoundSeconds(t *testing.T) {
	testCases := []string{"0", "-5", "abc"}
	for _, value := range testCases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("ROUND_SECONDS", value)
			assert.Equal(t, 30*time.Second, Load().RoundDuration)
		})
	}
}
