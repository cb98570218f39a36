package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "gemini-1.5-flash", cfg.Model)
	require.Equal(t, 6, cfg.HistoryWindow)
	require.Equal(t, 4000, cfg.MaxPromptChars)
	require.Equal(t, 60, cfg.TimeoutSeconds)
	require.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	require.Equal(t, "https://app.sandbox.midtrans.com/snap/v1", cfg.MidtransBaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("HISTORY_WINDOW", "12")
	t.Setenv("ALLOWED_ORIGINS", "https://portal.example, https://admin.example")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "gemini-1.5-pro", cfg.Model)
	require.Equal(t, 12, cfg.HistoryWindow)
	require.Equal(t, []string{"https://portal.example", "https://admin.example"}, cfg.AllowedOrigins)
}

func TestLoadIgnoresInvalidInts(t *testing.T) {
	t.Setenv("MAX_PROMPT_CHARS", "not-a-number")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "-5")

	cfg := Load()
	require.Equal(t, 4000, cfg.MaxPromptChars)
	require.Equal(t, 60, cfg.TimeoutSeconds)
}
