package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults_UnmarshalMatchesNewDefault(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg := NewDefault()
	require.NoError(t, v.Unmarshal(cfg))

	assert.Equal(t, "INR", cfg.Defaults.Currency)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 4*time.Second, cfg.Dictation.Chunk)
	assert.Equal(t, "arecord", cfg.Dictation.CaptureCommand[0])
	assert.False(t, cfg.HasAICredential())
	assert.Empty(t, cfg.AI.TranscribeModel)
}

func TestFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "ai:\n  api_key: secret\n  timeout: 5s\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg := NewDefault()
	require.NoError(t, v.Unmarshal(cfg))

	assert.True(t, cfg.HasAICredential())
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.VisionModel)
}
