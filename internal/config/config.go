package config

import "time"

type Config struct {
	Database   DatabaseConfig  `mapstructure:"database"`
	Defaults   DefaultsConfig  `mapstructure:"defaults"`
	Log        LogConfig       `mapstructure:"log"`
	AI         AIConfig        `mapstructure:"ai"`
	Dictation  DictationConfig `mapstructure:"dictation"`
	ConfigPath string          `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
	Email    string `mapstructure:"email"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable lines instead of JSON
	File   string `mapstructure:"file"`
}

// AIConfig points at an OpenAI-compatible endpoint. TranscribeModel is empty
// by default because the default endpoint serves no /audio/transcriptions;
// voice input stays off until one is configured.
type AIConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	BaseURL         string        `mapstructure:"base_url"`
	VisionModel     string        `mapstructure:"vision_model"`
	ChatModel       string        `mapstructure:"chat_model"`
	TranscribeModel string        `mapstructure:"transcribe_model"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

type DictationConfig struct {
	CaptureCommand []string      `mapstructure:"capture_command"`
	Chunk          time.Duration `mapstructure:"chunk"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "INR", Email: "merchant@fixpay.com"},
		Log:      LogConfig{Level: "info", Pretty: false, File: ""},
		AI: AIConfig{
			BaseURL:         "https://generativelanguage.googleapis.com/v1beta/openai/",
			VisionModel:     "gemini-2.5-flash",
			ChatModel:       "gemini-2.5-flash",
			TranscribeModel: "",
			Timeout:         30 * time.Second,
		},
		Dictation: DictationConfig{
			CaptureCommand: []string{"arecord", "-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-t", "raw"},
			Chunk:          4 * time.Second,
		},
	}
}

// HasAICredential reports whether AI features can be attempted at all.
func (c *Config) HasAICredential() bool {
	return c.AI.APIKey != ""
}
