package config

import "github.com/spf13/viper"

// SetDefaults registers NewDefault values with v so that a freshly written
// config file documents every key and env overrides work for all of them.
func SetDefaults(v *viper.Viper) {
	d := NewDefault()

	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("defaults.currency", d.Defaults.Currency)
	v.SetDefault("defaults.email", d.Defaults.Email)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.pretty", d.Log.Pretty)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("ai.api_key", d.AI.APIKey)
	v.SetDefault("ai.base_url", d.AI.BaseURL)
	v.SetDefault("ai.vision_model", d.AI.VisionModel)
	v.SetDefault("ai.chat_model", d.AI.ChatModel)
	v.SetDefault("ai.transcribe_model", d.AI.TranscribeModel)
	v.SetDefault("ai.timeout", d.AI.Timeout.String())
	v.SetDefault("dictation.capture_command", d.Dictation.CaptureCommand)
	v.SetDefault("dictation.chunk", d.Dictation.Chunk.String())
}
