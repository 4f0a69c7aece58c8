package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"

	"voicesketch/internal/ai"
)

const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches gin to release mode

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`  // debug, info, warn, error
	LogFormat string `mapstructure:"LOG_FORMAT"` // json or console

	// Generation
	DefaultMode     string   `mapstructure:"DEFAULT_MODE"`     // local or remote
	GeminiAPIKey    string   `mapstructure:"GEMINI_API_KEY"`   // used when a request carries no key
	GeminiBaseURL   string   `mapstructure:"GEMINI_BASE_URL"`  // OpenAI-compatible endpoint
	ModelCandidates []string `mapstructure:"MODEL_CANDIDATES"` // fallback ladder, comma separated in env

	// Speech-to-text
	SpeechAPIKey  string `mapstructure:"SPEECH_API_KEY"`
	SpeechBaseURL string `mapstructure:"SPEECH_BASE_URL"`
	SpeechModel   string `mapstructure:"SPEECH_MODEL"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("DEFAULT_MODE", ModeLocal)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_BASE_URL", ai.DefaultBaseURL)
	v.SetDefault("MODEL_CANDIDATES", append([]string(nil), ai.DefaultModelCandidates...))
	v.SetDefault("SPEECH_API_KEY", "")
	v.SetDefault("SPEECH_BASE_URL", "")
	v.SetDefault("SPEECH_MODEL", "whisper-1")
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name
	setDefaults(v)

	v.AutomaticEnv() // Read environment variables that match keys

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.ModelCandidates = cleanList(config.ModelCandidates)
	if err = config.Validate(); err != nil {
		return Config{}, err
	}

	if config.GeminiAPIKey == "" {
		log.Println("WARN: GEMINI_API_KEY is not set. Remote mode requires a key per request.")
	}
	if config.SpeechAPIKey == "" {
		log.Println("WARN: SPEECH_API_KEY is not set. Voice input is disabled.")
	}

	return
}

// Validate checks settings that would make the service unusable.
func (c Config) Validate() error {
	if c.DefaultMode != ModeLocal && c.DefaultMode != ModeRemote {
		return fmt.Errorf("invalid DEFAULT_MODE %q: must be %q or %q", c.DefaultMode, ModeLocal, ModeRemote)
	}
	if len(c.ModelCandidates) == 0 {
		return errors.New("MODEL_CANDIDATES must list at least one model")
	}
	return nil
}

// cleanList trims entries and drops empty ones. Environment values arrive as
// a single comma separated string.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
