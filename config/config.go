package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Port           string `mapstructure:"port"`
	UploadDir      string `mapstructure:"upload_dir"`
	Provider       string `mapstructure:"provider"`
	AIEndpoint     string `mapstructure:"ai_endpoint"`
	Model          string `mapstructure:"model"`
	OpenAIAPIKey   string `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	DPI            int    `mapstructure:"dpi"`
	PromptStyle    string `mapstructure:"prompt_style"`
	OutputSuffix   string `mapstructure:"output_suffix"`
	RequestTimeout int    `mapstructure:"request_timeout"` // seconds, per OCR call
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "8080")
	v.SetDefault("upload_dir", "./uploads")
	v.SetDefault("provider", ProviderGemini)
	v.SetDefault("model", "gemini-2.5-flash-lite")
	v.SetDefault("dpi", 300)
	v.SetDefault("prompt_style", "clean")
	v.SetDefault("output_suffix", "_OCR")
	v.SetDefault("request_timeout", 120)

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}
