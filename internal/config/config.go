package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env             string        `mapstructure:"ENV"`
	Port            string        `mapstructure:"PORT"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	ClientsCSVPath  string        `mapstructure:"CLIENTS_CSV_PATH"`
	AdminKey        string        `mapstructure:"ADMIN_KEY"`
	LLMBaseURL      string        `mapstructure:"LLM_BASE_URL"`
	LLMModel        string        `mapstructure:"LLM_MODEL"`
	LLMAPIKey       string        `mapstructure:"LLM_API_KEY"`
	LLMMaxTokens    int           `mapstructure:"LLM_MAX_TOKENS"`
	CORSAllowed     string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	MaxUploadSizeMB int64         `mapstructure:"MAX_UPLOAD_MB"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("CLIENTS_CSV_PATH", "clients.csv")
	v.SetDefault("LLM_MODEL", "gpt-4o")
	v.SetDefault("LLM_MAX_TOKENS", 4096)
	v.SetDefault("REQUEST_TIMEOUT", "60s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("MAX_UPLOAD_MB", 20)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
