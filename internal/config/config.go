package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
	Tavily TavilyConfig `mapstructure:"tavily"`
	Plan   PlanConfig   `mapstructure:"plan"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// OpenAIConfig configures the generative backend client.
type OpenAIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// TavilyConfig configures the video search client.
type TavilyConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// PlanConfig holds the plan-generation knobs shared by all tiers.
type PlanConfig struct {
	// DurationDays is the plan horizon. The calorie progression tables
	// assume the default 30-day / 5-week horizon.
	DurationDays int `mapstructure:"duration_days"`
	// BatchSize is how many days are generated concurrently per group.
	BatchSize int `mapstructure:"batch_size"`
	// BatchTimeout bounds one concurrent group; on expiry the group is
	// replayed sequentially.
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling: nested keys map to underscored
	// variables, e.g. openai.api_key -> OPENAI_API_KEY.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8031")
	viper.SetDefault("openai.base_url", "https://api.openai.com")
	viper.SetDefault("openai.model", "gpt-4-1106-preview")
	viper.SetDefault("openai.timeout", "60s")
	viper.SetDefault("tavily.base_url", "https://api.tavily.com")
	viper.SetDefault("tavily.timeout", "15s")
	viper.SetDefault("plan.duration_days", 30)
	viper.SetDefault("plan.batch_size", 6)
	viper.SetDefault("plan.batch_timeout", "90s")
	viper.SetDefault("log.mode", "dev")

	err = viper.ReadInConfig()
	// Missing config file is fine; env vars and defaults still apply.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
