package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/httpclient"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/logging"
)

// Upstream endpoints the cheat sheet is generated from.
const (
	DefaultEmojiAPIURL = "https://api.github.com/emojis"
	DefaultChartURL    = "https://unicode.org/emoji/charts/full-emoji-list.html"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	EmojiAPIURL       string                 `mapstructure:"emoji_api_url"`
	ChartURL          string                 `mapstructure:"chart_url"`
	UserAgent         string                 `mapstructure:"user_agent"`
	OutputPath        string                 `mapstructure:"output_path"`
	Columns           int                    `mapstructure:"columns"`
	TOCTitle          string                 `mapstructure:"toc_title"`
	Title             string                 `mapstructure:"title"`         // empty: resolved from the manifest
	ManifestPath      string                 `mapstructure:"manifest_path"` // go.mod supplying the default title
	RequestsPerSecond float64                `mapstructure:"requests_per_second"`
	MetricsAddr       string                 `mapstructure:"metrics_addr"`
	Proxy             httpclient.ProxyConfig `mapstructure:"proxy"`
	Log               logging.Config         `mapstructure:"log"`
	DryRun            bool                   // Not from config file, set by flag
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*AppConfig, error) {
	var cfg AppConfig
	v := viper.New()

	v.SetDefault("emoji_api_url", DefaultEmojiAPIURL)
	v.SetDefault("chart_url", DefaultChartURL)
	v.SetDefault("user_agent", "https://github.com/hsqStephenZhang/emoji-cheat-sheet")
	v.SetDefault("output_path", "readme.md")
	v.SetDefault("columns", 2)
	v.SetDefault("toc_title", "Table of Contents")
	v.SetDefault("title", "")
	v.SetDefault("manifest_path", "go.mod")
	v.SetDefault("requests_per_second", 1.0)
	v.SetDefault("metrics_addr", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)
	v.SetDefault("log.time_format", time.RFC3339)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.emoji-cheat-sheet")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	v.SetEnvPrefix("EMOJI_SHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
