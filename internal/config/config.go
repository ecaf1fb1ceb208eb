package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Log struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

type Database struct {
	// URL is a lib/pq connection string. Empty keeps games in memory.
	URL string `mapstructure:"url" json:"-"`
}

type NATS struct {
	URL           string `mapstructure:"url" json:"url"`
	SubjectPrefix string `mapstructure:"subject_prefix" json:"subjectPrefix"`
}

type WS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" json:"allowedOrigins"`
}

type Bot struct {
	MinDelay          time.Duration `mapstructure:"min_delay" json:"minDelay"`
	MaxDelay          time.Duration `mapstructure:"max_delay" json:"maxDelay"`
	DefaultDifficulty string        `mapstructure:"default_difficulty" json:"defaultDifficulty"`
}

type Rules struct {
	StrictCards  bool  `mapstructure:"strict_cards" json:"strictCards"`
	HeartsTarget int   `mapstructure:"hearts_target" json:"heartsTarget"`
	SpadesTarget int   `mapstructure:"spades_target" json:"spadesTarget"`
	Seed         int64 `mapstructure:"seed" json:"-"`
}

type HTTP struct {
	Addr string `mapstructure:"addr" json:"addr"`
}

type Config struct {
	HTTP     HTTP     `mapstructure:"http" json:"http"`
	Log      Log      `mapstructure:"log" json:"log"`
	Database Database `mapstructure:"database" json:"-"`
	NATS     NATS     `mapstructure:"nats" json:"nats"`
	WS       WS       `mapstructure:"ws" json:"ws"`
	Bot      Bot      `mapstructure:"bot" json:"bot"`
	Rules    Rules    `mapstructure:"rules" json:"rules"`
}

const envPrefix = "TABLETOP"

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("database.url", "")
	v.SetDefault("nats.url", "")
	v.SetDefault("nats.subject_prefix", "tabletop")
	v.SetDefault("ws.allowed_origins", []string{})
	v.SetDefault("bot.min_delay", time.Second)
	v.SetDefault("bot.max_delay", 3*time.Second)
	v.SetDefault("bot.default_difficulty", "medium")
	v.SetDefault("rules.strict_cards", true)
	v.SetDefault("rules.hearts_target", 100)
	v.SetDefault("rules.spades_target", 500)
	v.SetDefault("rules.seed", 0)
}

// Load reads defaults, then the config file, then TABLETOP_* variables.
// path may be empty, in which case $TABLETOP_CONFIG or ./config.yaml is
// used when present.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("config: http.addr is empty")
	}
	if c.Bot.MinDelay < 0 || c.Bot.MaxDelay < c.Bot.MinDelay {
		return fmt.Errorf("config: bot delay range [%s, %s] is invalid", c.Bot.MinDelay, c.Bot.MaxDelay)
	}
	if c.Rules.HeartsTarget <= 0 || c.Rules.SpadesTarget <= 0 {
		return errors.New("config: score targets must be positive")
	}
	return nil
}
