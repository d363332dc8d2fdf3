package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
)

const (
	defaultRunAddress        = ":5000"
	defaultMigrationsDir     = "internal/db/migrations"
	defaultKeepAliveInterval = 10 * time.Minute
)

type Config struct {
	RunAddress        string        `env:"RUN_ADDRESS"`
	DatabaseDSN       string        `env:"DATABASE_URL"`
	MigrationsDir     string        `env:"MIGRATIONS_DIR"`
	JWTUserSecret     string        `env:"JWT_SECRET"`
	KeepAliveURL      string        `env:"KEEPALIVE_URL"`
	KeepAliveInterval time.Duration `env:"KEEPALIVE_INTERVAL"`
}

// String hides the secret and the DSN so the config can be logged.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s KeepAliveURL:%s KeepAliveInterval:%s DatabaseDSN:%s JWTUserSecret:%s}",
		c.RunAddress, c.MigrationsDir, c.KeepAliveURL, c.KeepAliveInterval, mask(c.DatabaseDSN), mask(c.JWTUserSecret),
	)
}

func mask(value string) string {
	if value == "" {
		return ""
	}
	return "***"
}

// LoadConfig reads an optional .env file, the environment and the command line flags. Environment
// values win over flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func load(args []string) (*Config, error) {
	if dotenvErr := godotenv.Load(); dotenvErr != nil && !errors.Is(dotenvErr, os.ErrNotExist) {
		return nil, pkgerrors.Wrap(dotenvErr, "load .env file")
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, pkgerrors.Wrap(envParseErr, "parse env config")
	}

	fs := flag.NewFlagSet("duesdesk", flag.ContinueOnError)
	if flagsErr := loadFlags(fs, args, &flagsConfig); flagsErr != nil {
		return nil, pkgerrors.Wrap(flagsErr, "parse flags")
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, pkgerrors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, pkgerrors.New("JWT secret is not set")
	}
	return conf, nil
}

func loadFlags(fs *flag.FlagSet, args []string, flagConfig *Config) error {
	fs.StringVar(&flagConfig.RunAddress, "a", defaultRunAddress, "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", defaultMigrationsDir, "Database migrations directory")
	fs.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT signing secret")
	fs.StringVar(&flagConfig.KeepAliveURL, "k", "", "URL pinged periodically to keep the service awake, empty disables")
	fs.DurationVar(&flagConfig.KeepAliveInterval, "i", defaultKeepAliveInterval, "Keep-alive ping interval")

	return fs.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	interval := envConfig.KeepAliveInterval
	if interval <= 0 {
		interval = flagsConfig.KeepAliveInterval
	}
	return &Config{
		RunAddress:        defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:       defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:     defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:     defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		KeepAliveURL:      defaultIfBlank(envConfig.KeepAliveURL, flagsConfig.KeepAliveURL),
		KeepAliveInterval: interval,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
