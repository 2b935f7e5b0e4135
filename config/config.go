package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	DB       DB
	App      App
	Content  Content
	Settings Settings
	Uploads  Uploads
	Sentry   Sentry
}

type App struct {
	Host string
	Port int
}

type DB struct {
	// Migrate applies pending migrations on startup.
	Migrate    bool
	LogQueries bool
}

// Content holds defaults for blog posts created without author or category.
type Content struct {
	Author   string
	Category string
}

type Settings struct {
	TTL Duration
}

type Uploads struct {
	Dir     string
	BaseURL string
}

type Sentry struct {
	DSN         string
	Environment string
}

// Duration decodes TOML strings such as "30s" or "1m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Load decodes the TOML file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Config{
		App:      App{Port: 8080},
		Settings: Settings{TTL: Duration{time.Minute}},
		Uploads:  Uploads{Dir: "uploads", BaseURL: "/uploads"},
	}

	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// ApplyDatabaseURL replaces the [Database] connection settings with the ones from a postgres URL.
// Pool settings from the file are kept.
func (c *Config) ApplyDatabaseURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}

	opt, err := pg.ParseURL(rawURL)
	if err != nil {
		return fmt.Errorf("parse database url: %w", err)
	}

	opt.MaxRetries = 3
	opt.PoolSize = c.Database.PoolSize
	opt.MaxConnAge = c.Database.MaxConnAge
	if c.Database.ApplicationName != "" {
		opt.ApplicationName = c.Database.ApplicationName
	}

	c.Database = *opt
	return nil
}
