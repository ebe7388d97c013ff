package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration of the site.
type Config struct {
	Port         string        `yaml:"port"`
	GinMode      string        `yaml:"gin_mode"`
	LogLevel     string        `yaml:"log_level"`
	DatabasePath string        `yaml:"database_path"`
	ContentDir   string        `yaml:"content_dir"`
	StaticDir    string        `yaml:"static_dir"`
	Panel        PanelConfig   `yaml:"panel"`
	SMTP         SMTPConfig    `yaml:"smtp"`
	Admin        AdminConfig   `yaml:"admin"`
	Shutdown     time.Duration `yaml:"shutdown_timeout"`
}

// PanelConfig controls detail panel timing and session bookkeeping.
type PanelConfig struct {
	CloseDelay    time.Duration `yaml:"close_delay"`
	SessionIdle   time.Duration `yaml:"session_idle_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// SMTPConfig holds contact form delivery settings.
type SMTPConfig struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	User    string `yaml:"user"`
	Pass    string `yaml:"pass"`
	ToEmail string `yaml:"to_email"`
}

// AdminConfig holds the dashboard credentials.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Default returns the development defaults.
func Default() Config {
	return Config{
		Port:         "8080",
		GinMode:      "release",
		LogLevel:     "info",
		DatabasePath: "portfolio.db",
		StaticDir:    "static",
		Panel: PanelConfig{
			CloseDelay:    300 * time.Millisecond,
			SessionIdle:   30 * time.Minute,
			SweepInterval: 5 * time.Minute,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
		Shutdown: 10 * time.Second,
	}
}

// Load reads the optional YAML file at path and applies environment
// overrides on top. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.GinMode, "GIN_MODE")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.DatabasePath, "DATABASE_PATH")
	setString(&c.ContentDir, "CONTENT_DIR")
	setString(&c.StaticDir, "STATIC_DIR")
	setString(&c.SMTP.Host, "SMTP_HOST")
	setString(&c.SMTP.Port, "SMTP_PORT")
	setString(&c.SMTP.User, "SMTP_USER")
	setString(&c.SMTP.Pass, "SMTP_PASS")
	setString(&c.SMTP.ToEmail, "TO_EMAIL")
	setString(&c.Admin.Username, "ADMIN_USERNAME")
	setString(&c.Admin.Password, "ADMIN_PASSWORD")
	if err := setDuration(&c.Panel.CloseDelay, "PANEL_CLOSE_DELAY"); err != nil {
		return err
	}
	if err := setDuration(&c.Panel.SessionIdle, "SESSION_IDLE_TTL"); err != nil {
		return err
	}
	return setDuration(&c.Shutdown, "SHUTDOWN_TIMEOUT")
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return errors.Errorf("invalid port %q", c.Port)
	}
	if c.Panel.CloseDelay <= 0 {
		return errors.New("panel.close_delay must be positive")
	}
	if c.Panel.SessionIdle <= 0 || c.Panel.SweepInterval <= 0 {
		return errors.New("panel session_idle_ttl and sweep_interval must be positive")
	}
	if c.Shutdown <= 0 {
		return errors.New("shutdown_timeout must be positive")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return errors.Errorf("invalid gin_mode %q", c.GinMode)
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string { return ":" + c.Port }

// SMTPConfigured reports whether contact mail can be delivered.
func (c Config) SMTPConfigured() bool { return c.SMTP.User != "" && c.SMTP.Pass != "" }

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return errors.Wrapf(err, "parse %s", key)
	}
	*dst = d
	return nil
}
