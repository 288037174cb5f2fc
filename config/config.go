package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"trithemius-backend/crypto"
)

// LocalFile is the configuration file picked up from the working directory
// when no explicit path is given.
const LocalFile = "trithemius.yaml"

// Config captures the service configuration resolved from defaults, an
// optional YAML file, and environment overrides.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Cipher CipherConfig `yaml:"cipher" mapstructure:"cipher"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr         string   `yaml:"addr" mapstructure:"addr"`
	Port         int      `yaml:"port" mapstructure:"port"`
	Mode         string   `yaml:"mode" mapstructure:"mode"`
	AllowOrigins []string `yaml:"allow_origins" mapstructure:"allow_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// CipherConfig holds the defaults applied to every cipher call.
type CipherConfig struct {
	Shift   int    `yaml:"shift" mapstructure:"shift"`
	Padding string `yaml:"padding" mapstructure:"padding"`
	MaxText int    `yaml:"max_text" mapstructure:"max_text"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         "",
			Port:         8080,
			Mode:         "release",
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Cipher: CipherConfig{
			Shift:   crypto.DefaultShift,
			Padding: crypto.PaddingStrip.String(),
			MaxText: 1 << 16,
		},
	}
}

// envNames maps every config key to the environment variables that set it.
// When several are set the first one listed wins.
var envNames = map[string][]string{
	"server.addr":          {"TRITHEMIUS_ADDR"},
	"server.port":          {"TRITHEMIUS_PORT", "PORT"},
	"server.mode":          {"TRITHEMIUS_MODE"},
	"server.allow_origins": {"TRITHEMIUS_ALLOW_ORIGINS"},
	"log.level":            {"TRITHEMIUS_LOG_LEVEL"},
	"log.format":           {"TRITHEMIUS_LOG_FORMAT"},
	"cipher.shift":         {"TRITHEMIUS_SHIFT"},
	"cipher.padding":       {"TRITHEMIUS_PADDING"},
	"cipher.max_text":      {"TRITHEMIUS_MAX_TEXT"},
}

// Load resolves the configuration with a fresh viper instance.
func Load(path string) (Config, error) {
	return LoadViper(viper.New(), path)
}

// LoadViper resolves the configuration through v: flags bound on v first,
// then the environment, then the file at path (or ./trithemius.yaml when
// path is empty and the file exists), then Default.
func LoadViper(v *viper.Viper, path string) (Config, error) {
	setDefaults(v, Default())
	for key, names := range envNames {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := readFile(v, path); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Server.AllowOrigins = trimList(cfg.Server.AllowOrigins)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("server.mode", def.Server.Mode)
	v.SetDefault("server.allow_origins", def.Server.AllowOrigins)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("cipher.shift", def.Cipher.Shift)
	v.SetDefault("cipher.padding", def.Cipher.Padding)
	v.SetDefault("cipher.max_text", def.Cipher.MaxText)
}

func readFile(v *viper.Viper, path string) error {
	if path == "" {
		if _, err := os.Stat(LocalFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		path = LocalFile
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	for _, key := range v.AllKeys() {
		if _, known := envNames[key]; !known && v.InConfig(key) {
			return fmt.Errorf("parse config %s: unknown key %q", path, key)
		}
	}
	return nil
}

// Validate checks the resolved configuration.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if err := crypto.ValidateShift(c.Cipher.Shift); err != nil {
		return fmt.Errorf("cipher shift: %w", err)
	}
	if _, err := crypto.ParsePadding(c.Cipher.Padding); err != nil {
		return fmt.Errorf("cipher padding: %w", err)
	}
	if c.Cipher.MaxText < 1 {
		return fmt.Errorf("cipher max_text must be positive, got %d", c.Cipher.MaxText)
	}
	return nil
}

// ListenAddr is the host:port the HTTP server binds to.
func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Addr, c.Server.Port)
}

// SystemOptions converts the cipher section into crypto options.
func (c Config) SystemOptions() ([]crypto.Option, error) {
	padding, err := crypto.ParsePadding(c.Cipher.Padding)
	if err != nil {
		return nil, err
	}
	return []crypto.Option{
		crypto.WithShift(c.Cipher.Shift),
		crypto.WithPadding(padding),
	}, nil
}

// trimList drops blanks around list entries; a comma-separated environment
// value arrives as "a, b".
func trimList(list []string) []string {
	var out []string
	for _, part := range list {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
