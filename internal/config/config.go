// Package config loads the configuration of the mailparse command: defaults,
// then an optional YAML file, then environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zostay/go-mailparse"
)

// defaultMaxDepth matches tree.DefaultMaxDepth.
const defaultMaxDepth = 10

// Config holds the complete command configuration.
type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Glue    GlueConfig    `yaml:"glue"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig configures the message parser.
type ParserConfig struct {
	// MaxDepth is how deep to descend into nested parts. A negative value
	// means no limit.
	MaxDepth int `yaml:"max_depth"`

	// AddressFields are collected along with To, From, Cc and Bcc.
	AddressFields []string `yaml:"address_fields"`
}

// GlueConfig holds the text placed between joined content parts.
type GlueConfig struct {
	HTML string `yaml:"html"`
	Text string `yaml:"text"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load returns the defaults overridden by environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvVars()
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults,
// then overrides with environment variables. Returns an error if the file
// cannot be read or parsed.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvVars()

	return cfg, nil
}

// LogLevel returns the slog level named by Logging.Level. Unknown names are
// treated as "warn".
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Options returns the parser options described by the configuration.
func (c *Config) Options() []mailparse.Option {
	opts := []mailparse.Option{mailparse.WithMaxDepth(c.Parser.MaxDepth)}
	if c.Parser.MaxDepth < 0 {
		opts = []mailparse.Option{mailparse.WithUnlimitedRecursion()}
	}
	if len(c.Parser.AddressFields) > 0 {
		opts = append(opts, mailparse.WithAddressFields(c.Parser.AddressFields...))
	}
	return opts
}

// GlueFunc returns the glue used to join content parts.
func (c *Config) GlueFunc() mailparse.Glue {
	html, text := c.Glue.HTML, c.Glue.Text
	return func(mediaType string) string {
		if mediaType == mailparse.MediaTypeHTML {
			return html
		}
		return text
	}
}

// applyDefaults sets the default value of every field.
func (c *Config) applyDefaults() {
	c.Parser.MaxDepth = defaultMaxDepth
	c.Glue.HTML = "<hr />"
	c.Glue.Text = "\n\n"
	c.Logging.Level = "warn"
}

// applyEnvVars overrides configuration with environment variable values.
// Only non-empty environment variables override existing values.
func (c *Config) applyEnvVars() {
	if v := os.Getenv("MAILPARSE_MAX_DEPTH"); v != "" {
		if depth, err := strconv.Atoi(v); err == nil {
			c.Parser.MaxDepth = depth
		}
	}
	if v := os.Getenv("MAILPARSE_ADDRESS_FIELDS"); v != "" {
		c.Parser.AddressFields = splitList(v)
	}
	if v := os.Getenv("MAILPARSE_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
