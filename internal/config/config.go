// Package config resolves notemill settings from YAML file, environment,
// and CLI flags, tracking where each value came from.
//
// Precedence, lowest to highest: built-in default, config file, environment,
// CLI flag.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValueSource names where a resolved value came from.
type ValueSource string

const (
	SourceUnknown ValueSource = "unknown"
	SourceConfig  ValueSource = "config"
	SourceEnv     ValueSource = "env"
	SourceCLI     ValueSource = "cli"
	SourceDefault ValueSource = "default"
)

// ResolvedValue is a setting plus its provenance.
type ResolvedValue struct {
	Value  string      `json:"value"`
	Source ValueSource `json:"source"`
	From   string      `json:"from,omitempty"`
}

// Built-in defaults.
const (
	DefaultDBPath           = "~/.notemill/notemill.db"
	DefaultMaxCardsPerNote  = 20
	DefaultMinContentLength = 50
)

// ResolveOptions carries the CLI-level overrides into resolution.
type ResolveOptions struct {
	ConfigPath  string
	CLIDBPath   string
	CLIMaxCards int
}

// ResolvedConfig is the fully resolved settings set.
type ResolvedConfig struct {
	ConfigPath string `json:"config_path"`

	DBPath           ResolvedValue `json:"db_path"`
	MaxCardsPerNote  ResolvedValue `json:"max_cards_per_note"`
	MinContentLength ResolvedValue `json:"min_content_length"`
}

type fileConfig struct {
	DBPath string `yaml:"db_path"`
	Cards  struct {
		MaxPerNote       int `yaml:"max_per_note"`
		MinContentLength int `yaml:"min_content_length"`
	} `yaml:"cards"`
}

// DefaultConfigPath returns ~/.notemill/config.yaml.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".notemill", "config.yaml")
}

// ResolveConfig loads the config file (if present) and layers environment
// and CLI overrides on top. A missing file is not an error.
func ResolveConfig(opts ResolveOptions) (ResolvedConfig, error) {
	path := strings.TrimSpace(opts.ConfigPath)
	if path == "" {
		path = DefaultConfigPath()
	}

	out := ResolvedConfig{
		ConfigPath:       path,
		DBPath:           ResolvedValue{Value: DefaultDBPath, Source: SourceDefault, From: "built-in default"},
		MaxCardsPerNote:  ResolvedValue{Value: strconv.Itoa(DefaultMaxCardsPerNote), Source: SourceDefault, From: "built-in default"},
		MinContentLength: ResolvedValue{Value: strconv.Itoa(DefaultMinContentLength), Source: SourceDefault, From: "built-in default"},
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return out, err
	}

	if cfg != nil {
		apply(&out.DBPath, cfg.DBPath, SourceConfig, path)
		if cfg.Cards.MaxPerNote > 0 {
			apply(&out.MaxCardsPerNote, strconv.Itoa(cfg.Cards.MaxPerNote), SourceConfig, path)
		}
		if cfg.Cards.MinContentLength > 0 {
			apply(&out.MinContentLength, strconv.Itoa(cfg.Cards.MinContentLength), SourceConfig, path)
		}
	}

	applyEnv(&out.DBPath, "NOTEMILL_DB")
	applyEnv(&out.DBPath, "NOTEMILL_DB_PATH")
	applyEnv(&out.MaxCardsPerNote, "NOTEMILL_MAX_CARDS")
	applyEnv(&out.MinContentLength, "NOTEMILL_MIN_CONTENT")

	apply(&out.DBPath, opts.CLIDBPath, SourceCLI, "--db")
	if opts.CLIMaxCards > 0 {
		apply(&out.MaxCardsPerNote, strconv.Itoa(opts.CLIMaxCards), SourceCLI, "--max-cards")
	}

	out.DBPath.Value = expandUserPath(out.DBPath.Value)

	return out, nil
}

// MaxCards returns the resolved cap as an int, falling back to the default
// when the configured value does not parse.
func (r ResolvedConfig) MaxCards() int {
	return intValue(r.MaxCardsPerNote, DefaultMaxCardsPerNote)
}

// MinContent returns the resolved generation threshold as an int.
func (r ResolvedConfig) MinContent() int {
	return intValue(r.MinContentLength, DefaultMinContentLength)
}

func intValue(rv ResolvedValue, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(rv.Value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func apply(dst *ResolvedValue, raw string, source ValueSource, from string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	*dst = ResolvedValue{Value: v, Source: source, From: from}
}

func applyEnv(dst *ResolvedValue, envKey string) {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		*dst = ResolvedValue{Value: v, Source: SourceEnv, From: envKey}
	}
}

func loadConfig(path string) (*fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

func expandUserPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
