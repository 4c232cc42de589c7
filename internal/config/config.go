package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/morozRed/powerdex/internal/fileutil"
	"github.com/morozRed/powerdex/internal/graph"
	"go.uber.org/zap/zapcore"
)

const (
	StylePretty  = "pretty"
	StyleCompact = "compact"

	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// DefaultFiles are looked up, in order, when no config path is given.
var DefaultFiles = []string{"powerdex.yaml", "powerdex.yml", "powerdex.json", "powerdex.hcl"}

// Config holds all settings for an extraction run.
// Values come from a YAML, JSON or HCL file; environment variables override
// them and CLI flags override both.
type Config struct {
	// InputPath is the directory holding the table dumps.
	InputPath string `yaml:"input_path" json:"input_path" hcl:"input_path,optional" env:"POWERDEX_INPUT_PATH" env-default:"."`
	// OutputPath is where documents are written.
	OutputPath string `yaml:"output_path" json:"output_path" hcl:"output_path,optional" env:"POWERDEX_OUTPUT_PATH" env-default:"output"`

	// PowerCategories is the top level allow-list. Empty keeps every category.
	PowerCategories []string `yaml:"power_categories" json:"power_categories" hcl:"power_categories,optional" env:"POWERDEX_POWER_CATEGORIES" env-separator:","`
	// FilterPowerSets holds glob rules for sets dropped before linking.
	FilterPowerSets []string `yaml:"filter_powersets" json:"filter_powersets" hcl:"filter_powersets,optional" env:"POWERDEX_FILTER_POWERSETS" env-separator:","`
	// GlobalCategories are shared by every archetype (e.g. "Pool").
	GlobalCategories []string `yaml:"global_categories" json:"global_categories" hcl:"global_categories,optional" env:"POWERDEX_GLOBAL_CATEGORIES" env-separator:","`

	OutputStyle  string `yaml:"output_style" json:"output_style" hcl:"output_style,optional" env:"POWERDEX_OUTPUT_STYLE" env-default:"pretty"`
	OutputFormat string `yaml:"output_format" json:"output_format" hcl:"output_format,optional" env:"POWERDEX_OUTPUT_FORMAT" env-default:"json"`

	// Issue and Source are stamped into every document header.
	Issue       string `yaml:"issue" json:"issue" hcl:"issue,optional" env:"POWERDEX_ISSUE"`
	Source      string `yaml:"source" json:"source" hcl:"source,optional" env:"POWERDEX_SOURCE"`
	BaseJSONURL string `yaml:"base_json_url" json:"base_json_url" hcl:"base_json_url,optional" env:"POWERDEX_BASE_JSON_URL" env-default:""`

	LogLevel string `yaml:"log_level" json:"log_level" hcl:"log_level,optional" env:"POWERDEX_LOG_LEVEL" env-default:"info"`

	// Assets turns icon names into asset URLs. Nil writes icon names as read.
	Assets *AssetsConfig `yaml:"assets" json:"assets" hcl:"assets,block"`
}

// AssetsConfig describes where converted icons are hosted. The formats are
// URL paths under BaseURL; {icon} is the lower cased icon file name with Ext
// and {md5} the first byte of that name's MD5 digest in hex.
type AssetsConfig struct {
	BaseURL             string `yaml:"base_asset_url" json:"base_asset_url" hcl:"base_asset_url,optional" env:"POWERDEX_ASSETS_BASE_URL"`
	Ext                 string `yaml:"ext" json:"ext" hcl:"ext,optional" env:"POWERDEX_ASSETS_EXT"`
	ArchetypeIconFormat string `yaml:"archetype_icon_format" json:"archetype_icon_format" hcl:"archetype_icon_format,optional" env:"POWERDEX_ASSETS_ARCHETYPE_ICON_FORMAT"`
	PowersIconFormat    string `yaml:"powers_icon_format" json:"powers_icon_format" hcl:"powers_icon_format,optional" env:"POWERDEX_ASSETS_POWERS_ICON_FORMAT"`
}

const defaultIconFormat = "{icon}"

// Load reads the config file at path with environment variable overrides.
// An empty path reads defaults and the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	switch {
	case path == "":
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	case strings.EqualFold(filepath.Ext(path), ".hcl"):
		if err := readHCL(path, cfg); err != nil {
			return nil, err
		}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	if err := readAssetsEnv(cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// readAssetsEnv applies POWERDEX_ASSETS_* on top of the assets block.
// cleanenv does not descend into pointer fields, so the block is read on
// its own and kept only when something set it.
func readAssetsEnv(cfg *Config) error {
	assets := cfg.Assets
	if assets == nil {
		assets = &AssetsConfig{}
	}
	if err := cleanenv.ReadEnv(assets); err != nil {
		return fmt.Errorf("failed to read assets environment: %w", err)
	}
	if *assets != (AssetsConfig{}) {
		cfg.Assets = assets
	}
	return nil
}

// Find returns the first default config file present in dir.
func Find(dir string) (string, bool) {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func readHCL(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	return nil
}

// Normalize lowercases enumerated settings and drops blank list entries.
// Category lists are deduplicated; filter rules keep their order and repeats.
func (c *Config) Normalize() {
	c.OutputStyle = strings.ToLower(strings.TrimSpace(c.OutputStyle))
	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.PowerCategories = fileutil.DedupeStrings(trimAll(c.PowerCategories))
	c.FilterPowerSets = trimAll(c.FilterPowerSets)
	c.GlobalCategories = fileutil.DedupeStrings(trimAll(c.GlobalCategories))
	if c.Assets != nil {
		c.Assets.BaseURL = strings.TrimSpace(c.Assets.BaseURL)
		c.Assets.Ext = strings.TrimSpace(c.Assets.Ext)
		if c.Assets.Ext != "" && !strings.HasPrefix(c.Assets.Ext, ".") {
			c.Assets.Ext = "." + c.Assets.Ext
		}
		if strings.TrimSpace(c.Assets.ArchetypeIconFormat) == "" {
			c.Assets.ArchetypeIconFormat = defaultIconFormat
		}
		if strings.TrimSpace(c.Assets.PowersIconFormat) == "" {
			c.Assets.PowersIconFormat = defaultIconFormat
		}
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.InputPath) == "" {
		errs = append(errs, errors.New("input_path must be set"))
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		errs = append(errs, errors.New("output_path must be set"))
	}
	switch c.OutputStyle {
	case StylePretty, StyleCompact:
	default:
		errs = append(errs, fmt.Errorf("output_style must be %q or %q, got %q", StylePretty, StyleCompact, c.OutputStyle))
	}
	switch c.OutputFormat {
	case FormatJSON, FormatJSONL:
	default:
		errs = append(errs, fmt.Errorf("output_format must be %q or %q, got %q", FormatJSON, FormatJSONL, c.OutputFormat))
	}
	if c.Assets != nil && c.Assets.BaseURL == "" {
		errs = append(errs, errors.New("assets.base_asset_url must be set when assets are configured"))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// GraphOptions returns the inclusion policy for graph.Build.
func (c *Config) GraphOptions() graph.Options {
	return graph.Options{
		TopLevelCategories: c.PowerCategories,
		FilterPowerSets:    c.FilterPowerSets,
		GlobalCategories:   c.GlobalCategories,
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
