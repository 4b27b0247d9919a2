package assethashmap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-ini/ini"
)

// Config holds defaults read from an INI file
type Config struct {
	configPath string
	ini        *ini.File
}

// HashConfig represents hash algorithm configuration
type HashConfig struct {
	Default  string // Default hash algorithm
	Encoding string // utf8 or binary
}

// FilterConfig represents file selection configuration
type FilterConfig struct {
	Include []string
	Exclude []string
	All     bool
	Ignore  []string
}

// PathsConfig represents key computation configuration
type PathsConfig struct {
	Absolute bool
	Base     string
}

// PerformanceConfig represents performance-related configuration
type PerformanceConfig struct {
	HashWorkers int    // Number of concurrent hashes (0 = automatic)
	HashBuffer  string // Read buffer size per file (default: "64K")
}

// OutputConfig represents output format configuration
type OutputConfig struct {
	Format string // shasum or json
}

// VerboseConfig represents verbosity configuration
type VerboseConfig struct {
	Level int    // 0=quiet, 1=basic, 2=detailed, 3=trace
	Debug string // comma-separated debug flags
}

// AllConfig represents all configuration options
type AllConfig struct {
	Hash        *HashConfig
	Filter      *FilterConfig
	Paths       *PathsConfig
	Performance *PerformanceConfig
	Output      *OutputConfig
	Verbose     *VerboseConfig
}

// NewConfig returns a config with no file behind it; every getter yields its default
func NewConfig() *Config {
	return &Config{ini: ini.Empty()}
}

// LoadConfig loads configuration from an INI file. A missing file is not an
// error and gives the defaults; the file is never created.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{configPath: configPath}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg.ini = ini.Empty()
		return cfg, nil
	}

	iniFile, err := ini.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	cfg.ini = iniFile
	VerboseLog(2, "loaded config %s", configPath)
	return cfg, nil
}

// Path returns the file the config was loaded from, if any
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) stringValue(section, key, fallback string) string {
	if c.ini.HasSection(section) && c.ini.Section(section).HasKey(key) {
		return c.ini.Section(section).Key(key).String()
	}
	return fallback
}

func (c *Config) listValue(section, key string) []string {
	if !c.ini.HasSection(section) || !c.ini.Section(section).HasKey(key) {
		return nil
	}
	var out []string
	for _, item := range c.ini.Section(section).Key(key).Strings(",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *Config) boolValue(section, key string, fallback bool) bool {
	if c.ini.HasSection(section) && c.ini.Section(section).HasKey(key) {
		if v, err := c.ini.Section(section).Key(key).Bool(); err == nil {
			return v
		}
	}
	return fallback
}

func (c *Config) intValue(section, key string, fallback int) int {
	if c.ini.HasSection(section) && c.ini.Section(section).HasKey(key) {
		if v, err := c.ini.Section(section).Key(key).Int(); err == nil {
			return v
		}
	}
	return fallback
}

// GetHashConfig returns the hash configuration
func (c *Config) GetHashConfig() *HashConfig {
	return &HashConfig{
		Default:  c.stringValue("filehash", "default", DefaultHashAlgorithm),
		Encoding: c.stringValue("filehash", "encoding", DefaultEncoding),
	}
}

// GetFilterConfig returns the filter configuration
func (c *Config) GetFilterConfig() *FilterConfig {
	return &FilterConfig{
		Include: c.listValue("filter", "include"),
		Exclude: c.listValue("filter", "exclude"),
		All:     c.boolValue("filter", "all", false),
		Ignore:  c.listValue("filter", "ignore"),
	}
}

// GetPathsConfig returns the key computation configuration
func (c *Config) GetPathsConfig() *PathsConfig {
	return &PathsConfig{
		Absolute: c.boolValue("paths", "absolute", false),
		Base:     c.stringValue("paths", "base", ""),
	}
}

// GetPerformanceConfig returns the performance configuration
func (c *Config) GetPerformanceConfig() *PerformanceConfig {
	return &PerformanceConfig{
		HashWorkers: c.intValue("performance", "hash_workers", 0),
		HashBuffer:  c.stringValue("performance", "hash_buffer", "64K"),
	}
}

// GetOutputConfig returns the output configuration
func (c *Config) GetOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: c.stringValue("output", "format", FormatShasum),
	}
}

// GetVerboseConfig returns the verbose configuration
func (c *Config) GetVerboseConfig() *VerboseConfig {
	return &VerboseConfig{
		Level: c.intValue("verbose", "level", 0),
		Debug: c.stringValue("verbose", "debug", ""),
	}
}

// GetAllConfig returns all configuration options
func (c *Config) GetAllConfig() *AllConfig {
	return &AllConfig{
		Hash:        c.GetHashConfig(),
		Filter:      c.GetFilterConfig(),
		Paths:       c.GetPathsConfig(),
		Performance: c.GetPerformanceConfig(),
		Output:      c.GetOutputConfig(),
		Verbose:     c.GetVerboseConfig(),
	}
}

// overrideKeys maps override names to their section and key
var overrideKeys = map[string][2]string{
	"default":      {"filehash", "default"},
	"encoding":     {"filehash", "encoding"},
	"include":      {"filter", "include"},
	"exclude":      {"filter", "exclude"},
	"all":          {"filter", "all"},
	"ignore":       {"filter", "ignore"},
	"absolute":     {"paths", "absolute"},
	"base":         {"paths", "base"},
	"hash_workers": {"performance", "hash_workers"},
	"hash_buffer":  {"performance", "hash_buffer"},
	"format":       {"output", "format"},
	"level":        {"verbose", "level"},
	"debug":        {"verbose", "debug"},
}

// ApplyOverrides applies command-line overrides to the configuration
// Accepts strings like "default:sha256", "format:json", "level:2", "include:js,css"
func (c *Config) ApplyOverrides(overrides []string) error {
	for _, override := range overrides {
		parts := strings.SplitN(override, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid override format '%s', expected 'key:value'", override)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		target, ok := overrideKeys[key]
		if !ok {
			return fmt.Errorf("unsupported override key '%s'", key)
		}
		c.ini.Section(target[0]).Key(target[1]).SetValue(value)
	}

	return c.Validate()
}

// Validate checks every configured value
func (c *Config) Validate() error {
	all := c.GetAllConfig()

	if err := ValidateHashAlgorithm(all.Hash.Default); err != nil {
		return err
	}
	if err := ValidateEncoding(all.Hash.Encoding); err != nil {
		return err
	}
	if _, err := NewIgnoreMatcher(all.Filter.Ignore); err != nil {
		return err
	}
	if err := ValidateHashWorkers(all.Performance.HashWorkers); err != nil {
		return err
	}
	if _, err := ParseHumanSize(all.Performance.HashBuffer); err != nil {
		return fmt.Errorf("invalid hash_buffer: %w", err)
	}
	if err := ValidateOutputFormat(all.Output.Format); err != nil {
		return err
	}
	return ValidateVerboseLevel(all.Verbose.Level)
}

// Options builds GetHashesMap options from the configuration
func (c *Config) Options() (*Options, error) {
	all := c.GetAllConfig()

	bufSize, err := ParseHumanSize(all.Performance.HashBuffer)
	if err != nil {
		return nil, fmt.Errorf("invalid hash_buffer: %w", err)
	}

	return &Options{
		Include:    all.Filter.Include,
		Exclude:    all.Filter.Exclude,
		Absolute:   all.Paths.Absolute,
		BasePath:   all.Paths.Base,
		All:        all.Filter.All,
		Algorithm:  all.Hash.Default,
		Encoding:   all.Hash.Encoding,
		Workers:    all.Performance.HashWorkers,
		BufferSize: bufSize,
		Ignore:     all.Filter.Ignore,
	}, nil
}

// GetHashesMapWithConfig runs GetHashesMap with options taken from cfg
func GetHashesMapWithConfig(ctx context.Context, root string, cfg *Config) (HashMap, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return GetHashesMap(ctx, root, opts)
}

// ValidateVerboseLevel validates that a verbose level is valid
func ValidateVerboseLevel(level int) error {
	if level < 0 || level > 3 {
		return fmt.Errorf("invalid verbose level: %d (supported: 0-3)", level)
	}
	return nil
}

// ValidateHashWorkers validates the worker count; 0 is automatic, -1 unbounded
func ValidateHashWorkers(workers int) error {
	if workers < -1 {
		return fmt.Errorf("hash workers must be -1, 0 or positive, got: %d", workers)
	}
	if workers > MaxHashWorkers {
		return fmt.Errorf("hash workers should not exceed %d, got: %d", MaxHashWorkers, workers)
	}
	return nil
}
