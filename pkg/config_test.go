package assethashmap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ConfigFileName)

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	allConfig := config.GetAllConfig()
	if allConfig.Hash.Default != DefaultHashAlgorithm {
		t.Errorf("Expected default hash algorithm '%s', got '%s'", DefaultHashAlgorithm, allConfig.Hash.Default)
	}
	if allConfig.Hash.Encoding != EncodingUTF8 {
		t.Errorf("Expected default encoding '%s', got '%s'", EncodingUTF8, allConfig.Hash.Encoding)
	}
	if allConfig.Output.Format != FormatShasum {
		t.Errorf("Expected default format '%s', got '%s'", FormatShasum, allConfig.Output.Format)
	}
	if allConfig.Performance.HashWorkers != 0 {
		t.Errorf("Expected automatic hash workers, got %d", allConfig.Performance.HashWorkers)
	}
	if allConfig.Filter.Include != nil || allConfig.Filter.Exclude != nil {
		t.Errorf("Expected no extension filters, got %v / %v", allConfig.Filter.Include, allConfig.Filter.Exclude)
	}

	// A missing config is never created
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("Config file should not be created")
	}
}

func TestConfigLoadFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ConfigFileName)
	content := `[filehash]
default = sha256
encoding = binary

[filter]
include = js, css
all = true
ignore = ^node_modules$

[paths]
absolute = true
base = /srv/www

[performance]
hash_workers = 8
hash_buffer = 1M

[output]
format = json

[verbose]
level = 2
debug = walk,hash
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(); err != nil {
		t.Fatalf("Config should validate: %v", err)
	}
	if config.Path() != configPath {
		t.Errorf("Expected path %s, got %s", configPath, config.Path())
	}

	opts, err := config.Options()
	if err != nil {
		t.Fatalf("Failed to build options: %v", err)
	}

	if opts.Algorithm != "sha256" || opts.Encoding != "binary" {
		t.Errorf("Unexpected hash settings: %s / %s", opts.Algorithm, opts.Encoding)
	}
	if len(opts.Include) != 2 || opts.Include[0] != "js" || opts.Include[1] != "css" {
		t.Errorf("Expected include [js css], got %v", opts.Include)
	}
	if !opts.All || !opts.Absolute || opts.BasePath != "/srv/www" {
		t.Errorf("Unexpected filter/path settings: %+v", opts)
	}
	if len(opts.Ignore) != 1 || opts.Ignore[0] != "^node_modules$" {
		t.Errorf("Expected one ignore pattern, got %v", opts.Ignore)
	}
	if opts.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", opts.Workers)
	}
	if opts.BufferSize != 1024*1024 {
		t.Errorf("Expected 1M buffer, got %d", opts.BufferSize)
	}

	verbose := config.GetVerboseConfig()
	if verbose.Level != 2 || verbose.Debug != "walk,hash" {
		t.Errorf("Unexpected verbose config: %+v", verbose)
	}
	if config.GetOutputConfig().Format != "json" {
		t.Errorf("Expected json format, got %s", config.GetOutputConfig().Format)
	}
}

func TestConfigOverrides(t *testing.T) {
	config := NewConfig()

	err := config.ApplyOverrides([]string{
		"default:blake3",
		"format:json",
		"level:2",
		"debug:walk,filter",
		"exclude:png,jpg",
		"hash_workers:-1",
	})
	if err != nil {
		t.Fatalf("Failed to apply overrides: %v", err)
	}

	allConfig := config.GetAllConfig()
	if allConfig.Hash.Default != "blake3" {
		t.Errorf("Expected hash algorithm 'blake3' after override, got '%s'", allConfig.Hash.Default)
	}
	if allConfig.Output.Format != "json" {
		t.Errorf("Expected output format 'json' after override, got '%s'", allConfig.Output.Format)
	}
	if allConfig.Verbose.Level != 2 {
		t.Errorf("Expected verbose level 2 after override, got %d", allConfig.Verbose.Level)
	}
	if allConfig.Verbose.Debug != "walk,filter" {
		t.Errorf("Expected debug flags 'walk,filter' after override, got '%s'", allConfig.Verbose.Debug)
	}
	if len(allConfig.Filter.Exclude) != 2 {
		t.Errorf("Expected two excluded extensions, got %v", allConfig.Filter.Exclude)
	}
	if allConfig.Performance.HashWorkers != -1 {
		t.Errorf("Expected unbounded workers, got %d", allConfig.Performance.HashWorkers)
	}
}

func TestConfigInvalidOverrides(t *testing.T) {
	testCases := []string{
		"nocolon",
		"unknown:value",
		"default:crc99",
		"encoding:latin1",
		"format:xml",
		"level:7",
		"hash_workers:1000",
		"hash_buffer:12Q",
		"ignore:(",
	}

	for _, override := range testCases {
		config := NewConfig()
		if err := config.ApplyOverrides([]string{override}); err == nil {
			t.Errorf("Expected error for override %q", override)
		}
	}
}

func TestGetHashesMapWithConfig(t *testing.T) {
	root := t.TempDir()
	createTree(t, root, map[string]string{
		"a.js":  "a",
		"b.css": "b",
	})

	config := NewConfig()
	if err := config.ApplyOverrides([]string{"include:css", "default:sha256"}); err != nil {
		t.Fatalf("Failed to apply overrides: %v", err)
	}

	hashes, err := GetHashesMapWithConfig(context.Background(), root, config)
	if err != nil {
		t.Fatalf("GetHashesMapWithConfig failed: %v", err)
	}
	if len(hashes) != 1 {
		t.Fatalf("Expected one entry, got %v", hashes)
	}
	if got := hashes["b.css"]; len(got) != 64 {
		t.Errorf("Expected a sha256 digest for b.css, got %q", got)
	}
}

func TestValidateHashWorkers(t *testing.T) {
	testCases := []struct {
		workers int
		valid   bool
	}{
		{-2, false},
		{-1, true},
		{0, true},
		{4, true},
		{MaxHashWorkers, true},
		{MaxHashWorkers + 1, false},
	}

	for _, tc := range testCases {
		err := ValidateHashWorkers(tc.workers)
		if tc.valid && err != nil {
			t.Errorf("ValidateHashWorkers(%d) unexpected error: %v", tc.workers, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("ValidateHashWorkers(%d) expected error", tc.workers)
		}
	}
}
