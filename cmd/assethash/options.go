package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	assethashmap "github.com/mattkeenan/assethashmap/pkg"
)

// cliOptions holds the raw flag values of one invocation
type cliOptions struct {
	include    []string
	exclude    []string
	ignore     []string
	ignoreFile string
	absolute   bool
	basePath   string
	all        bool
	algorithm  string
	encoding   string
	workers    int
	buffer     string
	format     string
	output     string
	dupes      bool
	configPath string
	overrides  []string
	verbose    int
	debug      string
}

func (o *cliOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVarP(&o.include, "include", "i", nil, "Only hash these extensions (repeatable or comma-separated)")
	flags.StringSliceVarP(&o.exclude, "exclude", "e", nil, "Skip these extensions (repeatable or comma-separated)")
	flags.StringArrayVar(&o.ignore, "ignore", nil, "Regular expression for root-relative paths to skip (repeatable)")
	flags.StringVar(&o.ignoreFile, "ignore-file", "", "File of ignore patterns, one per line")
	flags.BoolVarP(&o.absolute, "absolute", "a", false, "Use absolute paths as keys")
	flags.StringVar(&o.basePath, "base", "", "Directory relative keys are computed against (default: PATH)")
	flags.BoolVar(&o.all, "all", false, "Include files whose name starts with a dot")
	flags.StringVar(&o.algorithm, "algorithm", assethashmap.DefaultHashAlgorithm, "Hash algorithm")
	flags.StringVar(&o.encoding, "encoding", assethashmap.DefaultEncoding, "Content encoding: utf8 or binary")
	flags.IntVar(&o.workers, "workers", 0, "Concurrent hashes (0 = automatic, -1 = unbounded)")
	flags.StringVar(&o.buffer, "buffer", "64K", "Read buffer size per file")
	flags.StringVar(&o.format, "format", assethashmap.FormatShasum, "Output format: shasum or json")
	flags.StringVarP(&o.output, "output", "o", "", "Write output to file instead of stdout")
	flags.BoolVar(&o.dupes, "dupes", false, "Print groups of files with identical content")
	flags.StringVar(&o.configPath, "config", "", "INI config file (default: ./"+assethashmap.ConfigFileName+" if present)")
	flags.StringArrayVar(&o.overrides, "set", nil, "Config override key:value (repeatable)")
	flags.CountVarP(&o.verbose, "verbose", "v", "Increase verbosity (repeatable)")
	flags.StringVar(&o.debug, "debug", "", "Debug flags: walk,filter,hash")
}

// loadConfig reads the config file and applies --set overrides
func (o *cliOptions) loadConfig() (*assethashmap.Config, error) {
	path := o.configPath
	if path == "" {
		if _, err := os.Stat(assethashmap.ConfigFileName); err != nil {
			cfg := assethashmap.NewConfig()
			return cfg, cfg.ApplyOverrides(o.overrides)
		}
		path = assethashmap.ConfigFileName
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	cfg, err := assethashmap.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyOverrides(o.overrides); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve merges config values with flags; a flag given on the command line wins
func (o *cliOptions) resolve(cmd *cobra.Command, cfg *assethashmap.Config) (*assethashmap.Options, *assethashmap.OutputConfig, *assethashmap.VerboseConfig, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, nil, err
	}
	output := cfg.GetOutputConfig()
	verbose := cfg.GetVerboseConfig()

	changed := cmd.Flags().Changed
	if changed("include") {
		opts.Include = o.include
	}
	if changed("exclude") {
		opts.Exclude = o.exclude
	}
	if changed("ignore") {
		opts.Ignore = append(opts.Ignore, o.ignore...)
	}
	if o.ignoreFile != "" {
		patterns, err := assethashmap.ReadIgnoreFile(o.ignoreFile)
		if err != nil {
			return nil, nil, nil, err
		}
		opts.Ignore = append(opts.Ignore, patterns...)
	}
	if changed("absolute") {
		opts.Absolute = o.absolute
	}
	if changed("base") {
		opts.BasePath = o.basePath
	}
	if changed("all") {
		opts.All = o.all
	}
	if changed("algorithm") {
		opts.Algorithm = o.algorithm
	}
	if changed("encoding") {
		opts.Encoding = o.encoding
	}
	if changed("workers") {
		if err := assethashmap.ValidateHashWorkers(o.workers); err != nil {
			return nil, nil, nil, err
		}
		opts.Workers = o.workers
	}
	if changed("buffer") {
		size, err := assethashmap.ParseHumanSize(o.buffer)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid --buffer: %w", err)
		}
		opts.BufferSize = size
	}
	if changed("format") {
		if err := assethashmap.ValidateOutputFormat(o.format); err != nil {
			return nil, nil, nil, err
		}
		output.Format = o.format
	}
	if changed("verbose") {
		verbose.Level = o.verbose
	}
	if changed("debug") {
		verbose.Debug = o.debug
	}

	return opts, output, verbose, nil
}
