package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	assethashmap "github.com/mattkeenan/assethashmap/pkg"
)

var (
	// Version information - set at build time
	Version = "dev"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "assethash: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:     "assethash [flags] PATH",
		Short:   "Map every file under a directory to a digest of its content",
		Version: Version,
		Long: `assethash walks PATH recursively and prints one digest per file.

Files whose name starts with a dot are skipped unless --all is given.
Keys are relative to PATH (or --base) unless --absolute is given.
Content is decoded as UTF-8 before hashing; the default SHA-1 digest
matches shasum for UTF-8 files.`,
		Example: `  # shasum-style listing of a build directory
  assethash dist

  # JSON map of scripts and stylesheets, keyed from the project root
  assethash --include js,css --base . --format json public

  # Find identical files, ignoring VCS metadata
  assethash --dupes --ignore '^\.git$' .`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	opts.bindFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, cli *cliOptions, root string) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}
	opts, output, verbose, err := cli.resolve(cmd, cfg)
	if err != nil {
		return err
	}
	if verbose.Level > 3 {
		verbose.Level = 3
	}
	assethashmap.InitLogging(verbose.Level, verbose.Debug)

	ctx, cancel := setupSignalContext(context.Background())
	defer cancel()

	hashes, err := assethashmap.GetHashesMap(ctx, root, opts)
	if err != nil {
		return err
	}
	assethashmap.VerboseLog(1, "hashed %d files", len(hashes))

	out, closeOut, err := openOutput(cli.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOut()

	if cli.dupes {
		return writeDuplicates(out, assethashmap.FindDuplicates(hashes), output.Format)
	}

	algorithm, err := assethashmap.GetHashAlgorithm(opts.Algorithm)
	if err != nil {
		return err
	}
	manifest := assethashmap.NewManifest(hashes, algorithm.Name)

	if file, ok := out.(*os.File); ok {
		return manifest.WriteFile(file, output.Format)
	}
	if strings.EqualFold(output.Format, assethashmap.FormatJSON) {
		return manifest.WriteJSON(out)
	}
	_, err = manifest.WriteTo(out)
	return err
}

// openOutput returns the output file, or fallback when path is empty or "-"
func openOutput(path string, fallback io.Writer) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return fallback, func() {}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, func() { file.Close() }, nil
}

// writeDuplicates prints each group as a coloured digest line followed by its files
func writeDuplicates(w io.Writer, groups []assethashmap.DuplicateGroup, format string) error {
	if strings.EqualFold(format, assethashmap.FormatJSON) {
		if groups == nil {
			groups = []assethashmap.DuplicateGroup{}
		}
		data, err := json.MarshalIndent(groups, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode duplicates: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	hashColor := color.New(color.FgYellow, color.Bold)
	for _, group := range groups {
		hashColor.Fprintf(w, "%s (%d files)\n", group.Hash, group.Count)
		for _, file := range group.Files {
			if _, err := fmt.Fprintf(w, "  %s\n", file); err != nil {
				return err
			}
		}
	}
	return nil
}
