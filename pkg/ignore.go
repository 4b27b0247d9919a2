package assethashmap

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// IgnoreMatcher holds regular expressions matched against root-relative paths.
// A matching directory is not descended into.
type IgnoreMatcher struct {
	patterns []*regexp.Regexp
}

// NewIgnoreMatcher compiles the given patterns
func NewIgnoreMatcher(patterns []string) (*IgnoreMatcher, error) {
	im := &IgnoreMatcher{}
	for _, line := range patterns {
		if err := im.add(line); err != nil {
			return nil, err
		}
	}
	return im, nil
}

func (im *IgnoreMatcher) add(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	pattern, err := regexp.Compile(line)
	if err != nil {
		return fmt.Errorf("invalid ignore pattern %q: %w", line, err)
	}
	im.patterns = append(im.patterns, pattern)
	return nil
}

// ReadIgnoreFile returns the patterns in an ignore file, one regular
// expression per line. Empty lines and lines starting with # are skipped.
func ReadIgnoreFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ignore file: %w", err)
	}
	defer file.Close()

	var patterns []string
	check := &IgnoreMatcher{}
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if err := check.add(line); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNum, err)
		}
		if line != "" && !strings.HasPrefix(line, "#") {
			patterns = append(patterns, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ignore file: %w", err)
	}
	return patterns, nil
}

// Len returns the number of compiled patterns
func (im *IgnoreMatcher) Len() int {
	if im == nil {
		return 0
	}
	return len(im.patterns)
}

// ShouldIgnore checks if a root-relative path matches any pattern
func (im *IgnoreMatcher) ShouldIgnore(relativePath string) bool {
	if im.Len() == 0 {
		return false
	}

	// Patterns are written with forward slashes on every platform
	normalisedPath := filepath.ToSlash(relativePath)
	for _, pattern := range im.patterns {
		if pattern.MatchString(normalisedPath) {
			return true
		}
	}
	return false
}
