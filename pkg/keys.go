package assethashmap

import (
	"fmt"
	"path/filepath"
)

// keyer turns traversal entries into result keys
type keyer struct {
	absolute bool
	base     string // absolute directory relative keys are computed against
}

func newKeyer(absRoot string, rootIsDir bool, opts *Options) (*keyer, error) {
	k := &keyer{absolute: opts != nil && opts.Absolute}

	switch {
	case opts != nil && opts.BasePath != "":
		base, err := filepath.Abs(opts.BasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve base path %s: %w", opts.BasePath, err)
		}
		k.base = base
	case rootIsDir:
		k.base = absRoot
	default:
		// A single file is keyed by its own name
		k.base = filepath.Dir(absRoot)
	}
	return k, nil
}

// key returns the map key for a file at the absolute path
func (k *keyer) key(absPath string) (string, error) {
	if k.absolute {
		return absPath, nil
	}
	rel, err := filepath.Rel(k.base, absPath)
	if err != nil {
		return "", fmt.Errorf("failed to make %s relative to %s: %w", absPath, k.base, err)
	}
	return filepath.ToSlash(rel), nil
}
