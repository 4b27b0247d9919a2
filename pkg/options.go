package assethashmap

import "fmt"

// Options configures one GetHashesMap call. The zero value hashes every
// non-hidden file with SHA-1 over its UTF-8 decoded content, keyed by the
// path relative to the root.
type Options struct {
	Include  []string // only hash these extensions (no leading dot)
	Exclude  []string // never hash these extensions
	Absolute bool     // key by absolute path
	BasePath string   // relative keys are computed against this, default is the root
	All      bool     // include files whose name starts with a dot

	Algorithm  string   // hash algorithm name, default sha1
	Encoding   string   // utf8 (default) or binary
	Workers    int      // concurrent hashes: 0 picks a default, negative is unbounded
	BufferSize int      // read buffer per file, 0 for DefaultBufferSize
	Ignore     []string // regular expressions matched against root-relative paths
}

// resolvedOptions holds everything derived from Options before any I/O
type resolvedOptions struct {
	filter    *Filter
	ignore    *IgnoreMatcher
	algorithm *HashAlgorithm
	encoding  string
	workers   int
	bufSize   int
}

func (o *Options) resolve() (*resolvedOptions, error) {
	if o == nil {
		o = &Options{}
	}

	algorithm, err := GetHashAlgorithm(o.Algorithm)
	if err != nil {
		return nil, err
	}
	if err := ValidateEncoding(o.Encoding); err != nil {
		return nil, err
	}
	ignore, err := NewIgnoreMatcher(o.Ignore)
	if err != nil {
		return nil, err
	}
	if o.BufferSize < 0 {
		return nil, fmt.Errorf("buffer size must not be negative, got: %d", o.BufferSize)
	}

	workers := o.Workers
	switch {
	case workers == 0:
		workers = defaultHashWorkers()
	case workers < 0:
		workers = -1
	}

	return &resolvedOptions{
		filter:    NewFilter(o.Include, o.Exclude, o.All),
		ignore:    ignore,
		algorithm: algorithm,
		encoding:  o.Encoding,
		workers:   workers,
		bufSize:   o.BufferSize,
	}, nil
}
