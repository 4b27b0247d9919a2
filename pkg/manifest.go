package assethashmap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"syscall"

	"github.com/google/vectorio"
)

// Manifest is a key-ordered view of a HashMap
type Manifest struct {
	Algorithm string
	entries   *skiplistWrapper
}

// NewManifest sorts m into a manifest. Entries whose digest is shared with
// another key are stored under DuplicateContext.
func NewManifest(m HashMap, algorithm string) *Manifest {
	counts := make(map[string]int, len(m))
	for _, hash := range m {
		counts[hash]++
	}

	entries := newSkiplistWrapper(16)
	for key, hash := range m {
		context := UniqueContext
		if counts[hash] > 1 {
			context = DuplicateContext
		}
		entries.Insert(manifestEntry{Key: key, Hash: hash}, context)
	}

	return &Manifest{Algorithm: algorithm, entries: entries}
}

// Len returns the number of entries
func (m *Manifest) Len() int {
	return m.entries.Length()
}

// Get returns the digest stored for key
func (m *Manifest) Get(key string) (string, bool) {
	entry, _ := m.entries.Find(key)
	if entry == nil {
		return "", false
	}
	return entry.Hash, true
}

// IsDuplicate reports whether key's digest is shared with another key
func (m *Manifest) IsDuplicate(key string) bool {
	entry, context := m.entries.Find(key)
	return entry != nil && context == DuplicateContext
}

// ForEach calls fn for every entry in key order until fn returns false
func (m *Manifest) ForEach(fn func(key, hash string) bool) {
	m.entries.ForEach(func(entry *manifestEntry, _ string) bool {
		return fn(entry.Key, entry.Hash)
	})
}

// Keys returns the keys in order
func (m *Manifest) Keys() []string {
	keys := make([]string, 0, m.Len())
	m.ForEach(func(key, _ string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// shasumLines renders "<digest>  <key>\n" lines, the format shasum -c reads
func (m *Manifest) shasumLines() [][]byte {
	lines := make([][]byte, 0, m.Len())
	m.ForEach(func(key, hash string) bool {
		lines = append(lines, []byte(hash+"  "+key+"\n"))
		return true
	})
	return lines
}

// WriteTo writes the manifest in shasum format
func (m *Manifest) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range m.shasumLines() {
		n, err := w.Write(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteJSON writes the manifest as an indented JSON object with sorted keys
func (m *Manifest) WriteJSON(w io.Writer) error {
	out := make(map[string]string, m.Len())
	m.ForEach(func(key, hash string) bool {
		out[key] = hash
		return true
	})
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteFile writes the manifest to an open file in the given format.
// The shasum format is written with writev, one iovec per line.
func (m *Manifest) WriteFile(file *os.File, format string) error {
	switch normaliseName(format) {
	case FormatJSON:
		return m.WriteJSON(file)
	case FormatShasum, "":
		return writeLinesWithVectorIO(file, m.shasumLines())
	default:
		return ValidateOutputFormat(format)
	}
}

// ValidateOutputFormat validates that an output format is supported
func ValidateOutputFormat(format string) error {
	switch normaliseName(format) {
	case FormatShasum, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (supported: %s, %s)", format, FormatShasum, FormatJSON)
	}
}

// writeLinesWithVectorIO writes lines in chunks of at most IOV_MAX iovecs.
// A short writev is finished with a plain write of the remainder.
func writeLinesWithVectorIO(file *os.File, lines [][]byte) error {
	defer VerboseEnter()()

	fd := uintptr(file.Fd())
	for offset := 0; offset < len(lines); offset += fallbackIOVMax {
		end := offset + fallbackIOVMax
		if end > len(lines) {
			end = len(lines)
		}
		chunk := lines[offset:end]

		iovecs := make([]syscall.Iovec, 0, len(chunk))
		expected := 0
		for _, line := range chunk {
			if len(line) == 0 {
				continue
			}
			iov := syscall.Iovec{Base: &line[0]}
			iov.SetLen(len(line))
			iovecs = append(iovecs, iov)
			expected += len(line)
		}
		if len(iovecs) == 0 {
			continue
		}

		nw, err := vectorio.WritevRaw(fd, iovecs)
		runtime.KeepAlive(chunk)
		if err != nil {
			return fmt.Errorf("failed to write manifest with vectorio: %w", err)
		}
		if nw < expected {
			if err := writeRemainder(file, chunk, nw); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeRemainder writes whatever a short writev left of chunk
func writeRemainder(file *os.File, chunk [][]byte, written int) error {
	for _, line := range chunk {
		if written >= len(line) {
			written -= len(line)
			continue
		}
		if _, err := file.Write(line[written:]); err != nil {
			return fmt.Errorf("failed to write manifest remainder: %w", err)
		}
		written = 0
	}
	return nil
}
