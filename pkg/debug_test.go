package assethashmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetDebugFlags(t *testing.T) {
	defer SetDebugFlags("")

	SetDebugFlags("walk, HASH,filter:false")
	if !IsDebugEnabled("walk") {
		t.Error("walk should be enabled")
	}
	if !IsDebugEnabled("hash") {
		t.Error("hash should be enabled (names are case-insensitive)")
	}
	if IsDebugEnabled("filter") {
		t.Error("filter:false should be disabled")
	}
	if IsDebugEnabled("unknown") {
		t.Error("unknown flag should be disabled")
	}

	SetDebugFlags("")
	if IsDebugEnabled("walk") {
		t.Error("flags should be cleared")
	}
}

func TestVerboseLevel(t *testing.T) {
	defer SetVerboseLevel(0)

	InitLogging(2, "")
	if GetVerboseLevel() != 2 {
		t.Errorf("Expected verbose level 2, got %d", GetVerboseLevel())
	}

	// Logging with debug output on must not disturb results
	InitLogging(3, "walk,filter,hash")
	defer SetDebugFlags("")
	root := t.TempDir()
	createTree(t, root, map[string]string{"a.txt": "a", ".b": "b"})
	done := VerboseEnter()
	done()
	if _, err := GetHashesMap(t.Context(), root, nil); err != nil {
		t.Fatalf("GetHashesMap with tracing failed: %v", err)
	}
}

func TestIgnoreMatcher(t *testing.T) {
	im, err := NewIgnoreMatcher([]string{"# comment", "", `\.tmp$`, "^build/"})
	if err != nil {
		t.Fatalf("NewIgnoreMatcher failed: %v", err)
	}
	if im.Len() != 2 {
		t.Errorf("Expected 2 patterns, got %d", im.Len())
	}

	testCases := []struct {
		path     string
		expected bool
	}{
		{"x.tmp", true},
		{"dir/x.tmp", true},
		{"build/app.js", true},
		{"src/build/app.js", false},
		{"app.js", false},
	}
	for _, tc := range testCases {
		if result := im.ShouldIgnore(tc.path); result != tc.expected {
			t.Errorf("ShouldIgnore(%q) = %t, expected %t", tc.path, result, tc.expected)
		}
	}

	var empty *IgnoreMatcher
	if empty.ShouldIgnore("anything") {
		t.Error("nil matcher should ignore nothing")
	}

	if _, err := NewIgnoreMatcher([]string{"[unclosed"}); err == nil {
		t.Error("Expected error for invalid pattern")
	}
}

func TestReadIgnoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ignore")
	content := "# build output\n^dist$\n\n  \\.map$  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write ignore file: %v", err)
	}

	patterns, err := ReadIgnoreFile(path)
	if err != nil {
		t.Fatalf("ReadIgnoreFile failed: %v", err)
	}
	if len(patterns) != 2 || patterns[0] != "^dist$" || patterns[1] != `\.map$` {
		t.Errorf("Unexpected patterns: %q", patterns)
	}

	if err := os.WriteFile(path, []byte("ok\n(bad\n"), 0644); err != nil {
		t.Fatalf("Failed to write ignore file: %v", err)
	}
	if _, err := ReadIgnoreFile(path); err == nil {
		t.Error("Expected error for invalid pattern")
	}

	if _, err := ReadIgnoreFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing file")
	}
}
