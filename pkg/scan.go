package assethashmap

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Entry is one filesystem node found during traversal
type Entry struct {
	Path    string // root joined with RelPath
	RelPath string // path relative to the traversal root
	IsDir   bool
	Info    fs.FileInfo
}

// Walk returns a lazy depth-first traversal of everything below root.
//
// Directory entries are listed in name order. A symlink to a directory is
// skipped, so no directory is visited twice; any other symlink is reported as
// a non-directory entry. Entries for which prune returns true are dropped, and a pruned
// directory is not descended into. The root itself is yielded only when it
// is not a directory.
// A directory that cannot be read ends the sequence with an error.
func Walk(root string, prune func(Entry) bool) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		defer VerboseEnter()()

		info, err := os.Stat(root)
		if err != nil {
			yield(Entry{Path: root}, &PathNotFoundError{Path: root, Err: err})
			return
		}
		if !info.IsDir() {
			yield(Entry{Path: root, RelPath: filepath.Base(root), Info: info}, nil)
			return
		}

		// Stack of directories still to list, relative to root
		pathStack := []string{"."}

		for len(pathStack) > 0 {
			currentRel := pathStack[len(pathStack)-1]
			pathStack = pathStack[:len(pathStack)-1]
			currentPath := filepath.Join(root, currentRel)

			dirEntries, err := os.ReadDir(currentPath)
			if err != nil {
				yield(Entry{Path: currentPath, RelPath: currentRel, IsDir: true},
					fmt.Errorf("failed to read directory %s: %w", currentPath, err))
				return
			}
			DebugLog(DebugWalk, "listing %s (%d entries)", currentPath, len(dirEntries))

			// Children are pushed in reverse so they pop in name order
			var subdirs []string
			for _, dirEntry := range dirEntries {
				relPath := filepath.Join(currentRel, dirEntry.Name())
				entryInfo, err := dirEntry.Info()
				if err != nil {
					// Removed between listing and stat
					if os.IsNotExist(err) {
						continue
					}
					yield(Entry{Path: filepath.Join(root, relPath), RelPath: relPath},
						fmt.Errorf("failed to stat %s: %w", filepath.Join(root, relPath), err))
					return
				}

				// Directory symlinks are skipped; file symlinks are hashed through the link
				if entryInfo.Mode()&os.ModeSymlink != 0 {
					if target, err := os.Stat(filepath.Join(root, relPath)); err == nil && target.IsDir() {
						DebugLog(DebugWalk, "skipping directory symlink %s", relPath)
						continue
					}
				}

				entry := Entry{
					Path:    filepath.Join(root, relPath),
					RelPath: relPath,
					IsDir:   entryInfo.IsDir(),
					Info:    entryInfo,
				}

				if prune != nil && prune(entry) {
					DebugLog(DebugWalk, "pruned %s", entry.RelPath)
					continue
				}
				if !yield(entry, nil) {
					return
				}
				if entry.IsDir {
					subdirs = append(subdirs, relPath)
				}
			}

			for i := len(subdirs) - 1; i >= 0; i-- {
				pathStack = append(pathStack, subdirs[i])
			}
		}
	}
}
