package assethashmap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

// HashMap maps file keys to hex digests
type HashMap map[string]string

// Keys returns the keys in sorted order
func (m HashMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// hashJob is one accepted file waiting to be hashed
type hashJob struct {
	key  string
	path string
}

// GetHashesMap walks root and returns a map from file key to content digest.
//
// A root that does not exist fails with a *PathNotFoundError before anything
// is read. Any file that cannot be read fails the whole call with a
// *FileReadError; a partial map is never returned.
func GetHashesMap(ctx context.Context, root string, opts *Options) (HashMap, error) {
	defer VerboseEnter()()

	resolved, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	if err := checkAccess(root); err != nil {
		return nil, err
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, &PathNotFoundError{Path: root, Err: err}
	}
	rootInfo, err := os.Stat(absRoot)
	if err != nil {
		return nil, &PathNotFoundError{Path: root, Err: err}
	}

	keys, err := newKeyer(absRoot, rootInfo.IsDir(), opts)
	if err != nil {
		return nil, err
	}

	jobs, err := collectJobs(absRoot, resolved, keys)
	if err != nil {
		return nil, err
	}
	VerboseLog(1, "hashing %d files under %s with %s", len(jobs), absRoot, resolved.algorithm.Name)

	digests, err := hashJobs(ctx, jobs, resolved)
	if err != nil {
		return nil, err
	}

	result := make(HashMap, len(jobs))
	for i, job := range jobs {
		result[job.key] = digests[i]
	}
	return result, nil
}

// collectJobs runs the traversal and filters in sequence
func collectJobs(absRoot string, resolved *resolvedOptions, keys *keyer) ([]hashJob, error) {
	prune := func(entry Entry) bool {
		return resolved.ignore.ShouldIgnore(entry.RelPath)
	}

	var jobs []hashJob
	for entry, err := range Walk(absRoot, prune) {
		if err != nil {
			return nil, err
		}
		if !resolved.filter.Accept(entry) {
			continue
		}
		key, err := keys.key(entry.Path)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, hashJob{key: key, path: entry.Path})
	}
	return jobs, nil
}

// hashJobs hashes every job with at most resolved.workers files open at once.
// Each goroutine writes only its own slot, so the slice needs no lock.
func hashJobs(ctx context.Context, jobs []hashJob, resolved *resolvedOptions) ([]string, error) {
	digests := make([]string, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolved.workers)

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			digest, err := HashFile(gctx, job.path, resolved.algorithm, resolved.encoding, resolved.bufSize)
			if err != nil {
				return err
			}
			digests[i] = digest
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The group context is also cancelled when the caller's context is
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("hashing interrupted: %w", err)
	}
	return digests, nil
}
