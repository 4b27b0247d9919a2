package assethashmap

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// checkAccess fails with PathNotFoundError when path does not exist or a
// parent directory is not searchable
func checkAccess(path string) error {
	if err := unix.Access(path, unix.F_OK); err != nil {
		return &PathNotFoundError{Path: path, Err: err}
	}
	return nil
}

// defaultHashWorkers returns twice GOMAXPROCS, capped so that open files stay
// under half of the soft RLIMIT_NOFILE
func defaultHashWorkers() int {
	workers := 2 * runtime.GOMAXPROCS(0)

	var rlim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rlim); err == nil && rlim.Cur != unix.RLIM_INFINITY {
		if limit := int(rlim.Cur / 2); limit < workers {
			workers = limit
		}
	}

	if workers > MaxHashWorkers {
		workers = MaxHashWorkers
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
