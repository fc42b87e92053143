package touchfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/djherbis/times"
)

// Run touches every non-flag argument independently, in order. The first
// fatal failure aborts the run with exit code 1.
func Run(args []string, opts Options) int {
	for _, arg := range args {
		if flagWords[arg] {
			continue
		}
		if err := Touch(arg, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return 0
}

// Touch creates name if absent, or refreshes its timestamps if present,
// per the configured mode.
func Touch(name string, opts Options) error {
	if opts.NoCreate {
		if _, err := os.Stat(name); err != nil {
			return nil
		}
	}

	if opts.Directory {
		if err := os.MkdirAll(name, 0o755); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return fmt.Errorf("Error: Unable to create the folder '%s'.\nPossible reasons:\n - Insufficient permissions.\n - Invalid folder name.", name)
			}
			return fmt.Errorf("An unexpected error occurred: %v", err)
		}
		return nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	switch {
	case err == nil:
		// Fresh empty file; creation already stamped both times.
		return f.Close()
	case errors.Is(err, fs.ErrExist):
		return refreshTimes(name, opts.Times)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("Error: Unable to create the file '%s'.\nPossible reasons:\n - Insufficient permissions.\n - Invalid file name.", name)
	default:
		return fmt.Errorf("An unexpected error occurred: %v", err)
	}
}

// refreshTimes rewrites the selected timestamps to now, preserving the one
// left untouched. os.FileInfo cannot report access time portably, so the
// current values come from djherbis/times.
func refreshTimes(name string, mode TimeMode) error {
	now := time.Now()

	var err error
	switch mode {
	case TimesAccessOnly:
		var spec times.Timespec
		spec, err = times.Stat(name)
		if err == nil {
			err = os.Chtimes(name, now, spec.ModTime())
		}
	case TimesModifyOnly:
		var spec times.Timespec
		spec, err = times.Stat(name)
		if err == nil {
			err = os.Chtimes(name, spec.AccessTime(), now)
		}
	default:
		err = os.Chtimes(name, now, now)
	}

	if err != nil {
		return fmt.Errorf("An unexpected error occurred: %v", err)
	}
	return nil
}
