package tailer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrHelp reports that the user asked for the help text.
var ErrHelp = errors.New("help requested")

// Parse applies the first flag token, if any, to a fresh Options record.
// The per-file scan in Run re-reads the whole argument vector afterwards;
// this pass exists to reject a malformed leading flag before any file is
// opened. An unrecognized first argument falls through untouched.
func Parse(args []string) (Options, error) {
	opts := Default()

	if len(args) == 0 {
		return Options{}, usageError()
	}

	switch args[0] {
	case "/h", "--help":
		return Options{}, ErrHelp
	case "/l", "--num-lines":
		if len(args) < 2 {
			return Options{}, valueError("Expected value after /l or --num-lines flag to be a positive whole number")
		}
		n, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return Options{}, valueError("Expected value after /l or --num-lines flag to be a positive whole number")
		}
		opts.NumLines = uint32(n)
	case "/b", "--num-bytes":
		if len(args) < 2 {
			return Options{}, valueError("Missing value after /b or --num-bytes flag")
		}
		size, err := ParseSize(args[1])
		if err != nil {
			return Options{}, valueError(fmt.Sprintf("Invalid size format '%s' after /b or --num-bytes flag", args[1]))
		}
		opts.NumBytes = &size
	}

	return opts, nil
}

// Help returns the text printed for /h or --help.
func Help() string {
	return strings.TrimSpace(`
Usage: tail[.exe] [args] <file_name>

OPTIONAL ARGUMENTS

Note: Flags apply to every file listed after them

/h or --help                  Displays this help message
/l or --num-lines <number>    Displays the last n lines of the file (also /n)
/b or --num-bytes <size>      Displays the last n bytes of the file
                              (Also supports human-readable formats like:
                              '2k' for 2 kilobytes,
                              '3m' for 3 megabytes
                              and '1g' for 1 gigabyte)
`)
}

func usageError() error {
	return fmt.Errorf("Usage: tail[.exe] [args] <file_name>\nEnter 'tail --help' to learn more")
}

func valueError(msg string) error {
	return fmt.Errorf("Error: %s\nEnter 'tail --help' to learn more", msg)
}
