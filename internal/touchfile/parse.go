package touchfile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp reports that the user asked for the help text.
var ErrHelp = errors.New("help requested")

// flagWords are the recognized flag tokens. Target arguments matching one
// of these are skipped on the assumption that nobody names a file after a
// flag.
var flagWords = map[string]bool{
	"/h": true, "--help": true,
	"/c": true, "--no-create": true,
	"/d": true, "--directory": true,
	"/a": true, "--access-time": true,
	"/m": true, "--modification-time": true,
}

// Parse builds Options from the argument vector (program name excluded).
// Only the first argument is inspected for a flag; an unrecognized first
// argument falls through with no option set and is treated as a target.
func Parse(args []string) (Options, error) {
	var opts Options

	if len(args) == 0 {
		return Options{}, usageError()
	}

	switch args[0] {
	case "/h", "--help":
		return Options{}, ErrHelp
	case "/c", "--no-create":
		opts.NoCreate = true
	case "/d", "--directory":
		opts.Directory = true
	case "/a", "--access-time":
		opts.Times = TimesAccessOnly
	case "/m", "--modification-time":
		opts.Times = TimesModifyOnly
	}

	return opts, nil
}

// Help returns the text printed for /h or --help.
func Help() string {
	return strings.TrimSpace(`
Usage: touch[.exe] [args] <file_name>

OPTIONAL ARGUMENTS

Note: Only one argument can be used at a time

/h or --help                Displays this help message

/c or --no-create           Prevents creating new files if they don't already exist
                            If a file exists, the timestamps will be updated
                            but if the file doesn't exist, nothing will happen

/d or --directory           Creates directories instead of files
                            Can also create nested folders:
                            touch --directory this/is/a/nested/folder

/a or --access-time         Only updates the accessed time of the file if the file already exists,
                            otherwise it creates the file like normal

/m or --modification-time   Only updates the modified time of the file if the file already exists,
                            otherwise it creates the file like normal

Made by rip-super on Github (https://github.com/rip-super)
`)
}

func usageError() error {
	return fmt.Errorf("Usage: touch[.exe] [args] <file_name>\nenter 'touch --help' to learn more")
}
