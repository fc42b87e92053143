package locate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrHelp reports that the user asked for the help text.
var ErrHelp = errors.New("help requested")

// Parse builds Options from the argument vector (program name excluded).
// Only the first argument is inspected for a flag; an unrecognized first
// argument falls through with no option set. The search term is always the
// last argument.
func Parse(args []string) (Options, string, error) {
	opts := Options{Limit: Unbounded}

	if len(args) == 0 || ((args[0] == "/l" || args[0] == "--limit") && len(args) > 3) {
		return Options{}, "", usageError()
	}

	switch args[0] {
	case "/h", "--help":
		return Options{}, "", ErrHelp
	case "/b", "--basename":
		opts.Mode = ModeBaseName
	case "/s", "--case-sensitive":
		opts.Mode = ModeCaseSensitive
	case "/c", "--count":
		opts.CountOnly = true
	case "/l", "--limit":
		if len(args) < 2 {
			return Options{}, "", valueError("Expected value after limit flag to be a positive whole number")
		}
		limit, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return Options{}, "", valueError("Expected value after limit flag to be a positive whole number")
		}
		opts.Limit = uint32(limit)
	case "/r", "--regex":
		if len(args) < 2 {
			return Options{}, "", valueError("Expected expression after regex flag to be a valid regular expression")
		}
		re, err := regexp.Compile(args[1])
		if err != nil {
			return Options{}, "", valueError("Expected expression after regex flag to be a valid regular expression")
		}
		opts.Mode = ModeRegex
		opts.Regex = re
	case "/g", "--glob":
		if len(args) < 2 {
			return Options{}, "", valueError("Expected pattern after glob flag to be a valid glob pattern")
		}
		pattern := strings.ToLower(args[1])
		if !doublestar.ValidatePattern(pattern) {
			return Options{}, "", valueError("Expected pattern after glob flag to be a valid glob pattern")
		}
		opts.Mode = ModeGlob
		opts.Glob = pattern
	}

	return opts, args[len(args)-1], nil
}

// Help returns the text printed for /h or --help.
func Help() string {
	return strings.TrimSpace(`
Usage: locate[.exe] [args] <search_term>

OPTIONAL ARGUMENTS

Note: Only one argument can be used at a time

/h or --help              Displays this help message
/b or --basename          Searches for files using their basename instead of their full path (case-insensitive)
/s or --case-sensitive    Searches for files using case-sensitive search
/c or --count             Only displays the number of matches and not the files matched
/l or --limit <number>    Limits the number of results displayed
/r or --regex <regexp>    Searches for files based on a regular expression
/g or --glob <pattern>    Searches for files based on a glob pattern ('**' crosses folder boundaries)

Made by rip-super on Github (https://github.com/rip-super)
`)
}

func usageError() error {
	return fmt.Errorf("Usage: locate[.exe] [args] <search_term>\nenter 'locate --help' to learn more")
}

func valueError(msg string) error {
	return fmt.Errorf("Error: %s\nenter 'locate --help' to learn more", msg)
}
