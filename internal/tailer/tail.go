package tailer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rip-super/winutils/internal/style"
)

// Run scans the argument vector, re-applying flags as they appear and
// printing the tail of each file argument at the point it is encountered.
// The first failure aborts the whole run with exit code 1.
func Run(args []string, opts Options) int {
	if err := scan(os.Stdout, args, &opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// scan walks the argument vector once. Tokens starting with '-' or '/' are
// flags and consume the following value token; everything else is a file,
// printed immediately with the options accumulated so far.
func scan(w io.Writer, args []string, opts *Options) error {
	for i := 0; i < len(args); {
		arg := args[i]

		if strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "/") {
			switch arg {
			case "--num-lines", "/n", "/l":
				if i+1 >= len(args) {
					return valueError(fmt.Sprintf("Missing value for '%s'", arg))
				}
				n, err := strconv.ParseUint(args[i+1], 10, 32)
				if err != nil {
					return valueError(fmt.Sprintf("Invalid number of lines '%s'", args[i+1]))
				}
				opts.NumLines = uint32(n)
			case "--num-bytes", "/b":
				if i+1 >= len(args) {
					return valueError(fmt.Sprintf("Missing value for '%s'", arg))
				}
				size, err := ParseSize(args[i+1])
				if err != nil {
					return valueError(fmt.Sprintf("Invalid size format '%s'", args[i+1]))
				}
				opts.NumBytes = &size
			default:
				return fmt.Errorf("Error: Unknown argument '%s'", arg)
			}
			i += 2
			continue
		}

		if err := writeTail(w, arg, *opts); err != nil {
			return err
		}
		i++
	}
	return nil
}

// writeTail prints the header, a dash rule matching the header's display
// width, the trailing content of one file, and a closing blank line.
func writeTail(w io.Writer, path string, opts Options) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("Error reading file '%s': %v", path, err)
	}
	defer f.Close()

	header := fmt.Sprintf("==> %s <==", style.Match.Render(path))
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", lipgloss.Width(header)))

	if opts.NumBytes != nil {
		err = writeLastBytes(w, f, *opts.NumBytes)
	} else {
		err = writeLastLines(w, f, opts.NumLines)
	}
	if err != nil {
		return fmt.Errorf("Error reading file '%s': %v", path, err)
	}

	fmt.Fprintln(w)
	return nil
}

// writeLastBytes seeks to the final n bytes and prints them, replacing
// invalid UTF-8 sequences rather than failing on them. Nothing beyond what
// was read is appended.
func writeLastBytes(w io.Writer, f *os.File, n uint64) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}

	var start int64
	if size := info.Size(); uint64(size) > n {
		start = size - int64(n)
	}
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return err
	}

	// Everything from start to EOF is at most n bytes.
	buf, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	fmt.Fprint(w, strings.ToValidUTF8(string(buf), "�"))
	return nil
}

// writeLastLines prints the final count elements of the newline-split file
// content. The split keeps empty trailing elements and embedded carriage
// returns.
func writeLastLines(w io.Writer, f *os.File, count uint32) error {
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")
	start := 0
	if len(lines) > int(count) {
		start = len(lines) - int(count)
	}
	for _, line := range lines[start:] {
		fmt.Fprintln(w, line)
	}
	return nil
}
