package locate

import (
	"fmt"
	"io"
	"os"

	"github.com/rip-super/winutils/internal/style"
)

// Run executes one search from the current directory and returns the
// process exit code.
func Run(opts Options, term string) int {
	files := Search(".", term, opts)
	report(os.Stdout, files, term, opts)
	return 0
}

// report prints the match list, clipped to the limit, followed by the
// unclipped total.
func report(w io.Writer, files []string, term string, opts Options) {
	if !opts.CountOnly {
		for i, file := range files {
			if uint32(i) == opts.Limit {
				break
			}
			fmt.Fprintln(w, style.Highlight(file, term))
		}
	}
	fmt.Fprintf(w, "\n%d results found\n", len(files))
}
