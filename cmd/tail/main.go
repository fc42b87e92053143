package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rip-super/winutils/internal/tailer"
)

func main() {
	opts, err := tailer.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, tailer.ErrHelp) {
			fmt.Fprintln(os.Stdout, tailer.Help())
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(tailer.Run(os.Args[1:], opts))
}
