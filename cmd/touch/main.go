package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rip-super/winutils/internal/touchfile"
)

func main() {
	opts, err := touchfile.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, touchfile.ErrHelp) {
			fmt.Fprintln(os.Stdout, touchfile.Help())
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(touchfile.Run(os.Args[1:], opts))
}
