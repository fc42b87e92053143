package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rip-super/winutils/internal/locate"
)

func main() {
	opts, term, err := locate.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, locate.ErrHelp) {
			fmt.Fprintln(os.Stdout, locate.Help())
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(locate.Run(opts, term))
}
