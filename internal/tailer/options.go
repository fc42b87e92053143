package tailer

// Options is the running configuration for the per-file scan. Flags that
// reappear between file arguments mutate it in place and affect only the
// files listed after them. Once NumBytes is set, byte mode overrides line
// mode entirely, regardless of later line flags.
type Options struct {
	NumLines uint32
	NumBytes *uint64
}

// Default returns the options in effect before any flag is seen.
func Default() Options {
	return Options{NumLines: 10}
}
