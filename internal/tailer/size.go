package tailer

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSize parses a human-readable byte count: leading decimal digits
// followed by an optional unit k, m, or g (case-insensitive, powers of
// 1024). An empty unit means plain bytes.
func ParseSize(s string) (uint64, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	value, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}

	switch strings.ToLower(s[i:]) {
	case "k":
		return value * 1024, nil
	case "m":
		return value * 1024 * 1024, nil
	case "g":
		return value * 1024 * 1024 * 1024, nil
	case "":
		return value, nil
	default:
		return 0, fmt.Errorf("invalid size unit %q", s[i:])
	}
}
