package locate

import (
	"math"
	"regexp"
)

// Mode selects the predicate that decides whether a file path matches the
// search term. Exactly one mode is active per invocation; the parser
// enforces this by construction.
type Mode int

const (
	// ModePlain matches the lowercased full path against the lowercased term.
	ModePlain Mode = iota
	// ModeBaseName matches the lowercased basename against the lowercased term.
	ModeBaseName
	// ModeCaseSensitive matches the full path against the term verbatim.
	ModeCaseSensitive
	// ModeRegex matches the lowercased full path against a compiled pattern.
	ModeRegex
	// ModeGlob matches the lowercased slash path against a doublestar pattern.
	ModeGlob
)

// Unbounded is the limit sentinel meaning "print every match".
const Unbounded uint32 = math.MaxUint32

// Options is the fully-parsed configuration for a single invocation.
type Options struct {
	Mode      Mode
	Regex     *regexp.Regexp // ModeRegex only
	Glob      string         // ModeGlob only, lowercased at parse time
	CountOnly bool
	Limit     uint32
}
