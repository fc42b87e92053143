package touchfile

// TimeMode selects which timestamps an existing file receives on touch.
type TimeMode int

const (
	// TimesBoth updates access and modification time together.
	TimesBoth TimeMode = iota
	// TimesAccessOnly updates only the access time.
	TimesAccessOnly
	// TimesModifyOnly updates only the modification time.
	TimesModifyOnly
)

// Options is the fully-parsed configuration for a single invocation.
type Options struct {
	NoCreate  bool
	Directory bool
	Times     TimeMode
}
