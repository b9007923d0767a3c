package skemats

// DefaultMaxDepth bounds recursion when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

// DefaultIndent is the per-level indentation of object shapes.
const DefaultIndent = "    "

// Options configures a Translator.
type Options struct {
	// MaxDepth is the deepest nesting translated before failing with
	// ErrRecursionLimitExceeded. Zero selects DefaultMaxDepth.
	MaxDepth int
	// Indent is the string written once per nesting level inside object
	// shapes. Empty selects DefaultIndent.
	Indent string
}

// DefaultOptions returns the options used by the package-level Translate.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth, Indent: DefaultIndent}
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	return o
}
