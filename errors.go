package skemats

import (
	"errors"
	"strings"

	"github.com/reoring/skemats/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnsupportedKind = "unsupported_kind"
	CodeRecursionLimit  = "recursion_limit"
	CodeNilNode         = "nil_node"
)

var (
	// ErrUnsupportedKind matches errors raised for transform, pipe, custom and
	// unknown node kinds.
	ErrUnsupportedKind = &Error{Code: CodeUnsupportedKind}
	// ErrRecursionLimitExceeded matches errors raised for unbounded
	// self-reference or nesting deeper than Options.MaxDepth.
	ErrRecursionLimitExceeded = &Error{Code: CodeRecursionLimit}
	// ErrNilNode matches errors raised when a nil node is reached.
	ErrNilNode = &Error{Code: CodeNilNode}
)

// Error describes why a node could not be translated.
type Error struct {
	Code string // One of the codes listed above.
	Kind Kind   // Kind of the offending node (empty for nil nodes).
	// Path is a JSON Pointer-like trail of structural steps from the root
	// node to the offending one (for example: /shape/user/inner/items/0).
	Path  string
	Depth int // Nesting depth at which translation stopped.
}

// Error renders "<message>: <kind> at <path>".
func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString("skemats: ")
	b.WriteString(i18n.T(e.Code, map[string]string{"kind": string(e.Kind)}))
	if e.Kind != "" {
		b.WriteString(": ")
		b.WriteString(string(e.Kind))
	}
	path := e.Path
	if path == "" {
		path = "/"
	}
	b.WriteString(" at ")
	b.WriteString(path)
	return b.String()
}

// Is matches any *Error carrying the same code, so that
// errors.Is(err, ErrUnsupportedKind) works regardless of kind or path.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// AsError extracts *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// prependPath records structural steps while a failure unwinds.
func prependPath(err error, steps ...string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	b := &strings.Builder{}
	for _, s := range steps {
		b.WriteByte('/')
		b.WriteString(escapePointer(s))
	}
	e.Path = b.String() + e.Path
	return err
}

// escapePointer escapes a path segment per RFC 6901.
func escapePointer(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
