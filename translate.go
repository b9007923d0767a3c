package skemats

import (
	"reflect"
	"strconv"
	"strings"
)

// Translator renders schema nodes as TypeScript type expressions.
// A Translator keeps no state between calls and is safe for concurrent use.
type Translator struct {
	opts Options
}

// New returns a Translator using opts; zero fields fall back to defaults.
func New(opts Options) *Translator {
	return &Translator{opts: opts.withDefaults()}
}

var defaultTranslator = New(DefaultOptions())

// Translate renders n with the default options. See (*Translator).Translate.
func Translate(n Node) (string, error) {
	return defaultTranslator.Translate(n)
}

// Options returns the effective options of t.
func (t *Translator) Options() Options { return t.opts }

// Translate renders n as a single type expression without trailing semicolon.
// Nodes whose type depends on user code (transform, pipe, custom) and unknown
// kinds fail with ErrUnsupportedKind; unbounded self-reference fails with
// ErrRecursionLimitExceeded. The first failure is returned as is, with its
// Path describing where in the tree it happened.
func (t *Translator) Translate(n Node) (string, error) {
	w := &walker{opts: t.opts, active: make(map[Node]bool)}
	return w.translate(n)
}

// walker carries the per-call state of one translation.
type walker struct {
	opts   Options
	depth  int
	active map[Node]bool // lazy and ref nodes currently being expanded
}

func (w *walker) fail(code string, k Kind) error {
	return &Error{Code: code, Kind: k, Depth: w.depth}
}

// child translates a nested node and records the steps leading to it on
// failure.
func (w *walker) child(n Node, steps ...string) (string, error) {
	s, err := w.translate(n)
	if err != nil {
		return "", prependPath(err, steps...)
	}
	return s, nil
}

func (w *walker) translate(n Node) (string, error) {
	if isNil(n) {
		return "", w.fail(CodeNilNode, "")
	}
	if w.depth >= w.opts.MaxDepth {
		return "", w.fail(CodeRecursionLimit, n.Kind())
	}
	w.depth++
	defer func() { w.depth-- }()

	switch v := n.(type) {
	case *Primitive:
		kw, ok := primitiveKeywords[v.Of]
		if !ok {
			return "", w.fail(CodeUnsupportedKind, v.Of)
		}
		return kw, nil
	case *Wrapper:
		return w.wrapper(v)
	case *Lazy:
		return w.deferred(v, "lazy", v.Unwrap)
	case *Ref:
		if v.Name != "" {
			return v.Name, nil
		}
		return w.deferred(v, "ref", v.Unwrap)
	case *Array:
		el, err := w.child(v.Element, "element")
		if err != nil {
			return "", err
		}
		return "Array<" + el + ">", nil
	case *Record:
		k, val, err := w.keyValue(v.Key, v.Value)
		if err != nil {
			return "", err
		}
		return "Record<" + k + ", " + val + ">", nil
	case *Map:
		k, val, err := w.keyValue(v.Key, v.Value)
		if err != nil {
			return "", err
		}
		return "Map<" + k + ", " + val + ">", nil
	case *Set:
		val, err := w.child(v.Value, "value")
		if err != nil {
			return "", err
		}
		return "Set<" + val + ">", nil
	case *Tuple:
		return w.tuple(v)
	case *Union:
		return w.union(v)
	case *Enum:
		if len(v.Values) == 0 {
			return "never", nil
		}
		parts := make([]string, len(v.Values))
		for i, s := range v.Values {
			parts[i] = quoteString(s)
		}
		return strings.Join(parts, " | "), nil
	case *Literal:
		return w.literal(v)
	case *Intersection:
		l, err := w.child(v.Left, "left")
		if err != nil {
			return "", err
		}
		r, err := w.child(v.Right, "right")
		if err != nil {
			return "", err
		}
		return parenthesizeUnion(l) + " & " + parenthesizeUnion(r), nil
	case *Object:
		return w.object(v)
	case *TemplateLiteral:
		return w.templateLiteral(v)
	case *Opaque:
		return "", w.fail(CodeUnsupportedKind, v.Tag)
	}
	return "", w.fail(CodeUnsupportedKind, n.Kind())
}

func (w *walker) wrapper(v *Wrapper) (string, error) {
	if v.Of == KindPromise {
		inner, err := w.child(v.Inner, "inner")
		if err != nil {
			return "", err
		}
		return "Promise<" + inner + ">", nil
	}
	suffix, ok := wrapperSuffix[v.Of]
	if !ok {
		return "", w.fail(CodeUnsupportedKind, v.Of)
	}
	inner, err := w.child(v.Inner, "inner")
	if err != nil {
		return "", err
	}
	return inner + suffix, nil
}

// deferred expands a lazily resolved node. Re-entering a node that is still
// being expanded can never terminate and fails immediately.
func (w *walker) deferred(n Node, step string, resolve func() Node) (string, error) {
	if w.active[n] {
		return "", w.fail(CodeRecursionLimit, n.Kind())
	}
	w.active[n] = true
	defer delete(w.active, n)
	return w.child(resolve(), step)
}

func (w *walker) keyValue(key, value Node) (string, string, error) {
	k, err := w.child(key, "key")
	if err != nil {
		return "", "", err
	}
	v, err := w.child(value, "value")
	if err != nil {
		return "", "", err
	}
	return k, v, nil
}

func (w *walker) tuple(v *Tuple) (string, error) {
	parts := make([]string, 0, len(v.Items)+1)
	for i, item := range v.Items {
		s, err := w.child(item, "items", strconv.Itoa(i))
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if v.Rest != nil {
		rest, err := w.child(v.Rest, "rest")
		if err != nil {
			return "", err
		}
		if hasTopLevelOperator(rest, "|", "&") {
			rest = "(" + rest + ")"
		}
		parts = append(parts, "..."+rest+"[]")
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

func (w *walker) union(v *Union) (string, error) {
	if len(v.Options) == 0 {
		return "never", nil
	}
	parts := make([]string, len(v.Options))
	for i, opt := range v.Options {
		s, err := w.child(opt, "options", strconv.Itoa(i))
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, " | "), nil
}

func (w *walker) literal(v *Literal) (string, error) {
	if len(v.Values) == 0 {
		return "never", nil
	}
	parts := make([]string, len(v.Values))
	for i, val := range v.Values {
		s, ok := literalType(val)
		if !ok {
			return "", prependPath(w.fail(CodeUnsupportedKind, KindLiteral), "values", strconv.Itoa(i))
		}
		parts[i] = s
	}
	return strings.Join(parts, " | "), nil
}

func (w *walker) object(v *Object) (string, error) {
	shape := &objectShape{}
	for _, f := range v.Fields {
		s, err := w.child(f.Schema, "shape", f.Name)
		if err != nil {
			return "", err
		}
		shape.add(f.Name, s)
	}
	out := shape.render(w.opts.Indent)
	if v.Catchall != nil {
		c, err := w.child(v.Catchall, "catchall")
		if err != nil {
			return "", err
		}
		out = withCatchall(out, c)
	}
	return out, nil
}

// templateLiteral renders parts between backticks. A node part translating to
// exactly undefined interpolates as the empty string, as it does at runtime.
func (w *walker) templateLiteral(v *TemplateLiteral) (string, error) {
	b := &strings.Builder{}
	b.WriteByte('`')
	for i, part := range v.Parts {
		switch p := part.(type) {
		case string:
			b.WriteString(escapeTemplate(p))
		case Node:
			s, err := w.child(p, "parts", strconv.Itoa(i))
			if err != nil {
				return "", err
			}
			if s != "undefined" {
				b.WriteString("${" + s + "}")
			}
		default:
			s, ok := scalarString(p, "", "")
			if !ok {
				return "", prependPath(w.fail(CodeUnsupportedKind, KindTemplateLiteral), "parts", strconv.Itoa(i))
			}
			b.WriteString(escapeTemplate(s))
		}
	}
	b.WriteByte('`')
	return b.String(), nil
}

// parenthesizeUnion wraps s in parentheses when it is a union at top level,
// so that it keeps its meaning as an operand of &.
func parenthesizeUnion(s string) string {
	if hasTopLevelOperator(s, "|") {
		return "(" + s + ")"
	}
	return s
}

// hasTopLevelOperator reports whether s contains one of ops surrounded by
// spaces outside of any brackets, braces, generics or string literals.
func hasTopLevelOperator(s string, ops ...string) bool {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			depth--
		case ' ':
			if depth != 0 || i+2 >= len(s) || s[i+2] != ' ' {
				continue
			}
			for _, op := range ops {
				if s[i+1] == op[0] {
					return true
				}
			}
		}
	}
	return false
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
