package skemats

// Kind is the discriminant tag carried by every schema node. The values mirror
// the tags used by Zod-style schema libraries so that trees built elsewhere can
// be mapped one to one.
type Kind string

const (
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindBoolean   Kind = "boolean"
	KindBigInt    Kind = "bigint"
	KindSymbol    Kind = "symbol"
	KindNull      Kind = "null"
	KindUndefined Kind = "undefined"
	KindVoid      Kind = "void"
	KindNever     Kind = "never"
	KindAny       Kind = "any"
	KindUnknown   Kind = "unknown"

	KindInt  Kind = "int"
	KindNaN  Kind = "nan"
	KindDate Kind = "date"
	KindFile Kind = "file"

	KindReadonly    Kind = "readonly"
	KindNonOptional Kind = "nonoptional"
	KindSuccess     Kind = "success"
	KindLazy        Kind = "lazy"

	KindNullable Kind = "nullable"
	KindOptional Kind = "optional"
	KindDefault  Kind = "default"
	KindPrefault Kind = "prefault"
	KindCatch    Kind = "catch"

	KindArray   Kind = "array"
	KindPromise Kind = "promise"
	KindRecord  Kind = "record"
	KindMap     Kind = "map"
	KindSet     Kind = "set"

	KindTuple           Kind = "tuple"
	KindUnion           Kind = "union"
	KindEnum            Kind = "enum"
	KindLiteral         Kind = "literal"
	KindIntersection    Kind = "intersection"
	KindObject          Kind = "object"
	KindTemplateLiteral Kind = "template_literal"
	KindRef             Kind = "ref"

	// Kinds whose type depends on user code. They are never translated.
	KindTransform Kind = "transform"
	KindPipe      Kind = "pipe"
	KindCustom    Kind = "custom"
)

// Node is a schema tree node. The set of implementations is closed: every
// variant is declared in this package and selected with a type switch.
type Node interface {
	Kind() Kind
	node()
}

// Primitive is a leaf node without payload (string, number, date, ...).
type Primitive struct {
	Of Kind
}

// Wrapper wraps a single inner node. It covers readonly, nonoptional, success,
// nullable, optional, default, prefault, catch and promise. Value holds the
// default or fallback value for default/prefault/catch; it never affects the type.
type Wrapper struct {
	Of    Kind
	Inner Node
	Value any
}

// Lazy defers construction of its inner node until Unwrap is called, which
// allows self-referential schemas to be declared.
type Lazy struct {
	Getter func() Node
}

// Unwrap resolves the deferred node. A nil getter yields nil.
func (l *Lazy) Unwrap() Node {
	if l.Getter == nil {
		return nil
	}
	return l.Getter()
}

type Array struct {
	Element Node
}

type Record struct {
	Key   Node
	Value Node
}

type Map struct {
	Key   Node
	Value Node
}

type Set struct {
	Value Node
}

// Tuple holds positional items and an optional variadic rest element.
type Tuple struct {
	Items []Node
	Rest  Node
}

// Union lists its options in declaration order. Discriminator is set for
// discriminated unions and is informative only.
type Union struct {
	Options       []Node
	Discriminator string
}

// Enum is an ordered set of string values.
type Enum struct {
	Values []string
}

// Literal holds one or more literal values. Supported value types are string,
// bool, the Go integer and float types, *big.Int, nil (null) and Undefined.
type Literal struct {
	Values []any
}

type Intersection struct {
	Left  Node
	Right Node
}

// Field is a named member of an object shape.
type Field struct {
	Name   string
	Schema Node
}

// Object is an ordered shape of fields plus an optional catch-all node for
// keys that are not declared.
type Object struct {
	Fields   []Field
	Catchall Node
}

// TemplateLiteral is a sequence of parts. A part is either a Node, a string,
// a scalar (bool, integer, float, *big.Int), nil for null, or Undefined.
type TemplateLiteral struct {
	Parts []any
}

// Ref is a named reference to another schema, used to emit recursive and
// shared declarations. It renders as its name; Getter is resolved only by
// consumers that need the target.
type Ref struct {
	Name   string
	Getter func() Node
}

// Unwrap resolves the referenced node. A nil getter yields nil.
func (r *Ref) Unwrap() Node {
	if r.Getter == nil {
		return nil
	}
	return r.Getter()
}

// Opaque stands for any node the translator cannot render: transform, pipe,
// custom, or a tag unknown to this package.
type Opaque struct {
	Tag Kind
	// Inner holds the wrapped schemas (the input of a transform, both stages
	// of a pipe). They are never translated.
	Inner []Node
}

func (p *Primitive) Kind() Kind     { return p.Of }
func (w *Wrapper) Kind() Kind       { return w.Of }
func (*Lazy) Kind() Kind            { return KindLazy }
func (*Array) Kind() Kind           { return KindArray }
func (*Record) Kind() Kind          { return KindRecord }
func (*Map) Kind() Kind             { return KindMap }
func (*Set) Kind() Kind             { return KindSet }
func (*Tuple) Kind() Kind           { return KindTuple }
func (*Union) Kind() Kind           { return KindUnion }
func (*Enum) Kind() Kind            { return KindEnum }
func (*Literal) Kind() Kind         { return KindLiteral }
func (*Intersection) Kind() Kind    { return KindIntersection }
func (*Object) Kind() Kind          { return KindObject }
func (*TemplateLiteral) Kind() Kind { return KindTemplateLiteral }
func (*Ref) Kind() Kind             { return KindRef }
func (o *Opaque) Kind() Kind        { return o.Tag }

func (*Primitive) node()       {}
func (*Wrapper) node()         {}
func (*Lazy) node()            {}
func (*Array) node()           {}
func (*Record) node()          {}
func (*Map) node()             {}
func (*Set) node()             {}
func (*Tuple) node()           {}
func (*Union) node()           {}
func (*Enum) node()            {}
func (*Literal) node()         {}
func (*Intersection) node()    {}
func (*Object) node()          {}
func (*TemplateLiteral) node() {}
func (*Ref) node()             {}
func (*Opaque) node()          {}

// undefinedValue is the type of Undefined.
type undefinedValue struct{}

// Undefined is the JavaScript undefined value for Literal values and
// TemplateLiteral parts. nil stands for null.
var Undefined = undefinedValue{}

// primitiveKeywords maps leaf kinds to their TypeScript spelling.
var primitiveKeywords = map[Kind]string{
	KindString:    "string",
	KindNumber:    "number",
	KindBoolean:   "boolean",
	KindBigInt:    "bigint",
	KindSymbol:    "symbol",
	KindNull:      "null",
	KindUndefined: "undefined",
	KindVoid:      "void",
	KindNever:     "never",
	KindAny:       "any",
	KindUnknown:   "unknown",
	KindInt:       "number",
	KindNaN:       "number",
	KindDate:      "Date",
	KindFile:      "File",
}

// wrapperSuffix lists the wrapper kinds and what they append to the inner type.
var wrapperSuffix = map[Kind]string{
	KindReadonly:    "",
	KindNonOptional: "",
	KindSuccess:     "",
	KindNullable:    " | null",
	KindOptional:    " | undefined",
	KindDefault:     " | undefined",
	KindPrefault:    " | undefined",
	KindCatch:       " | undefined",
}

// IsSupported reports whether nodes of kind k can be translated.
func IsSupported(k Kind) bool {
	if _, ok := primitiveKeywords[k]; ok {
		return true
	}
	if _, ok := wrapperSuffix[k]; ok {
		return true
	}
	switch k {
	case KindLazy, KindPromise, KindArray, KindRecord, KindMap, KindSet,
		KindTuple, KindUnion, KindEnum, KindLiteral, KindIntersection,
		KindObject, KindTemplateLiteral, KindRef:
		return true
	}
	return false
}
