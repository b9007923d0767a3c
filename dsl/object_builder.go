package dsl

import (
	"fmt"

	skemats "github.com/reoring/skemats"
)

type objectBuilder struct {
	fields   []skemats.Field
	index    map[string]int
	catchall skemats.Node
	dups     []string
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder without fields or catch-all.
func Object() *objectBuilder {
	return &objectBuilder{index: map[string]int{}}
}

// Field appends a field. Fields keep their insertion order in the output.
func (b *objectBuilder) Field(name string, n skemats.Node) *fieldStep {
	if _, ok := b.index[name]; ok {
		b.dups = append(b.dups, name)
	} else {
		b.index[name] = len(b.fields)
		b.fields = append(b.fields, skemats.Field{Name: name, Schema: n})
	}
	return &fieldStep{b: b, name: name}
}

func (f *fieldStep) wrap(fn func(skemats.Node) *skemats.Wrapper) *objectBuilder {
	i, ok := f.b.index[f.name]
	if ok {
		f.b.fields[i].Schema = fn(f.b.fields[i].Schema)
	}
	return f.b
}

// Optional wraps the current field in Optional and returns the builder.
func (f *fieldStep) Optional() *objectBuilder { return f.wrap(Optional) }

// Nullable wraps the current field in Nullable and returns the builder.
func (f *fieldStep) Nullable() *objectBuilder { return f.wrap(Nullable) }

// Default wraps the current field in Default(v) and returns the builder.
func (f *fieldStep) Default(v any) *objectBuilder {
	return f.wrap(func(n skemats.Node) *skemats.Wrapper { return Default(n, v) })
}

func (f *fieldStep) Field(name string, n skemats.Node) *fieldStep { return f.b.Field(name, n) }
func (f *fieldStep) Catchall(n skemats.Node) *objectBuilder       { return f.b.Catchall(n) }
func (f *fieldStep) Strict() *objectBuilder                       { return f.b.Strict() }
func (f *fieldStep) Passthrough() *objectBuilder                  { return f.b.Passthrough() }
func (f *fieldStep) Build() (*skemats.Object, error)              { return f.b.Build() }
func (f *fieldStep) MustBuild() *skemats.Object                   { return f.b.MustBuild() }

// Catchall sets the schema of keys not declared as fields.
func (b *objectBuilder) Catchall(n skemats.Node) *objectBuilder {
	b.catchall = n
	return b
}

// Strict rejects unknown keys at runtime; the type has no index signature.
func (b *objectBuilder) Strict() *objectBuilder {
	b.catchall = nil
	return b
}

// Passthrough keeps unknown keys; the type gains an index signature of unknown.
func (b *objectBuilder) Passthrough() *objectBuilder {
	b.catchall = Unknown()
	return b
}

// Build returns the object node. Declaring the same field twice is an error.
func (b *objectBuilder) Build() (*skemats.Object, error) {
	if len(b.dups) > 0 {
		return nil, fmt.Errorf("dsl: duplicate field %q", b.dups[0])
	}
	return &skemats.Object{
		Fields:   append([]skemats.Field(nil), b.fields...),
		Catchall: b.catchall,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() *skemats.Object {
	o, err := b.Build()
	if err != nil {
		panic(err)
	}
	return o
}

// Shape builds an object directly from fields, without catch-all. Later
// fields with a duplicate name are ignored.
func Shape(fields ...skemats.Field) *skemats.Object {
	b := Object()
	for _, f := range fields {
		b.Field(f.Name, f.Schema)
	}
	b.dups = nil
	return &skemats.Object{Fields: b.fields}
}
