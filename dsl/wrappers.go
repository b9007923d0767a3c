package dsl

import skemats "github.com/reoring/skemats"

func wrap(k skemats.Kind, inner skemats.Node) *skemats.Wrapper {
	return &skemats.Wrapper{Of: k, Inner: inner}
}

// Optional allows undefined in addition to inner.
func Optional(inner skemats.Node) *skemats.Wrapper { return wrap(skemats.KindOptional, inner) }

// Nullable allows null in addition to inner.
func Nullable(inner skemats.Node) *skemats.Wrapper { return wrap(skemats.KindNullable, inner) }

// Nullish allows both null and undefined.
func Nullish(inner skemats.Node) *skemats.Wrapper { return Optional(Nullable(inner)) }

// Readonly marks inner as readonly. The rendered type is unchanged.
func Readonly(inner skemats.Node) *skemats.Wrapper { return wrap(skemats.KindReadonly, inner) }

// NonOptional removes undefined at runtime. The rendered type is unchanged.
func NonOptional(inner skemats.Node) *skemats.Wrapper { return wrap(skemats.KindNonOptional, inner) }

// Success wraps inner in a success check. The rendered type is unchanged.
func Success(inner skemats.Node) *skemats.Wrapper { return wrap(skemats.KindSuccess, inner) }

// Promise wraps inner in Promise<T>.
func Promise(inner skemats.Node) *skemats.Wrapper { return wrap(skemats.KindPromise, inner) }

// Default supplies v when the input is undefined.
func Default(inner skemats.Node, v any) *skemats.Wrapper {
	w := wrap(skemats.KindDefault, inner)
	w.Value = v
	return w
}

// Prefault supplies v before parsing when the input is undefined.
func Prefault(inner skemats.Node, v any) *skemats.Wrapper {
	w := wrap(skemats.KindPrefault, inner)
	w.Value = v
	return w
}

// Catch substitutes v when parsing inner fails.
func Catch(inner skemats.Node, v any) *skemats.Wrapper {
	w := wrap(skemats.KindCatch, inner)
	w.Value = v
	return w
}

// Lazy defers construction of the schema to fn, enabling recursive schemas.
// fn is called on every expansion.
func Lazy(fn func() skemats.Node) *skemats.Lazy { return &skemats.Lazy{Getter: fn} }

// Ref references a schema declared elsewhere under name. It renders as name.
func Ref(name string, fn func() skemats.Node) *skemats.Ref {
	return &skemats.Ref{Name: name, Getter: fn}
}

// Transform attaches a transformation to inner. Its output type depends on
// user code, so translating it always fails.
func Transform(inner skemats.Node) *skemats.Opaque {
	return &skemats.Opaque{Tag: skemats.KindTransform, Inner: []skemats.Node{inner}}
}

// Pipe feeds the output of in into out. Translating it always fails.
func Pipe(in, out skemats.Node) *skemats.Opaque {
	return &skemats.Opaque{Tag: skemats.KindPipe, Inner: []skemats.Node{in, out}}
}

// Custom creates a schema checked by a user predicate. Translating it always
// fails.
func Custom() *skemats.Opaque {
	return &skemats.Opaque{Tag: skemats.KindCustom}
}
