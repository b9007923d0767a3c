package dsl_test

import (
	"strings"
	"testing"

	skemats "github.com/reoring/skemats"
	g "github.com/reoring/skemats/dsl"
)

func TestObject_FieldModifiers(t *testing.T) {
	o, err := g.Object().
		Field("a", g.String()).
		Field("b", g.Number()).Optional().
		Field("c", g.Boolean()).Nullable().
		Field("d", g.Int()).Default(3).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(o.Fields) != 4 || o.Catchall != nil {
		t.Fatalf("unexpected object: %#v", o)
	}
	kinds := []skemats.Kind{"", skemats.KindOptional, skemats.KindNullable, skemats.KindDefault}
	for i, f := range o.Fields {
		w, ok := f.Schema.(*skemats.Wrapper)
		if kinds[i] == "" {
			if ok {
				t.Fatalf("field %s should not be wrapped", f.Name)
			}
			continue
		}
		if !ok || w.Of != kinds[i] {
			t.Fatalf("field %s: expected %s wrapper, got %#v", f.Name, kinds[i], f.Schema)
		}
	}
	if w := o.Fields[3].Schema.(*skemats.Wrapper); w.Value != 3 {
		t.Fatalf("default value = %v", w.Value)
	}
}

func TestObject_DuplicateField(t *testing.T) {
	_, err := g.Object().Field("a", g.String()).Field("a", g.Number()).Build()
	if err == nil || !strings.Contains(err.Error(), `duplicate field "a"`) {
		t.Fatalf("expected duplicate field error, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustBuild should panic on duplicate fields")
		}
	}()
	g.Object().Field("a", g.String()).Field("a", g.Number()).MustBuild()
}

func TestObject_UnknownKeys(t *testing.T) {
	o := g.Object().Field("a", g.String()).Passthrough().MustBuild()
	if p, ok := o.Catchall.(*skemats.Primitive); !ok || p.Of != skemats.KindUnknown {
		t.Fatalf("passthrough catchall = %#v", o.Catchall)
	}
	o = g.Object().Catchall(g.Number()).Strict().MustBuild()
	if o.Catchall != nil {
		t.Fatalf("strict should clear catchall, got %#v", o.Catchall)
	}
}

func TestShape_IgnoresDuplicates(t *testing.T) {
	o := g.Shape(
		skemats.Field{Name: "a", Schema: g.String()},
		skemats.Field{Name: "a", Schema: g.Number()},
		skemats.Field{Name: "b", Schema: g.Boolean()},
	)
	if len(o.Fields) != 2 || o.Fields[1].Name != "b" {
		t.Fatalf("unexpected fields: %#v", o.Fields)
	}
	if p := o.Fields[0].Schema.(*skemats.Primitive); p.Of != skemats.KindString {
		t.Fatalf("first declaration should win, got %s", p.Of)
	}
}

func TestNullish(t *testing.T) {
	w := g.Nullish(g.String())
	if w.Of != skemats.KindOptional {
		t.Fatalf("outer = %s", w.Of)
	}
	if in, ok := w.Inner.(*skemats.Wrapper); !ok || in.Of != skemats.KindNullable {
		t.Fatalf("inner = %#v", w.Inner)
	}
}

func TestConstructorsCopyArguments(t *testing.T) {
	opts := []skemats.Node{g.String(), g.Number()}
	u := g.Union(opts...)
	opts[0] = g.Boolean()
	if p := u.Options[0].(*skemats.Primitive); p.Of != skemats.KindString {
		t.Fatalf("union aliased its argument slice")
	}

	vals := []string{"a", "b"}
	e := g.Enum(vals...)
	vals[0] = "z"
	if e.Values[0] != "a" {
		t.Fatalf("enum aliased its argument slice")
	}

	tup := g.TupleRest(g.String(), g.Number())
	if len(tup.Items) != 1 || tup.Rest == nil {
		t.Fatalf("unexpected tuple: %#v", tup)
	}
	if d := g.DiscriminatedUnion("kind", g.Shape()); d.Discriminator != "kind" || len(d.Options) != 1 {
		t.Fatalf("unexpected union: %#v", d)
	}
}

func TestOpaqueKeepsInner(t *testing.T) {
	in, out := g.String(), g.Number()
	tr := g.Transform(in)
	if tr.Tag != skemats.KindTransform || len(tr.Inner) != 1 || tr.Inner[0] != in {
		t.Fatalf("unexpected transform: %#v", tr)
	}
	p := g.Pipe(in, out)
	if p.Tag != skemats.KindPipe || len(p.Inner) != 2 || p.Inner[0] != in || p.Inner[1] != out {
		t.Fatalf("unexpected pipe: %#v", p)
	}
	if c := g.Custom(); c.Tag != skemats.KindCustom || c.Inner != nil {
		t.Fatalf("unexpected custom: %#v", c)
	}
}
