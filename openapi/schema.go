package openapi

import (
	"fmt"
	"strconv"

	skemats "github.com/reoring/skemats"
	"github.com/reoring/skemats/dsl"
	"github.com/reoring/skemats/jsonschema"
)

// node maps s to a schema node. path is the JSON pointer of s, used in
// warnings and errors.
func (im *importer) node(s *jsonschema.Schema, path string) (skemats.Node, error) {
	if s == nil {
		return dsl.Unknown(), nil
	}
	if s.Ref != "" {
		return im.refNode(s.Ref, path)
	}
	n, err := im.base(s, path)
	if err != nil {
		return nil, err
	}
	if s.Nullable || (s.Type.Has("null") && len(s.Type.WithoutNull()) > 0) {
		n = dsl.Nullable(n)
	}
	return n, nil
}

func (im *importer) base(s *jsonschema.Schema, path string) (skemats.Node, error) {
	switch {
	case s.IntOrString:
		return dsl.Union(dsl.Int(), dsl.String()), nil
	case s.Const != nil:
		return im.literal([]any{s.Const}, path+"/const"), nil
	case len(s.Enum) > 0:
		return im.enum(s.Enum, path+"/enum"), nil
	case len(s.AllOf) > 0:
		return im.allOf(s, path)
	case len(s.OneOf) > 0:
		return im.oneOf(s, s.OneOf, path, "oneOf")
	case len(s.AnyOf) > 0:
		return im.oneOf(s, s.AnyOf, path, "anyOf")
	}
	return im.typed(s, path)
}

// typed maps s by its type keyword, inferring object or array from the
// keywords present when type is absent.
func (im *importer) typed(s *jsonschema.Schema, path string) (skemats.Node, error) {
	types := s.Type.WithoutNull()
	switch len(types) {
	case 0:
		switch {
		case s.Properties != nil || s.AdditionalProperties != nil || s.PreserveUnknownFields:
			return im.object(s, path)
		case s.Items != nil || len(s.PrefixItems) > 0:
			return im.array(s, path)
		case s.Type.Has("null"):
			return dsl.Null(), nil
		}
		return dsl.Unknown(), nil
	case 1:
		return im.single(types[0], s, path)
	}
	opts := make([]skemats.Node, 0, len(types))
	for _, t := range types {
		n, err := im.single(t, s, path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, n)
	}
	return dsl.Union(opts...), nil
}

func (im *importer) single(t string, s *jsonschema.Schema, path string) (skemats.Node, error) {
	switch t {
	case "string":
		if s.Format == "binary" {
			return dsl.File(), nil
		}
		return dsl.String(), nil
	case "integer":
		return dsl.Int(), nil
	case "number":
		return dsl.Number(), nil
	case "boolean":
		return dsl.Boolean(), nil
	case "null":
		return dsl.Null(), nil
	case "array":
		return im.array(s, path)
	case "object":
		return im.object(s, path)
	}
	im.d.warnf("%s: unknown type %q treated as unknown", pathOrRoot(path), t)
	return dsl.Unknown(), nil
}

func (im *importer) array(s *jsonschema.Schema, path string) (skemats.Node, error) {
	if len(s.PrefixItems) == 0 {
		if s.Items == nil {
			return dsl.Array(dsl.Unknown()), nil
		}
		elem, err := im.node(s.Items, path+"/items")
		if err != nil {
			return nil, err
		}
		return dsl.Array(elem), nil
	}
	items := make([]skemats.Node, 0, len(s.PrefixItems))
	for i, it := range s.PrefixItems {
		n, err := im.node(it, path+"/prefixItems/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if s.Items == nil {
		return dsl.Tuple(items...), nil
	}
	rest, err := im.node(s.Items, path+"/items")
	if err != nil {
		return nil, err
	}
	return dsl.TupleRest(rest, items...), nil
}

func (im *importer) object(s *jsonschema.Schema, path string) (skemats.Node, error) {
	ap := s.AdditionalProperties
	if s.Properties.Len() == 0 {
		switch {
		case ap != nil && ap.Schema != nil:
			v, err := im.node(ap.Schema, path+"/additionalProperties")
			if err != nil {
				return nil, err
			}
			return dsl.Record(dsl.String(), v), nil
		case (ap != nil && ap.Allows) || s.PreserveUnknownFields:
			return dsl.Record(dsl.String(), dsl.Unknown()), nil
		case im.opts.Unknown == UnknownPreserve && ap == nil:
			return dsl.Record(dsl.String(), dsl.Unknown()), nil
		}
		return dsl.Object().MustBuild(), nil
	}

	for _, r := range s.Required {
		if _, ok := s.Properties.Get(r); !ok {
			im.d.warnf("%s: required property %q is not declared", pathOrRoot(path), r)
		}
	}
	b := dsl.Object()
	for _, k := range s.Properties.Keys() {
		ps, _ := s.Properties.Get(k)
		n, err := im.node(ps, path+"/properties/"+escapeRefToken(k))
		if err != nil {
			return nil, err
		}
		switch {
		case s.IsRequired(k):
			b.Field(k, n)
		case ps != nil && ps.Default != nil:
			b.Field(k, n).Default(ps.Default)
		default:
			b.Field(k, n).Optional()
		}
	}
	switch {
	case ap != nil && ap.Schema != nil:
		c, err := im.node(ap.Schema, path+"/additionalProperties")
		if err != nil {
			return nil, err
		}
		b.Catchall(c)
	case (ap != nil && ap.Allows) || s.PreserveUnknownFields:
		if im.opts.Unknown == UnknownPreserve {
			b.Passthrough()
		}
	}
	return b.Build()
}

// enum maps enum values: all strings become an Enum, anything else a Literal.
func (im *importer) enum(values []any, path string) skemats.Node {
	strs := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return im.literal(values, path)
		}
		strs = append(strs, s)
	}
	return dsl.Enum(strs...)
}

// literal keeps scalar values and drops composite ones with a warning.
func (im *importer) literal(values []any, path string) skemats.Node {
	kept := make([]any, 0, len(values))
	for i, v := range values {
		switch v.(type) {
		case map[string]any, []any:
			im.d.warnf("%s/%d: composite literal value dropped", path, i)
			continue
		}
		kept = append(kept, v)
	}
	return dsl.Literal(kept...)
}

// allOf folds the members (and s itself when it declares a shape) into a
// left-nested intersection.
func (im *importer) allOf(s *jsonschema.Schema, path string) (skemats.Node, error) {
	var parts []skemats.Node
	if own := withoutComposition(s); hasSchemaContent(own) {
		n, err := im.base(own, path)
		if err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}
	for i, m := range s.AllOf {
		if isConstraintOnly(m) {
			continue
		}
		n, err := im.node(m, fmt.Sprintf("%s/allOf/%d", path, i))
		if err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}
	if len(parts) == 0 {
		return dsl.Unknown(), nil
	}
	acc := parts[0]
	for _, p := range parts[1:] {
		acc = dsl.Intersection(acc, p)
	}
	return acc, nil
}

// oneOf maps oneOf/anyOf to a union. Branches that only constrain the value
// (e.g. "required" lists in structural schemas) carry no type, so the
// schema's own type is used instead.
func (im *importer) oneOf(s *jsonschema.Schema, branches []*jsonschema.Schema, path, keyword string) (skemats.Node, error) {
	all := true
	for _, b := range branches {
		if !isConstraintOnly(b) {
			all = false
			break
		}
	}
	if all {
		im.d.warnf("%s/%s: constraint-only branches ignored", path, keyword)
		return im.typed(s, path)
	}
	opts := make([]skemats.Node, 0, len(branches))
	for i, b := range branches {
		n, err := im.node(b, path+"/"+keyword+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		opts = append(opts, n)
	}
	u := dsl.Union(opts...)
	if s.Discriminator != nil {
		u.Discriminator = s.Discriminator.PropertyName
	}
	return u, nil
}

func withoutComposition(s *jsonschema.Schema) *jsonschema.Schema {
	c := *s
	c.AllOf, c.OneOf, c.AnyOf = nil, nil, nil
	c.Defs, c.Definitions = nil, nil
	return &c
}

func isConstraintOnly(s *jsonschema.Schema) bool {
	return s != nil && !hasSchemaContent(s)
}
