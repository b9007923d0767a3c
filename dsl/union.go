package dsl

import skemats "github.com/reoring/skemats"

// Union builds a union of options in declaration order.
func Union(options ...skemats.Node) *skemats.Union {
	return &skemats.Union{Options: append([]skemats.Node(nil), options...)}
}

// DiscriminatedUnion builds a union of object variants keyed by the
// discriminator property.
func DiscriminatedUnion(discriminator string, variants ...skemats.Node) *skemats.Union {
	u := Union(variants...)
	u.Discriminator = discriminator
	return u
}

// Intersection builds the intersection of left and right.
func Intersection(left, right skemats.Node) *skemats.Intersection {
	return &skemats.Intersection{Left: left, Right: right}
}

// Enum builds an enum of string values.
func Enum(values ...string) *skemats.Enum {
	return &skemats.Enum{Values: append([]string(nil), values...)}
}

// Literal builds a literal schema matching any of values. Use nil for null
// and skemats.Undefined for undefined.
func Literal(values ...any) *skemats.Literal {
	return &skemats.Literal{Values: append([]any(nil), values...)}
}

// TemplateLiteral builds a template literal schema. Each part is a schema
// node, a string, a scalar, nil (null) or skemats.Undefined.
func TemplateLiteral(parts ...any) *skemats.TemplateLiteral {
	return &skemats.TemplateLiteral{Parts: append([]any(nil), parts...)}
}
