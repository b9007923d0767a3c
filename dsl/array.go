package dsl

import skemats "github.com/reoring/skemats"

// Array builds an array schema from an element schema.
func Array(elem skemats.Node) *skemats.Array { return &skemats.Array{Element: elem} }

// Record builds a record schema keyed by key with values of value.
func Record(key, value skemats.Node) *skemats.Record {
	return &skemats.Record{Key: key, Value: value}
}

// Map builds a Map schema.
func Map(key, value skemats.Node) *skemats.Map { return &skemats.Map{Key: key, Value: value} }

// Set builds a Set schema.
func Set(value skemats.Node) *skemats.Set { return &skemats.Set{Value: value} }

// Tuple builds a fixed-length tuple schema from positional items.
func Tuple(items ...skemats.Node) *skemats.Tuple {
	return &skemats.Tuple{Items: append([]skemats.Node(nil), items...)}
}

// TupleRest builds a tuple whose positional items are followed by any number
// of rest elements.
func TupleRest(rest skemats.Node, items ...skemats.Node) *skemats.Tuple {
	t := Tuple(items...)
	t.Rest = rest
	return t
}
