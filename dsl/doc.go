// Package dsl provides Zod-style constructors for skemats schema trees.
//
// Overview
//   - Primitives: String()/Number()/Boolean()/BigInt()/Symbol()/Null()/Undefined()/Void()/Never()/Any()/Unknown(),
//     aliases Int()/NaN() (number) and Date()/File().
//   - Wrappers: Optional/Nullable/Nullish/Readonly/NonOptional/Success/Default/Prefault/Catch/Promise, Lazy and Ref.
//   - Containers: Array/Record/Map/Set, Tuple/TupleRest.
//   - Algebra: Union/DiscriminatedUnion/Intersection, Enum/Literal/TemplateLiteral.
//   - Objects: Object().Field(...).Optional().Catchall(...).Build()/MustBuild() or Shape(fields...);
//     fields keep insertion order.
//   - Code-dependent kinds: Transform/Pipe/Custom exist so that callers can describe them, but they never translate.
//
// File layout (roles)
//   - primitives.go: leaf constructors.
//   - wrappers.go: single-child wrappers, lazy and ref nodes, code-dependent kinds.
//   - array.go: generic containers and tuples.
//   - union.go: unions, intersections, enums, literals and template literals.
//   - object_builder.go: objectBuilder/fieldStep and Build/MustBuild.
//
// Example (quickstart)
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/reoring/skemats"
//	    d "github.com/reoring/skemats/dsl"
//	)
//
//	func main() {
//	    user := d.Object().
//	        Field("name", d.String()).
//	        Field("age", d.Number()).Optional().
//	        MustBuild()
//	    ts, err := skemats.Translate(user)
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(ts)
//	}
package dsl
