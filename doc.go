package skemats

// Package skemats provides:
//
// - Translation of Zod-style schema trees into TypeScript type expressions (Translate)
// - A stable error model via *Error (JSON Pointer path, code, kind)
// - Declaration emission for generated .ts files (Declare/RenderFile)
//
// Design policy:
// - Keep the node model and translator in the root package; builders live under dsl/.
// - Place JSON Schema / OpenAPI import under openapi/ and the CLI under cmd/skemats.
// - Translation is a pure function of the node tree; it never mutates or retains nodes.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  s := d.Object().
//      Field("name", d.String()).
//      Field("age", d.Optional(d.Number())).
//      MustBuild()
//  ts, err := skemats.Translate(s)
//  // {
//  //     name: string;
//  //     age: number | undefined;
//  // }
//
//  src, err := skemats.New(skemats.Options{}).RenderFile("", []skemats.Declaration{{Name: "User", Node: s}})
//
