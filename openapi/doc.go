// Package openapi imports JSON Schema, OpenAPI v3 documents and Kubernetes
// CustomResourceDefinitions into skemats schema trees.
//
// Mapping
//   - type string/integer/number/boolean/null map to primitives; format binary maps to File.
//   - object maps to an object type; properties not listed in required become optional
//     (or default-wrapped when they carry a default).
//   - additionalProperties with a schema becomes a catch-all, or a Record when the object
//     declares no properties. additionalProperties: true and
//     x-kubernetes-preserve-unknown-fields add an unknown catch-all under UnknownPreserve.
//   - array maps to Array; prefixItems map to a tuple whose rest element comes from items.
//   - enum of strings maps to an enum, any other enum and const to literals.
//   - oneOf/anyOf map to unions (the discriminator is kept), allOf to a left-nested intersection.
//   - nullable: true and type lists including "null" widen with "| null".
//   - x-kubernetes-int-or-string maps to number | string.
//   - local $ref (#/$defs, #/definitions, #/components/schemas) maps to a named reference,
//     or to a lazy node when Options.Inline is set. Any other $ref is an error.
//
// Named schemas become Result.Declarations in document order. Non-fatal findings are
// reported through Diag.
package openapi
