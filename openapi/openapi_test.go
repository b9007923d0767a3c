package openapi_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	skemats "github.com/reoring/skemats"
	"github.com/reoring/skemats/openapi"
)

func mustTranslate(t *testing.T, n skemats.Node) string {
	t.Helper()
	s, err := skemats.Translate(n)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	return s
}

func TestImport_JSONSchema_ObjectKeepsOrder(t *testing.T) {
	doc := []byte(`{
		"title": "user profile",
		"type": "object",
		"required": ["name", "tags"],
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer"},
			"role": {"enum": ["admin", "user"]},
			"nickname": {"type": ["string", "null"]},
			"tags": {"type": "array", "items": {"type": "string"}},
			"labels": {"type": "object", "additionalProperties": {"type": "string"}}
		}
	}`)
	res, diag, err := openapi.ImportBytes(doc, openapi.Options{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if diag.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", diag.Warnings())
	}
	if res.Name != "UserProfile" {
		t.Fatalf("name = %q", res.Name)
	}
	want := `{
    name: string;
    age: number | undefined;
    role: 'admin' | 'user' | undefined;
    nickname: string | null | undefined;
    tags: Array<string>;
    labels: Record<string, string> | undefined;
}`
	if diff := cmp.Diff(want, mustTranslate(t, res.Root)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestImport_YAML_Keywords(t *testing.T) {
	doc := []byte(`
type: object
required: [kind, point, pair, mode, file, id, shape, extra]
properties:
  kind:
    const: circle
  point:
    type: array
    prefixItems:
      - type: number
      - type: number
  pair:
    type: array
    prefixItems:
      - type: string
    items:
      type: [integer, boolean]
  mode:
    enum: [1, "two", true, null]
  file:
    type: string
    format: binary
  id:
    type: [string, integer]
  shape:
    oneOf:
      - type: object
        required: [kind]
        properties:
          kind: {const: sq}
      - type: object
        required: [kind]
        properties:
          kind: {const: ci}
    discriminator:
      propertyName: kind
  extra:
    allOf:
      - type: object
        required: [a]
        properties:
          a: {type: string}
      - type: object
        required: [b]
        properties:
          b: {type: boolean}
      - required: [a]
`)
	res, _, err := openapi.ImportBytes(doc, openapi.Options{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := `{
    kind: 'circle';
    point: [number, number];
    pair: [string, ...(number | boolean)[]];
    mode: 1 | 'two' | true | null;
    file: File;
    id: string | number;
    shape: {
        kind: 'sq';
    } | {
        kind: 'ci';
    };
    extra: {
        a: string;
    } & {
        b: boolean;
    };
}`
	if diff := cmp.Diff(want, mustTranslate(t, res.Root)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	obj := res.Root.(*skemats.Object)
	u, ok := obj.Fields[6].Schema.(*skemats.Union)
	if !ok || u.Discriminator != "kind" {
		t.Fatalf("expected discriminated union, got %#v", obj.Fields[6].Schema)
	}
}

func TestImport_Refs_NamedDeclarations(t *testing.T) {
	doc := []byte(`{
		"$defs": {
			"tree-node": {
				"type": "object",
				"description": "A node of the tree.",
				"required": ["value"],
				"properties": {
					"value": {"type": "string"},
					"children": {"type": "array", "items": {"$ref": "#/$defs/tree-node"}}
				}
			}
		},
		"title": "tree",
		"$ref": "#/$defs/tree-node"
	}`)
	res, _, err := openapi.ImportBytes(doc, openapi.Options{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(res.Declarations) != 1 || res.Declarations[0].Name != "TreeNode" {
		t.Fatalf("declarations = %+v", res.Declarations)
	}
	if got := mustTranslate(t, res.Root); got != "TreeNode" {
		t.Fatalf("root = %q", got)
	}
	decls, err := res.Decls("")
	if err != nil {
		t.Fatalf("decls: %v", err)
	}
	out, err := skemats.New(skemats.Options{}).RenderFile("", decls)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `// Code generated by skemats. DO NOT EDIT.

/** A node of the tree. */
export type TreeNode = {
    value: string;
    children: Array<TreeNode> | undefined;
};

export type Tree = TreeNode;
`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestImport_Refs_InlineRecursionFails(t *testing.T) {
	doc := []byte(`{
		"$defs": {"n": {"type": "object", "properties": {"next": {"$ref": "#/$defs/n"}}}},
		"$ref": "#/$defs/n"
	}`)
	res, _, err := openapi.ImportBytes(doc, openapi.Options{Inline: true})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	_, err = skemats.Translate(res.Root)
	if !errors.Is(err, skemats.ErrRecursionLimitExceeded) {
		t.Fatalf("expected recursion limit, got %v", err)
	}
}

func TestImport_Refs_InlineAcyclic(t *testing.T) {
	doc := []byte(`{
		"definitions": {"id": {"type": "string"}},
		"type": "object",
		"required": ["id"],
		"properties": {"id": {"$ref": "#/definitions/id"}}
	}`)
	res, _, err := openapi.ImportBytes(doc, openapi.Options{Inline: true})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := mustTranslate(t, res.Root); got != "{\n    id: string;\n}" {
		t.Fatalf("root = %q", got)
	}
}

func TestImport_Refs_Errors(t *testing.T) {
	tests := []struct {
		name, doc, want string
	}{
		{"missing target", `{"type": "object", "properties": {"a": {"$ref": "#/$defs/nope"}}}`, "unresolved reference"},
		{"remote", `{"type": "array", "items": {"$ref": "other.json#/a"}}`, "not a local reference"},
		{"name collision", `{"$defs": {"foo-bar": {}, "foo bar": {}}}`, "both map to type FooBar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := openapi.ImportBytes([]byte(tt.doc), openapi.Options{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestImport_OpenAPIComponents(t *testing.T) {
	doc := []byte(`
openapi: 3.0.3
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        name: {type: string}
        tag: {type: string, nullable: true}
    Cat:
      allOf:
        - $ref: '#/components/schemas/Pet'
        - type: object
          properties:
            meow: {type: boolean}
`)
	res, _, err := openapi.ImportBytes(doc, openapi.Options{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Root != nil {
		t.Fatalf("expected no root, got %#v", res.Root)
	}
	var names []string
	for _, d := range res.Declarations {
		names = append(names, d.Name)
	}
	if diff := cmp.Diff([]string{"Pet", "Cat"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if got := mustTranslate(t, res.Declarations[0].Node); got != "{\n    name: string;\n    tag: string | null | undefined;\n}" {
		t.Fatalf("Pet = %q", got)
	}
	if got := mustTranslate(t, res.Declarations[1].Node); got != "Pet & {\n    meow: boolean | undefined;\n}" {
		t.Fatalf("Cat = %q", got)
	}
	if _, err := res.Decls(""); err != nil {
		t.Fatalf("decls without root: %v", err)
	}
}

func TestImport_UnknownFields(t *testing.T) {
	doc := []byte(`{
		"title": "bag",
		"type": "object",
		"additionalProperties": true,
		"properties": {"a": {"type": "string"}},
		"required": ["a"]
	}`)
	res, _, err := openapi.ImportBytes(doc, openapi.Options{Unknown: openapi.UnknownPrune})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := mustTranslate(t, res.Root); got != "{\n    a: string;\n}" {
		t.Fatalf("prune = %q", got)
	}
	res, _, err = openapi.ImportBytes(doc, openapi.Options{Unknown: openapi.UnknownPreserve})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := mustTranslate(t, res.Root); got != "{\n    a: string;\n} & { [key: string]: unknown }" {
		t.Fatalf("preserve = %q", got)
	}
}

func TestImport_Warnings(t *testing.T) {
	doc := []byte(`
type: object
required: [ghost]
properties:
  a:
    type: object
    oneOf:
      - required: [x]
      - required: [y]
    properties:
      x: {type: string}
      y: {type: string}
  b:
    type: decimal
`)
	res, diag, err := openapi.ImportBytes(doc, openapi.Options{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := []string{
		`/: required property "ghost" is not declared`,
		`/properties/a/oneOf: constraint-only branches ignored`,
		`/properties/b: unknown type "decimal" treated as unknown`,
	}
	if diff := cmp.Diff(want, diag.Warnings()); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
	got := mustTranslate(t, res.Root)
	if !strings.Contains(got, "a: {\n        x: string | undefined;\n        y: string | undefined;\n    } | undefined;") {
		t.Fatalf("unexpected root:\n%s", got)
	}
	if !strings.Contains(got, "b: unknown | undefined;") {
		t.Fatalf("unexpected root:\n%s", got)
	}
}

func TestImport_RootNeedsName(t *testing.T) {
	res, _, err := openapi.ImportBytes([]byte(`{"type": "string"}`), openapi.Options{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if _, err := res.Decls(""); err == nil {
		t.Fatal("expected error for unnamed root")
	}
	decls, err := res.Decls("Name")
	if err != nil || len(decls) != 1 || decls[0].Name != "Name" {
		t.Fatalf("decls = %+v, %v", decls, err)
	}
}
