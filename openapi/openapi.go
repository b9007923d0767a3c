package openapi

import (
	"errors"
	"fmt"

	skemats "github.com/reoring/skemats"
	"github.com/reoring/skemats/jsonschema"
)

// Result is an imported document.
type Result struct {
	// Root is the node of the document's root schema, or nil when the
	// document only carries named schemas (e.g. OpenAPI components).
	Root skemats.Node
	// Name suggests a declaration name for Root: the CRD kind or the
	// schema title. It may be empty.
	Name string
	// Description is the root schema's description.
	Description string
	// Declarations lists $defs, definitions and components.schemas in
	// document order.
	Declarations []skemats.Declaration
}

// Decls returns the declarations to render for r. Root is appended as
// rootName (falling back to r.Name) when present.
func (r *Result) Decls(rootName string) ([]skemats.Declaration, error) {
	out := append([]skemats.Declaration(nil), r.Declarations...)
	if r.Root == nil {
		return out, nil
	}
	if rootName == "" {
		rootName = r.Name
	}
	if rootName == "" {
		return nil, errors.New("openapi: root schema has no name; set a title or pass one explicitly")
	}
	return append(out, skemats.Declaration{Name: rootName, Node: r.Root, Description: r.Description}), nil
}

type importer struct {
	opts  Options
	d     *simpleDiag
	defs  map[string]*definition
	names map[string]string
	order []*definition
}

// Import converts a decoded document into schema nodes. CustomResourceDefinitions
// are unwrapped to their structural schema.
func Import(doc *jsonschema.Document, opts Options) (*Result, Diag, error) {
	d := &simpleDiag{}
	if doc == nil {
		return nil, d, errors.New("openapi: nil document")
	}
	im := &importer{opts: opts, d: d, defs: map[string]*definition{}, names: map[string]string{}}

	res := &Result{}
	root, rootPath := &doc.Schema, ""
	switch {
	case doc.IsCRD():
		root = doc.CRDSchema()
		if root == nil {
			return nil, d, fmt.Errorf("openapi: CRD %s has no openAPIV3Schema", doc.Spec.Names.Kind)
		}
		res.Name = skemats.TypeName(doc.Spec.Names.Kind)
		rootPath = "/spec/versions/schema/openAPIV3Schema"
	case doc.OpenAPIV3Schema != nil:
		root = doc.OpenAPIV3Schema
		rootPath = "/openAPIV3Schema"
	}

	for _, owner := range []*jsonschema.Schema{&doc.Schema, root} {
		if err := im.addDefs(refPrefixes[0], owner.Defs); err != nil {
			return nil, d, err
		}
		if err := im.addDefs(refPrefixes[1], owner.Definitions); err != nil {
			return nil, d, err
		}
	}
	if doc.Components != nil {
		if err := im.addDefs(refPrefixes[2], doc.Components.Schemas); err != nil {
			return nil, d, err
		}
	}

	for _, def := range im.order {
		n, err := im.node(def.schema, def.ref[1:])
		if err != nil {
			return nil, d, err
		}
		def.node = n
		res.Declarations = append(res.Declarations, skemats.Declaration{
			Name:        def.name,
			Node:        n,
			Description: descriptionOf(def.schema),
		})
	}

	if hasSchemaContent(root) {
		n, err := im.node(root, rootPath)
		if err != nil {
			return nil, d, err
		}
		res.Root = n
		res.Description = root.Description
		if res.Name == "" && root.Title != "" {
			res.Name = skemats.TypeName(root.Title)
		}
	} else if len(res.Declarations) == 0 {
		d.warnf("document has neither a root schema nor named schemas")
	}
	return res, d, nil
}

func descriptionOf(s *jsonschema.Schema) string {
	if s == nil {
		return ""
	}
	return s.Description
}

// hasSchemaContent reports whether s says anything about a value beyond
// holding definitions.
func hasSchemaContent(s *jsonschema.Schema) bool {
	if s == nil {
		return false
	}
	return len(s.Type) > 0 || s.Properties != nil || s.AdditionalProperties != nil ||
		s.Items != nil || len(s.PrefixItems) > 0 || len(s.Enum) > 0 || s.Const != nil ||
		len(s.OneOf) > 0 || len(s.AnyOf) > 0 || len(s.AllOf) > 0 || s.Ref != "" ||
		s.IntOrString || s.PreserveUnknownFields
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
