package openapi

import (
	"errors"
	"fmt"

	"github.com/reoring/skemats/jsonschema"
)

// ImportBytes decodes data as JSON or YAML and imports its first document.
// CRDs and bare openAPIV3Schema documents are unwrapped.
func ImportBytes(data []byte, opts Options) (*Result, Diag, error) {
	docs, err := jsonschema.DecodeAll(data)
	if err != nil {
		return nil, &simpleDiag{}, err
	}
	if len(docs) == 0 {
		return nil, &simpleDiag{}, errors.New("openapi: input contains no document")
	}
	res, diag, err := Import(docs[0], opts)
	if err == nil && len(docs) > 1 {
		diag.(*simpleDiag).warnf("only the first of %d documents imported; select a CRD by kind or name", len(docs))
	}
	return res, diag, err
}

// ImportYAMLForCRDKind scans a multi-document YAML (e.g. a CRD bundle) and
// imports the first CustomResourceDefinition whose spec.names.kind matches.
func ImportYAMLForCRDKind(data []byte, kind string, opts Options) (*Result, Diag, error) {
	return importCRD(data, opts, fmt.Sprintf("kind %q", kind), func(d *jsonschema.Document) bool {
		return d.Spec.Names.Kind == kind
	})
}

// ImportYAMLForCRDName scans a multi-document YAML and imports the CRD with
// the given metadata.name.
func ImportYAMLForCRDName(data []byte, name string, opts Options) (*Result, Diag, error) {
	return importCRD(data, opts, fmt.Sprintf("name %q", name), func(d *jsonschema.Document) bool {
		return d.Metadata != nil && d.Metadata.Name == name
	})
}

func importCRD(data []byte, opts Options, what string, match func(*jsonschema.Document) bool) (*Result, Diag, error) {
	docs, err := jsonschema.DecodeAll(data)
	if err != nil {
		return nil, &simpleDiag{}, err
	}
	for _, d := range docs {
		if d.IsCRD() && match(d) {
			return Import(d, opts)
		}
	}
	return nil, &simpleDiag{}, fmt.Errorf("openapi: CRD with %s not found in bundle", what)
}
