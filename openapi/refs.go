package openapi

import (
	"fmt"
	"strings"

	skemats "github.com/reoring/skemats"
	"github.com/reoring/skemats/i18n"
	"github.com/reoring/skemats/jsonschema"
)

// definition is a named schema reachable through a local $ref.
type definition struct {
	ref    string // "#/$defs/Name"
	key    string // "Name"
	name   string // TypeScript declaration name
	schema *jsonschema.Schema
	node   skemats.Node
}

var refPrefixes = []string{"#/$defs/", "#/definitions/", "#/components/schemas/"}

// addDefs registers the named schemas of p under prefix in document order.
func (im *importer) addDefs(prefix string, p *jsonschema.Properties) error {
	for _, k := range p.Keys() {
		ref := prefix + escapeRefToken(k)
		if _, ok := im.defs[ref]; ok {
			continue
		}
		s, _ := p.Get(k)
		name := skemats.TypeName(k)
		if prev, ok := im.names[name]; ok {
			return fmt.Errorf("openapi: %s and %s both map to type %s", prev, ref, name)
		}
		im.names[name] = ref
		d := &definition{ref: ref, key: k, name: name, schema: s}
		im.defs[ref] = d
		im.order = append(im.order, d)
	}
	return nil
}

// refNode returns the node standing for a local $ref.
func (im *importer) refNode(ref, path string) (skemats.Node, error) {
	d, ok := im.defs[ref]
	if !ok {
		if !isLocalRef(ref) {
			return nil, fmt.Errorf("openapi: %s: $ref %q is not a local reference", pathOrRoot(path), ref)
		}
		return nil, fmt.Errorf("openapi: %s: %s: $ref %q", pathOrRoot(path), i18n.T("unknown_ref", nil), ref)
	}
	if im.opts.Inline {
		return &skemats.Lazy{Getter: func() skemats.Node { return d.node }}, nil
	}
	return &skemats.Ref{Name: d.name, Getter: func() skemats.Node { return d.node }}, nil
}

func isLocalRef(ref string) bool {
	for _, p := range refPrefixes {
		if strings.HasPrefix(ref, p) {
			return true
		}
	}
	return false
}

// escapeRefToken escapes a key as a JSON pointer token (RFC 6901).
func escapeRefToken(k string) string {
	k = strings.ReplaceAll(k, "~", "~0")
	return strings.ReplaceAll(k, "/", "~1")
}
