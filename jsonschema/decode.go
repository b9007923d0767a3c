package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// IsJSON reports whether b looks like a JSON document.
func IsJSON(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && (b[0] == '{' || b[0] == '[')
}

// DecodeJSON decodes a single JSON document.
func DecodeJSON(b []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("jsonschema: decode json: %w", err)
	}
	return &d, nil
}

// DecodeYAML decodes every document of a YAML stream, skipping empty ones.
func DecodeYAML(b []byte) ([]*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	var out []*Document
	for i := 0; ; i++ {
		var n yaml.Node
		if err := dec.Decode(&n); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("jsonschema: decode yaml document %d: %w", i, err)
		}
		if isEmptyYAML(&n) {
			continue
		}
		var d Document
		if err := n.Decode(&d); err != nil {
			return nil, fmt.Errorf("jsonschema: decode yaml document %d: %w", i, err)
		}
		out = append(out, &d)
	}
	return out, nil
}

func isEmptyYAML(n *yaml.Node) bool {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return true
		}
		n = n.Content[0]
	}
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

// DecodeAll decodes b as JSON when it looks like JSON and as a YAML stream otherwise.
func DecodeAll(b []byte) ([]*Document, error) {
	if IsJSON(b) {
		d, err := DecodeJSON(b)
		if err != nil {
			return nil, err
		}
		return []*Document{d}, nil
	}
	return DecodeYAML(b)
}
