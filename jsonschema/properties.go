package jsonschema

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Properties is an ordered map of named schemas. Document order is kept so
// generated object types list fields the way the author wrote them.
type Properties struct {
	keys []string
	m    map[string]*Schema
}

// NewProperties returns an empty ordered map.
func NewProperties() *Properties { return &Properties{m: map[string]*Schema{}} }

// Len returns the number of entries.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the names in document order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Get returns the schema stored under name.
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.m[name]
	return s, ok
}

// Set stores s under name. A new name is appended; an existing one keeps its position.
func (p *Properties) Set(name string, s *Schema) {
	if p.m == nil {
		p.m = map[string]*Schema{}
	}
	if _, ok := p.m[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.m[name] = s
}

func (p *Properties) UnmarshalJSON(b []byte) error {
	var m map[string]*Schema
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	keys, err := objectKeys(b)
	if err != nil {
		return err
	}
	*p = Properties{m: make(map[string]*Schema, len(m))}
	for _, k := range keys {
		p.Set(k, m[k])
	}
	return nil
}

// objectKeys returns the top-level keys of a JSON object in document order.
func objectKeys(b []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("jsonschema: expected object, got %v", tok)
	}
	var keys []string
	depth := 0
	expectKey := true
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				if depth == 0 {
					return keys, nil
				}
				depth--
			}
			if depth == 0 {
				expectKey = true
			}
			continue
		}
		if depth > 0 {
			continue
		}
		if expectKey {
			k, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("jsonschema: expected object key, got %v", tok)
			}
			keys = append(keys, k)
			expectKey = false
		} else {
			expectKey = true
		}
	}
}

func (p *Properties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("jsonschema: line %d: expected mapping", value.Line)
	}
	*p = Properties{m: make(map[string]*Schema, len(value.Content)/2)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var s Schema
		if err := value.Content[i+1].Decode(&s); err != nil {
			return err
		}
		p.Set(value.Content[i].Value, &s)
	}
	return nil
}

// TypeList is the "type" keyword, which may be a single name or a list.
type TypeList []string

// Has reports whether t is listed.
func (l TypeList) Has(t string) bool {
	for _, x := range l {
		if x == t {
			return true
		}
	}
	return false
}

// WithoutNull returns the listed types other than "null".
func (l TypeList) WithoutNull() []string {
	var out []string
	for _, x := range l {
		if x != "null" {
			out = append(out, x)
		}
	}
	return out
}

func (l *TypeList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var many []string
		if err := json.Unmarshal(b, &many); err != nil {
			return err
		}
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*l = TypeList{one}
	return nil
}

func (l *TypeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*l = many
	case yaml.ScalarNode:
		*l = TypeList{value.Value}
	default:
		return fmt.Errorf("jsonschema: line %d: type must be a string or a list", value.Line)
	}
	return nil
}

// BoolOrSchema is additionalProperties: either a boolean or a schema.
// Schema is nil when the keyword held a boolean.
type BoolOrSchema struct {
	Allows bool
	Schema *Schema
}

func (b *BoolOrSchema) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true":
		*b = BoolOrSchema{Allows: true}
		return nil
	case "false":
		*b = BoolOrSchema{}
		return nil
	}
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*b = BoolOrSchema{Allows: true, Schema: &s}
	return nil
}

func (b *BoolOrSchema) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v bool
		if err := value.Decode(&v); err != nil {
			return err
		}
		*b = BoolOrSchema{Allows: v}
		return nil
	}
	var s Schema
	if err := value.Decode(&s); err != nil {
		return err
	}
	*b = BoolOrSchema{Allows: true, Schema: &s}
	return nil
}
