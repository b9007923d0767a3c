package jsonschema

// Schema is the subset of JSON Schema (draft 2020-12 and OpenAPI v3 flavour)
// understood by the importer. Object properties keep their document order.
type Schema struct {
	// Core
	Type        TypeList `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string   `json:"format,omitempty" yaml:"format,omitempty"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any      `json:"default,omitempty" yaml:"default,omitempty"`
	Enum        []any    `json:"enum,omitempty" yaml:"enum,omitempty"`
	// Const is nil when absent; a null const cannot be told apart and is ignored.
	Const    any  `json:"const,omitempty" yaml:"const,omitempty"`
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	// Object
	Properties           *Properties   `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string      `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties *BoolOrSchema `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array
	Items       *Schema   `json:"items,omitempty" yaml:"items,omitempty"`
	PrefixItems []*Schema `json:"prefixItems,omitempty" yaml:"prefixItems,omitempty"`

	// Union
	OneOf         []*Schema      `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AnyOf         []*Schema      `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	AllOf         []*Schema      `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	Discriminator *Discriminator `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`

	// References
	Ref         string      `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Defs        *Properties `json:"$defs,omitempty" yaml:"$defs,omitempty"`
	Definitions *Properties `json:"definitions,omitempty" yaml:"definitions,omitempty"`

	// Kubernetes structural schema extensions
	PreserveUnknownFields bool `json:"x-kubernetes-preserve-unknown-fields,omitempty" yaml:"x-kubernetes-preserve-unknown-fields,omitempty"`
	IntOrString           bool `json:"x-kubernetes-int-or-string,omitempty" yaml:"x-kubernetes-int-or-string,omitempty"`
}

// Discriminator holds OpenAPI discriminator info for oneOf schemas.
type Discriminator struct {
	PropertyName string            `json:"propertyName" yaml:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty" yaml:"mapping,omitempty"`
}

// IsRequired reports whether name is listed under required.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Document is a decoded input file. Besides a plain schema at the root it
// recognises OpenAPI documents (components.schemas), bare structural schemas
// (openAPIV3Schema) and Kubernetes CustomResourceDefinitions.
type Document struct {
	Schema `yaml:",inline"`

	APIVersion      string      `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Kind            string      `json:"kind,omitempty" yaml:"kind,omitempty"`
	Metadata        *Metadata   `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Spec            *CRDSpec    `json:"spec,omitempty" yaml:"spec,omitempty"`
	OpenAPIV3Schema *Schema     `json:"openAPIV3Schema,omitempty" yaml:"openAPIV3Schema,omitempty"`
	Components      *Components `json:"components,omitempty" yaml:"components,omitempty"`
}

type Metadata struct {
	Name string `json:"name" yaml:"name"`
}

// CRDSpec is the part of a CustomResourceDefinition spec carrying schemas.
type CRDSpec struct {
	Names      CRDNames       `json:"names" yaml:"names"`
	Versions   []CRDVersion   `json:"versions,omitempty" yaml:"versions,omitempty"`
	Validation *CRDValidation `json:"validation,omitempty" yaml:"validation,omitempty"`
}

type CRDNames struct {
	Kind string `json:"kind" yaml:"kind"`
}

type CRDVersion struct {
	Name   string         `json:"name" yaml:"name"`
	Served *bool          `json:"served,omitempty" yaml:"served,omitempty"`
	Schema *CRDValidation `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// CRDValidation wraps openAPIV3Schema in versions[].schema and in the legacy
// spec.validation.
type CRDValidation struct {
	OpenAPIV3Schema *Schema `json:"openAPIV3Schema,omitempty" yaml:"openAPIV3Schema,omitempty"`
}

// Components is the OpenAPI components object.
type Components struct {
	Schemas *Properties `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}

// IsCRD reports whether d is a CustomResourceDefinition.
func (d *Document) IsCRD() bool { return d.Kind == "CustomResourceDefinition" && d.Spec != nil }

// CRDSchema returns the structural schema of a CRD, preferring the first
// served version, then the first version with a schema, then the legacy
// spec.validation. It returns nil when d carries none.
func (d *Document) CRDSchema() *Schema {
	if d.Spec == nil {
		return nil
	}
	var first *Schema
	for _, v := range d.Spec.Versions {
		if v.Schema == nil || v.Schema.OpenAPIV3Schema == nil {
			continue
		}
		served := v.Served == nil || *v.Served
		if served {
			return v.Schema.OpenAPIV3Schema
		}
		if first == nil {
			first = v.Schema.OpenAPIV3Schema
		}
	}
	if first != nil {
		return first
	}
	if d.Spec.Validation != nil {
		return d.Spec.Validation.OpenAPIV3Schema
	}
	return nil
}
