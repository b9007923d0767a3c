package openapi

import "fmt"

// UnknownBehavior configures how objects that admit unknown fields are typed.
type UnknownBehavior int

const (
	// UnknownPrune drops unknown fields: objects get no index signature.
	UnknownPrune UnknownBehavior = iota
	// UnknownPreserve keeps them: additionalProperties: true and
	// x-kubernetes-preserve-unknown-fields add a catch-all of unknown.
	UnknownPreserve
)

// Options controls import of JSON Schema, OpenAPI v3 and CRD schemas.
type Options struct {
	Unknown UnknownBehavior
	// Inline resolves $ref targets in place through lazy nodes instead of
	// referring to the generated declarations by name.
	Inline bool
}

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
