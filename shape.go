package skemats

import "strings"

// objectShape is the intermediate form of an object type: an ordered list of
// entries whose values are already rendered type expressions. Values may span
// several lines when they are nested shapes themselves.
type objectShape struct {
	entries []shapeEntry
}

type shapeEntry struct {
	key   string
	value string
}

func (s *objectShape) add(key, value string) {
	s.entries = append(s.entries, shapeEntry{key: key, value: value})
}

// render writes the shape as a brace-delimited block. Each entry sits on its
// own line one indent level deep; continuation lines of multi-line values are
// shifted by the same amount so nested shapes stay aligned.
func (s *objectShape) render(indent string) string {
	b := &strings.Builder{}
	b.WriteString("{\n")
	for _, e := range s.entries {
		b.WriteString(indent)
		b.WriteString(quoteKey(e.key))
		b.WriteString(": ")
		b.WriteString(indentContinuation(e.value, indent))
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// indentContinuation prefixes every line but the first with indent.
func indentContinuation(s, indent string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	return strings.ReplaceAll(s, "\n", "\n"+indent)
}

// withCatchall intersects a rendered shape with an index signature.
func withCatchall(shape, catchall string) string {
	return shape + " & { [key: string]: " + catchall + " }"
}
