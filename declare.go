package skemats

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GeneratedHeader is the first line of files produced by RenderFile.
const GeneratedHeader = "// Code generated by skemats. DO NOT EDIT."

// Declaration names a schema for emission as a type alias.
type Declaration struct {
	Name        string
	Node        Node
	Description string // Rendered as a JSDoc block when non-empty.
}

// Declare renders d as "export type Name = T;" followed by a newline.
func (t *Translator) Declare(d Declaration) (string, error) {
	ts, err := t.Translate(d.Node)
	if err != nil {
		return "", fmt.Errorf("declare %s: %w", d.Name, err)
	}
	var sb strings.Builder
	if d.Description != "" {
		sb.WriteString(jsDoc(d.Description))
	}
	fmt.Fprintf(&sb, "export type %s = %s;\n", d.Name, ts)
	return sb.String(), nil
}

// RenderFile renders decls in order into a TypeScript source file. header
// lines are emitted as line comments below GeneratedHeader.
func (t *Translator) RenderFile(header string, decls []Declaration) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(GeneratedHeader)
	sb.WriteString("\n")
	if header != "" {
		for _, line := range strings.Split(strings.TrimRight(header, "\n"), "\n") {
			if line == "" {
				sb.WriteString("//\n")
				continue
			}
			sb.WriteString("// " + line + "\n")
		}
	}
	seen := make(map[string]bool, len(decls))
	for _, d := range decls {
		if seen[d.Name] {
			return nil, fmt.Errorf("declare %s: duplicate declaration name", d.Name)
		}
		seen[d.Name] = true
		s, err := t.Declare(d)
		if err != nil {
			return nil, err
		}
		sb.WriteString("\n")
		sb.WriteString(s)
	}
	return []byte(sb.String()), nil
}

// jsDoc generates a JSDoc comment for a declaration.
func jsDoc(description string) string {
	lines := strings.Split(strings.TrimSpace(description), "\n")
	if len(lines) == 1 {
		return fmt.Sprintf("/** %s */\n", lines[0])
	}
	var sb strings.Builder
	sb.WriteString("/**\n")
	for _, line := range lines {
		if line == "" {
			sb.WriteString(" *\n")
		} else {
			fmt.Fprintf(&sb, " * %s\n", line)
		}
	}
	sb.WriteString(" */\n")
	return sb.String()
}

// TypeName derives a PascalCase identifier from an arbitrary schema name such
// as a $defs key or a CRD kind ("user-profile" -> "UserProfile").
func TypeName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$')
	})
	caser := cases.Title(language.Und, cases.NoLower)
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(caser.String(w))
	}
	out := sb.String()
	if out == "" {
		return "_"
	}
	if r := []rune(out)[0]; unicode.IsDigit(r) {
		out = "_" + out
	}
	return out
}
