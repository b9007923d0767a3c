// Package textdiff renders line-oriented unified diffs of generated files.
package textdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Line is one line of a diff, without its trailing newline.
type Line struct {
	Op   Op
	Text string
}

// Lines returns the line diff turning a into b.
func Lines(a, b string) []Line {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var out []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, l := range splitLines(d.Text) {
			out = append(out, Line{Op: op, Text: l})
		}
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

type entry struct {
	Line
	old, new int
}

// Unified renders the diff from a to b with context lines around each change.
// It returns "" when a and b are equal.
func Unified(oldName, newName, a, b string, context int) string {
	lines := Lines(a, b)
	ents := make([]entry, 0, len(lines))
	o, n := 1, 1
	changed := false
	for _, l := range lines {
		ents = append(ents, entry{Line: l, old: o, new: n})
		switch l.Op {
		case Equal:
			o++
			n++
		case Delete:
			o++
			changed = true
		case Insert:
			n++
			changed = true
		}
	}
	if !changed {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", oldName, newName)
	i := 0
	for i < len(ents) {
		if ents[i].Op == Equal {
			i++
			continue
		}
		start := max(0, i-context)
		end := i
		for j := i; j < len(ents); {
			if ents[j].Op != Equal {
				end = j
				j++
				continue
			}
			k := j
			for k < len(ents) && ents[k].Op == Equal {
				k++
			}
			if k == len(ents) || k-j > 2*context {
				break
			}
			j = k
		}
		stop := min(len(ents), end+1+context)

		oldCount, newCount := 0, 0
		for _, e := range ents[start:stop] {
			if e.Op != Insert {
				oldCount++
			}
			if e.Op != Delete {
				newCount++
			}
		}
		// An empty side starts at the line before the hunk.
		oldStart, newStart := ents[start].old, ents[start].new
		if oldCount == 0 {
			oldStart--
		}
		if newCount == 0 {
			newStart--
		}
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
		for _, e := range ents[start:stop] {
			switch e.Op {
			case Equal:
				sb.WriteString(" ")
			case Delete:
				sb.WriteString("-")
			case Insert:
				sb.WriteString("+")
			}
			sb.WriteString(e.Text)
			sb.WriteString("\n")
		}
		i = stop
	}
	return sb.String()
}
