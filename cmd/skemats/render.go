package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	skemats "github.com/reoring/skemats"
	"github.com/reoring/skemats/internal/config"
	"github.com/reoring/skemats/openapi"
)

// render imports t.Input and renders the selected declarations.
func render(c *config.Config, t config.Target, stdin io.Reader) ([]byte, error) {
	data, err := readInput(t.Input, stdin)
	if err != nil {
		return nil, err
	}
	opts := openapi.Options{Inline: c.Inline}
	if c.Unknown == "preserve" {
		opts.Unknown = openapi.UnknownPreserve
	}

	var (
		res  *openapi.Result
		diag openapi.Diag
	)
	switch {
	case t.CRDKind != "":
		res, diag, err = openapi.ImportYAMLForCRDKind(data, t.CRDKind, opts)
	case t.CRDName != "":
		res, diag, err = openapi.ImportYAMLForCRDName(data, t.CRDName, opts)
	default:
		res, diag, err = openapi.ImportBytes(data, opts)
	}
	if diag != nil {
		for _, w := range diag.Warnings() {
			theLog.Warn("import", "input", t.Input, "warning", w)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("error importing %s: %w", t.Input, err)
	}

	decls, err := res.Decls(t.Name)
	if err != nil {
		return nil, fmt.Errorf("error importing %s: %w", t.Input, err)
	}
	if len(t.Include) > 0 {
		decls = slices.DeleteFunc(decls, func(d skemats.Declaration) bool {
			return !slices.Contains(t.Include, d.Name)
		})
	}
	theLog.Debug("rendering", "input", t.Input, "declarations", len(decls))

	tr := skemats.New(skemats.Options{MaxDepth: c.MaxDepth, Indent: c.Indent})
	out, err := tr.RenderFile(c.Header, decls)
	if err != nil {
		return nil, fmt.Errorf("error rendering %s: %w", t.Input, err)
	}
	return out, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return data, nil
}
