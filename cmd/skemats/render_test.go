package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reoring/skemats/internal/config"
)

const widgetBundle = `apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata:
  name: gadgets.example.com
spec:
  names:
    kind: Gadget
  versions:
    - name: v1
      served: true
      schema:
        openAPIV3Schema:
          type: object
---
apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata:
  name: widgets.example.com
spec:
  names:
    kind: Widget
  versions:
    - name: v1
      served: true
      schema:
        openAPIV3Schema:
          type: object
          description: Widget is a test resource.
          properties:
            spec:
              type: object
              required: [size]
              properties:
                size:
                  x-kubernetes-int-or-string: true
                mode:
                  type: string
                  default: fast
                extra:
                  type: object
                  x-kubernetes-preserve-unknown-fields: true
`

func TestRenderCRDKind(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bundle.yaml")
	if err := os.WriteFile(in, []byte(widgetBundle), 0o644); err != nil {
		t.Fatal(err)
	}
	c := &config.Config{Header: "Source: bundle.yaml", Indent: "  "}
	out, err := render(c, config.Target{Input: in, CRDKind: "Widget"}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `// Code generated by skemats. DO NOT EDIT.
// Source: bundle.yaml

/** Widget is a test resource. */
export type Widget = {
  spec: {
    size: number | string;
    mode: string | undefined;
    extra: Record<string, unknown> | undefined;
  } | undefined;
};
`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCRDNameAndStdin(t *testing.T) {
	c := &config.Config{}
	out, err := render(c, config.Target{Input: "-", CRDName: "gadgets.example.com"}, strings.NewReader(widgetBundle))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "export type Gadget = {\n};\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	_, err = render(c, config.Target{Input: "-", CRDName: "nope.example.com"}, strings.NewReader(widgetBundle))
	if err == nil || !strings.Contains(err.Error(), `CRD with name "nope.example.com" not found`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderInclude(t *testing.T) {
	doc := `{"$defs": {"a": {"type": "string"}, "b": {"type": "number"}}}`
	c := &config.Config{}
	out, err := render(c, config.Target{Input: "-", Include: []string{"B"}}, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "// Code generated by skemats. DO NOT EDIT.\n\nexport type B = number;\n"
	if got := string(out); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLoadFromFlags(t *testing.T) {
	cfg := &TargetConfig{MainConfig: &MainConfig{}, Input: "in.json", Preserve: true, MaxDepth: 8}
	c, err := cfg.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &config.Config{
		MaxDepth: 8,
		Unknown:  "preserve",
		Targets:  []config.Target{{Input: "in.json", Output: "-"}},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	cfg.CRDKind, cfg.CRDName = "A", "b"
	if _, err := cfg.load(); err == nil {
		t.Fatal("expected usage error")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skemats.yaml")
	if err := os.WriteFile(path, []byte("targets: [{input: s.json, output: out/s.ts}]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := &TargetConfig{MainConfig: &MainConfig{ConfigFile: path}, Inline: true}
	c, err := cfg.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Inline || c.Targets[0].Input != filepath.Join(dir, "s.json") {
		t.Fatalf("config = %+v", c)
	}
}

func TestWriteDiffPlain(t *testing.T) {
	var buf bytes.Buffer
	writeDiff(&buf, "--- a\n+++ b\n@@ -1,1 +1,1 @@\n-x\n+y\n", false)
	if got := buf.String(); got != "--- a\n+++ b\n@@ -1,1 +1,1 @@\n-x\n+y\n" {
		t.Fatalf("got %q", got)
	}
	if useColor(&buf) {
		t.Fatal("buffers never get color")
	}
}
