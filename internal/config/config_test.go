package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "skemats.yaml")
	content := `header: |
  Source: crds/
maxDepth: 64
unknown: preserve
targets:
  - input: crds/bundle.yaml
    output: gen/widget.ts
    crdKind: Widget
    include: [Widget]
  - input: schemas/user.json
    output: gen/user.ts
    name: User
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Config{
		Header:   "Source: crds/\n",
		MaxDepth: 64,
		Unknown:  "preserve",
		Targets: []Target{
			{Input: "crds/bundle.yaml", Output: "gen/widget.ts", CRDKind: "Widget", Include: []string{"Widget"}},
			{Input: "schemas/user.json", Output: "gen/user.ts", Name: "User"},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "skemats.json")
	content := `{
		"indent": "  ",
		"inline": true,
		"targets": [{"input": "a.json", "output": "-", "crdName": "widgets.example.com"}]
	}`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Indent != "  " || !cfg.Inline {
		t.Fatalf("unexpected settings: %+v", cfg)
	}
	if len(cfg.Targets) != 1 || cfg.Targets[0].CRDName != "widgets.example.com" {
		t.Fatalf("unexpected targets: %+v", cfg.Targets)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no targets", "header: x\n", "targets must have at least one entry"},
		{"missing input", "targets: [{output: a.ts}]\n", "targets[0].input must not be empty"},
		{"missing output", "targets: [{input: a.json}]\n", "targets[0].output must not be empty"},
		{"bad unknown", "unknown: keep\ntargets: [{input: a, output: b}]\n", `unknown must be "prune" or "preserve"`},
		{"both selectors", "targets: [{input: a, output: b, crdKind: K, crdName: n}]\n", "mutually exclusive"},
		{"negative depth", "maxDepth: -1\ntargets: [{input: a, output: b}]\n", "maxDepth must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "skemats.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(configPath)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFindAndResolve(t *testing.T) {
	dir := t.TempDir()
	if got := Find(dir); got != "" {
		t.Fatalf("expected no config, got %q", got)
	}
	p := filepath.Join(dir, "skemats.json")
	if err := os.WriteFile(p, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Find(dir); got != p {
		t.Fatalf("Find = %q, want %q", got, p)
	}

	cfg := &Config{Targets: []Target{{Input: "in.yaml", Output: "-"}, {Input: "/abs/in.json", Output: "out.ts"}}}
	cfg.Resolve(dir)
	want := []Target{
		{Input: filepath.Join(dir, "in.yaml"), Output: "-"},
		{Input: "/abs/in.json", Output: filepath.Join(dir, "out.ts")},
	}
	if diff := cmp.Diff(want, cfg.Targets); diff != "" {
		t.Fatalf("resolved targets mismatch (-want +got):\n%s", diff)
	}
}
