package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DefaultFiles are looked up in the working directory when no config file is given.
var DefaultFiles = []string{"skemats.yaml", "skemats.yml", "skemats.json"}

// Config represents the skemats configuration.
type Config struct {
	Header   string   `json:"header,omitempty" yaml:"header,omitempty"`     // Extra comment lines below the generated-code marker
	MaxDepth int      `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"` // Nesting limit for translation (default 256)
	Indent   string   `json:"indent,omitempty" yaml:"indent,omitempty"`     // Object member indent (default four spaces)
	Unknown  string   `json:"unknown,omitempty" yaml:"unknown,omitempty"`   // "prune" (default) or "preserve"
	Inline   bool     `json:"inline,omitempty" yaml:"inline,omitempty"`     // Inline $ref targets instead of naming them
	Targets  []Target `json:"targets" yaml:"targets"`
}

// Target is one input schema rendered to one TypeScript file.
type Target struct {
	Input   string   `json:"input" yaml:"input"`
	Output  string   `json:"output" yaml:"output"`
	CRDKind string   `json:"crdKind,omitempty" yaml:"crdKind,omitempty"` // Select a CRD from a bundle by spec.names.kind
	CRDName string   `json:"crdName,omitempty" yaml:"crdName,omitempty"` // Select a CRD from a bundle by metadata.name
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`       // Declaration name of the root schema
	Include []string `json:"include,omitempty" yaml:"include,omitempty"` // Declaration names to emit (default: all)
}

// Load reads and parses a skemats config file. Files ending in .json are
// decoded as JSON, anything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %q: %w", path, err)
	}
	return &cfg, nil
}

// Find returns the first of DefaultFiles present in dir, or "".
func Find(dir string) string {
	for _, name := range DefaultFiles {
		p := filepath.Join(dir, name)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

// Validate checks the config for logical errors.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("targets must have at least one entry")
	}
	switch c.Unknown {
	case "", "prune", "preserve":
	default:
		return fmt.Errorf("unknown must be \"prune\" or \"preserve\", got %q", c.Unknown)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("maxDepth must not be negative")
	}
	for i, t := range c.Targets {
		if t.Input == "" {
			return fmt.Errorf("targets[%d].input must not be empty", i)
		}
		if t.Output == "" {
			return fmt.Errorf("targets[%d].output must not be empty", i)
		}
		if t.CRDKind != "" && t.CRDName != "" {
			return fmt.Errorf("targets[%d]: crdKind and crdName are mutually exclusive", i)
		}
	}
	return nil
}

// Resolve makes relative target paths relative to dir. "-" is kept as is.
func (c *Config) Resolve(dir string) {
	abs := func(p string) string {
		if p == "-" || p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i := range c.Targets {
		c.Targets[i].Input = abs(c.Targets[i].Input)
		c.Targets[i].Output = abs(c.Targets[i].Output)
	}
}
