package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/reoring/skemats/internal/config"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='configuration file (yaml or json, default ./skemats.yaml)'"`
	Verbose    bool   `cli:"name=v desc='log debug messages'"`

	Main *cli.Command
}

// TargetConfig holds the options shared by gen and check. When -i is given
// the config file is ignored and a single target is built from the flags.
type TargetConfig struct {
	*MainConfig

	Input    string `cli:"name=i desc='input schema (json, yaml, openapi or crd; - for stdin)'"`
	Output   string `cli:"name=o desc='output file (default stdout for gen)'"`
	CRDKind  string `cli:"name=crd-kind desc='select the CRD with this spec.names.kind'"`
	CRDName  string `cli:"name=crd-name desc='select the CRD with this metadata.name'"`
	Name     string `cli:"name=name desc='declaration name of the root schema'"`
	MaxDepth int    `cli:"name=max-depth desc='maximum nesting depth (default 256)'"`
	Preserve bool   `cli:"name=preserve desc='type unknown fields as unknown'"`
	Inline   bool   `cli:"name=inline desc='inline $ref targets'"`

	Command *cli.Command
}

// load returns the effective configuration.
func (cfg *TargetConfig) load() (*config.Config, error) {
	if cfg.Input != "" {
		if cfg.CRDKind != "" && cfg.CRDName != "" {
			return nil, fmt.Errorf("%w: -crd-kind and -crd-name are mutually exclusive", cli.ErrUsage)
		}
		c := &config.Config{
			MaxDepth: cfg.MaxDepth,
			Inline:   cfg.Inline,
			Targets: []config.Target{{
				Input:   cfg.Input,
				Output:  cfg.Output,
				CRDKind: cfg.CRDKind,
				CRDName: cfg.CRDName,
				Name:    cfg.Name,
			}},
		}
		if c.Targets[0].Output == "" {
			c.Targets[0].Output = "-"
		}
		if cfg.Preserve {
			c.Unknown = "preserve"
		}
		return c, nil
	}

	path := cfg.ConfigFile
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path = config.Find(wd)
		if path == "" {
			return nil, fmt.Errorf("%w: no -i input given and no %s found", cli.ErrUsage, config.DefaultFiles[0])
		}
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.Resolve(filepath.Dir(path))
	if cfg.MaxDepth > 0 {
		c.MaxDepth = cfg.MaxDepth
	}
	if cfg.Preserve {
		c.Unknown = "preserve"
	}
	if cfg.Inline {
		c.Inline = true
	}
	theLog.Debug("loaded config", "path", path, "targets", len(c.Targets))
	return c, nil
}
