package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"
)

func gen(cfg *TargetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		cfg.Command.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: gen takes no arguments, got %v", cli.ErrUsage, args)
	}
	c, err := cfg.load()
	if err != nil {
		return err
	}
	for _, t := range c.Targets {
		out, err := render(c, t, cc.In)
		if err != nil {
			return err
		}
		if t.Output == "-" {
			if _, err := cc.Out.Write(out); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(t.Output), 0o755); err != nil {
			return fmt.Errorf("error creating output directory for %s: %w", t.Output, err)
		}
		if err := os.WriteFile(t.Output, out, 0o644); err != nil {
			return fmt.Errorf("error writing %s: %w", t.Output, err)
		}
		theLog.Info("wrote", "output", t.Output)
	}
	return nil
}
