package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/reoring/skemats/i18n"
	"github.com/reoring/skemats/internal/textdiff"
	"github.com/scott-cotton/cli"
)

const diffContext = 3

func check(cfg *TargetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		cfg.Command.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: check takes no arguments, got %v", cli.ErrUsage, args)
	}
	c, err := cfg.load()
	if err != nil {
		return err
	}
	colors := useColor(cc.Out)
	stale := 0
	for _, t := range c.Targets {
		if t.Output == "-" {
			return fmt.Errorf("%w: check needs an output file for %s", cli.ErrUsage, t.Input)
		}
		want, err := render(c, t, cc.In)
		if err != nil {
			return err
		}
		have, err := os.ReadFile(t.Output)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading %s: %w", t.Output, err)
		}
		d := textdiff.Unified(t.Output, t.Output+" (generated)", string(have), string(want), diffContext)
		if d == "" {
			theLog.Debug("up to date", "output", t.Output)
			continue
		}
		stale++
		writeDiff(cc.Out, d, colors)
	}
	if stale > 0 {
		theLog.Error(i18n.T("stale_output", nil), "count", stale, "hint", "run skemats gen")
		return cli.ExitCodeErr(1)
	}
	return nil
}

func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func writeDiff(w io.Writer, d string, colors bool) {
	for _, line := range strings.SplitAfter(d, "\n") {
		if line == "" {
			continue
		}
		if colors {
			switch {
			case strings.HasPrefix(line, "@@"):
				line = color.CyanString("%s", line)
			case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
				line = color.New(color.Bold).Sprint(line)
			case strings.HasPrefix(line, "-"):
				line = color.RedString("%s", line)
			case strings.HasPrefix(line, "+"):
				line = color.GreenString("%s", line)
			}
		}
		fmt.Fprint(w, line)
	}
}
