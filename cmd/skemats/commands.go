package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "skemats").
		WithSynopsis("skemats [opts] command [opts]").
		WithDescription("skemats renders JSON Schema, OpenAPI and CRD schemas as TypeScript types.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return skematsMain(cfg, cc, args)
		}).
		WithSubs(
			GenCommand(cfg),
			CheckCommand(cfg))
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TargetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "gen").
		WithAliases("g").
		WithSynopsis("gen [-i input -o output] [opts]").
		WithDescription("generate TypeScript declarations for each configured target").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TargetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "check").
		WithAliases("c").
		WithSynopsis("check [-i input -o output] [opts]").
		WithDescription("verify generated files are up to date, printing a diff when they are not").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
