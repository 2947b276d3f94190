package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "enc",
			Description: "input encoding: utf-8, utf-16le, utf-16be",
			Type:        cli.NamedFuncOpt(cfg.encOpt, "(encoding)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ytree").
		WithSynopsis("ytree [opts] command [opts]").
		WithDescription("ytree inspects YAML documents without building a tree.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ytreeMain(cfg, cc, args)
		}).
		WithSubs(
			TypeCommand(cfg),
			LenCommand(cfg),
			GetCommand(cfg),
			EachCommand(cfg),
			EventsCommand(cfg))
}

func TypeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("type").
		WithAliases("t", "ty").
		WithSynopsis("type [files]").
		WithDescription("print the type of the root node of each document").
		WithRun(func(cc *cli.Context, args []string) error {
			return typeOf(cfg, cc, args)
		})
	cfg.Type = cmd
	return cmd
}

func LenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LenConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("len").
		WithAliases("l", "count").
		WithSynopsis("len [files]").
		WithDescription("print the number of elements of each top-level sequence").
		WithRun(func(cc *cli.Context, args []string) error {
			return length(cfg, cc, args)
		})
	cfg.Len = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get [opts] <path> [files]").
		WithDescription("print the node selected by a path such as $.a[0]..b").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func EachCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EachConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("each").
		WithAliases("e", "elems").
		WithSynopsis("each [opts] [files]").
		WithDescription("print each element of a sequence or each pair of a mapping").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return each(cfg, cc, args)
		})
	cfg.Each = cmd
	return cmd
}

func EventsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EventsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("events").
		WithAliases("ev").
		WithSynopsis("events [files]").
		WithDescription("print the parse events of each document in test-suite notation").
		WithRun(func(cc *cli.Context, args []string) error {
			return events(cfg, cc, args)
		})
	cfg.Events = cmd
	return cmd
}
