package main

import (
	"io"

	"github.com/creachadair/ytree"
	"github.com/scott-cotton/cli"
)

func typeOf(cfg *TypeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Type.Parse(cc, args)
	if err != nil {
		cfg.Type.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return writeTypes(cfg.MainConfig, cc.Out, args)
}

func writeTypes(cfg *MainConfig, w io.Writer, args []string) error {
	p := cfg.printer(w)
	return eachInput(cfg, args, func(_ string, evs ytree.Events) error {
		t, err := ytree.Classify(evs)
		if err != nil {
			return err
		}
		return p.word(t.String())
	})
}

func length(cfg *LenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Len.Parse(cc, args)
	if err != nil {
		cfg.Len.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return writeLengths(cfg.MainConfig, cc.Out, args)
}

func writeLengths(cfg *MainConfig, w io.Writer, args []string) error {
	p := cfg.printer(w)
	return eachInput(cfg, args, func(_ string, evs ytree.Events) error {
		n, err := ytree.CountTopLevel(evs)
		if err != nil {
			return err
		}
		return p.number(n)
	})
}

func events(cfg *EventsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Events.Parse(cc, args)
	if err != nil {
		cfg.Events.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return writeEvents(cfg.MainConfig, cc.Out, args)
}

func writeEvents(cfg *MainConfig, w io.Writer, args []string) error {
	p := cfg.printer(w)
	return eachInput(cfg, args, func(_ string, evs ytree.Events) error {
		return p.events(evs)
	})
}
