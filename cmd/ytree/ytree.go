package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/creachadair/ytree"
	"github.com/scott-cotton/cli"
)

func ytreeMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() { err = cfg.closeOut(err) }()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.V {
		logLevel.Set(slog.LevelDebug)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// eachInput calls f with the events of each named input in turn. The name "-"
// denotes stdin, as does an empty list of names.
func eachInput(cfg *MainConfig, names []string, f func(name string, evs ytree.Events) error) error {
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		evs, err := readEvents(cfg, name)
		if err != nil {
			return err
		}
		if err := f(name, evs); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func readEvents(cfg *MainConfig, name string) (ytree.Events, error) {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}
	theLog.Debug("reading input", "name", name, "encoding", cfg.Enc)
	evs, err := cfg.newStream(r).Events()
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	return evs, nil
}
