package main

import (
	"fmt"
	"io"

	"github.com/creachadair/ytree"
	"github.com/creachadair/ytree/query"
	"github.com/creachadair/ytree/ypath"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return getPath(cfg, cc.Out, args)
}

// getPath writes the node selected by the path in args[0] from each of the
// inputs named by the remaining args.
func getPath(cfg *GetConfig, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	expr, err := ypath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	q := expr.Query()
	x := cfg.extractor()
	p := cfg.printer(w)
	return eachInput(cfg.MainConfig, args[1:], func(name string, evs ytree.Events) error {
		pos, ok, err := query.Eval(evs, q)
		if err != nil {
			return err
		} else if !ok {
			// A path that selects nothing is not an error.
			theLog.Debug("no match", "input", name, "path", expr.String())
			return nil
		}
		if cfg.Text && evs[pos].Kind == ytree.Scalar {
			return p.word(string(evs[pos].Value))
		}
		text, ok, err := x.Extract(evs, pos)
		if err != nil || !ok {
			return err
		}
		return p.node(text)
	})
}
