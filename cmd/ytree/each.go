package main

import (
	"fmt"
	"io"

	"github.com/creachadair/ytree"
	"github.com/scott-cotton/cli"
)

func each(cfg *EachConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Each.Parse(cc, args)
	if err != nil {
		cfg.Each.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachElement(cfg, cc.Out, args)
}

func eachElement(cfg *EachConfig, w io.Writer, args []string) error {
	x := cfg.extractor()
	p := cfg.printer(w)
	return eachInput(cfg.MainConfig, args, func(_ string, evs ytree.Events) error {
		it, err := ytree.NewIterator(evs)
		if err != nil {
			return err
		}
		it.SetExtractor(x)
		mapping := evs[ytree.RootIndex].Kind == ytree.MappingStart
		if cfg.Keys && !mapping {
			return fmt.Errorf("%w: -keys requires a mapping", cli.ErrUsage)
		}
		for it.Next() {
			el := it.Element()
			if cfg.Keys {
				err = p.word(string(el.Key))
			} else {
				err = p.element(el, mapping)
			}
			if err != nil {
				return err
			}
		}
		return it.Err()
	})
}
