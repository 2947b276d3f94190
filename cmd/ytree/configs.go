package main

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/ytree"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	J      bool `cli:"name=j aliases=json desc='write results as JSON'"`
	Color  bool `cli:"name=color desc='write results with color'"`
	JWCC   bool `cli:"name=jwcc desc='accept JSON with comments and trailing commas'"`
	V      bool `cli:"name=v desc='log debugging detail to stderr'"`
	Indent int  `cli:"name=indent desc='indentation of YAML results, 2 to 9'"`
	Limit  int  `cli:"name=limit desc='maximum size of a single result in bytes'"`

	Enc ytree.Encoding

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// closeOut closes the -o output file, if there is one. An error closing the
// file is reported only if err == nil.
func (cfg *MainConfig) closeOut(err error) error {
	if cfg.CloseOut == nil {
		return err
	}
	cerr := cfg.CloseOut()
	cfg.CloseOut = nil
	if cerr != nil && err == nil {
		return fmt.Errorf("closing %s: %w", cfg.Out, cerr)
	}
	return err
}

func (cfg *MainConfig) encOpt(_ *cli.Context, v string) (any, error) {
	e, err := ytree.ParseEncoding(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Enc = e
	return e, nil
}

// newStream returns a stream reading r with the input settings of cfg.
func (cfg *MainConfig) newStream(r io.Reader) *ytree.Stream {
	s := ytree.NewStream(r)
	s.SetEncoding(cfg.Enc)
	s.AllowJWCC(cfg.JWCC)
	s.SetLogger(theLog)
	return s
}

func (cfg *MainConfig) extractor() *ytree.Extractor {
	x := ytree.NewExtractor()
	if cfg.Indent != 0 {
		x.SetIndent(cfg.Indent)
	}
	if cfg.Limit > 0 {
		x.SetLimit(cfg.Limit)
	}
	x.SetLogger(theLog)
	return x
}

// useColor reports whether output to w should be colored. An explicit -color
// setting wins; otherwise color is used when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.colorSet() {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// colorSet reports whether -color was given explicitly on the command line.
func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) printer(w io.Writer) *printer {
	return newPrinter(w, cfg.J, cfg.useColor(w))
}

type TypeConfig struct {
	*MainConfig

	Type *cli.Command
}

type LenConfig struct {
	*MainConfig

	Len *cli.Command
}

type GetConfig struct {
	*MainConfig

	Text bool `cli:"name=t aliases=text desc='print scalar results as plain text'"`
	Get  *cli.Command
}

type EachConfig struct {
	*MainConfig

	Keys bool `cli:"name=k aliases=keys desc='print only the keys of a mapping'"`
	Each *cli.Command
}

type EventsConfig struct {
	*MainConfig

	Events *cli.Command
}
