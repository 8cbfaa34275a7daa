package main

import (
	"fmt"

	"github.com/xmlv-format/go-xmlv/encode"
	"github.com/xmlv-format/go-xmlv/format"
	"github.com/xmlv-format/go-xmlv/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		s, err := canonical(cfg.MainConfig, d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if cfg.Minify {
			s = format.Minify(s)
		} else {
			s = format.Pretty(s, cfg.fmtOpts(cc.Out)...)
		}
		if _, err := fmt.Fprintln(cc.Out, s); err != nil {
			return err
		}
	}
	return nil
}

// canonical round trips an XML document through the value model,
// yielding one normalized rendering per input.
func canonical(cfg *MainConfig, data []byte) (string, error) {
	node, err := parse.Parse(data, cfg.parseOpts()...)
	if err != nil {
		return "", err
	}
	return encode.EncodeString(node, encode.Declaration(false))
}
