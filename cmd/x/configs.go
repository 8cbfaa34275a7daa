package main

import (
	"io"
	"os"
	"strings"

	"github.com/xmlv-format/go-xmlv/format"
	"github.com/xmlv-format/go-xmlv/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='render with color'"`
	Indent string `cli:"name=indent desc='indent unit for pretty output'"`
	Arrays string `cli:"name=a aliases=arrays desc='comma separated tags always parsed as arrays'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Arrays == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(cfg.Arrays, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return []parse.ParseOption{parse.ArrayTags(tags...)}
}

func (cfg *MainConfig) indent() string {
	if cfg.Indent == "" {
		return "  "
	}
	return cfg.Indent
}

func (cfg *MainConfig) fmtOpts(w io.Writer) []format.Option {
	res := []format.Option{format.WithIndent(cfg.indent())}
	if cfg.Color {
		res = append(res, format.WithColors(format.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, format.WithColors(format.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Minify bool `cli:"name=m desc='minify instead of prettifying'"`
	View   *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	To   string `cli:"name=to desc='target format: yaml/y, json/j, xml/x'"`
	From string `cli:"name=from desc='source format: yaml/y, json/j, xml/x'"`

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
