package main

import (
	"encoding/json"
	"fmt"

	"github.com/xmlv-format/go-xmlv/encode"
	"github.com/xmlv-format/go-xmlv/format"
	"github.com/xmlv-format/go-xmlv/gomap"
	"github.com/xmlv-format/go-xmlv/ir"
	"github.com/xmlv-format/go-xmlv/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

const (
	xmlFormat  = "xml"
	yamlFormat = "yaml"
	jsonFormat = "json"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	from, to, err := cfg.formats()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		node, err := decodeAs(cfg.MainConfig, d, from)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		out, err := encodeAs(cfg.MainConfig, node, to)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if _, err := fmt.Fprintln(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *ConvertConfig) formats() (from, to string, err error) {
	if from, err = parseFormat(cfg.From, xmlFormat); err != nil {
		return "", "", err
	}
	def := yamlFormat
	if from != xmlFormat {
		def = xmlFormat
	}
	if to, err = parseFormat(cfg.To, def); err != nil {
		return "", "", err
	}
	return from, to, nil
}

func parseFormat(s, def string) (string, error) {
	switch s {
	case "":
		return def, nil
	case "x", xmlFormat:
		return xmlFormat, nil
	case "y", "yml", yamlFormat:
		return yamlFormat, nil
	case "j", jsonFormat:
		return jsonFormat, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", cli.ErrUsage, s)
}

func decodeAs(cfg *MainConfig, data []byte, fmat string) (*ir.Node, error) {
	switch fmat {
	case xmlFormat:
		return parse.Parse(data, cfg.parseOpts()...)
	case yamlFormat:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return gomap.ToIR(v)
	case jsonFormat:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return gomap.ToIR(v)
	}
	return nil, fmt.Errorf("unknown format %q", fmat)
}

func encodeAs(cfg *MainConfig, node *ir.Node, fmat string) (string, error) {
	switch fmat {
	case xmlFormat:
		s, err := encode.EncodeString(node, encode.Declaration(false))
		if err != nil {
			return "", err
		}
		return format.Pretty(s, format.WithIndent(cfg.indent())), nil
	case yamlFormat:
		d, err := yaml.Marshal(gomap.ToAny(node))
		if err != nil {
			return "", err
		}
		return string(d), nil
	case jsonFormat:
		d, err := json.MarshalIndent(gomap.ToAny(node), "", cfg.indent())
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	return "", fmt.Errorf("unknown format %q", fmat)
}
