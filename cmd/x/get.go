package main

import (
	"fmt"

	"github.com/xmlv-format/go-xmlv/encode"
	"github.com/xmlv-format/go-xmlv/format"
	"github.com/xmlv-format/go-xmlv/gomap"
	"github.com/xmlv-format/go-xmlv/parse"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("%w: invalid expression %q: %v", cli.ErrUsage, src, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		env, _ := gomap.ToAny(node).(map[string]any)
		res, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("error evaluating %s on %s: %w", src, arg, err)
		}
		if res == nil {
			// no match, no output
			continue
		}
		if s, ok := res.(string); ok {
			if _, err := fmt.Fprintln(cc.Out, s); err != nil {
				return err
			}
			continue
		}
		resNode, err := gomap.ToIR(res)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		s, err := encode.EncodeString(resNode, encode.Declaration(false))
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		if _, err := fmt.Fprintln(cc.Out, format.Pretty(s, cfg.fmtOpts(cc.Out)...)); err != nil {
			return err
		}
	}
	return nil
}
