package main

import (
	"fmt"
	"strings"

	"github.com/xmlv-format/go-xmlv/format"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	docs := make([]string, 2)
	for i, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		s, err := canonical(cfg.MainConfig, d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		docs[i] = format.Pretty(s, format.WithIndent(cfg.indent()))
	}
	if docs[0] == docs[1] {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(docs[0]+"\n", docs[1]+"\n", true)
	if cfg.Color {
		fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	} else {
		fmt.Fprint(cc.Out, renderDiffs(diffs))
	}
	return cli.ExitCodeErr(1)
}

func renderDiffs(diffs []diffpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			writeMarked(&sb, "+", d.Text)
		case diffpatch.DiffDelete:
			writeMarked(&sb, "-", d.Text)
		case diffpatch.DiffEqual:
			writeMarked(&sb, " ", d.Text)
		}
	}
	return sb.String()
}

func writeMarked(sb *strings.Builder, mark, text string) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		sb.WriteString(mark)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}
