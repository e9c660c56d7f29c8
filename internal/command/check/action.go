package check

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-envar/internal/command"
	"github.com/lwmacct/251207-go-pkg-envar/internal/manifest"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	m, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return err
	}
	probes, err := m.Build()
	if err != nil {
		return fmt.Errorf("build declarations: %w", err)
	}

	results, failed := Evaluate(probes)

	w := command.Writer(cmd)
	if cfg.Output == "json" {
		err = command.WriteJSON(w, results)
	} else {
		err = writeTable(w, results)
	}
	if err != nil {
		return err
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d variables failed", failed, len(results)), 1)
	}

	return nil
}

// Evaluate 依次求值，返回结果与失败个数。
func Evaluate(probes []manifest.Probe) ([]command.Result, int) {
	results := make([]command.Result, 0, len(probes))
	failed := 0
	for _, p := range probes {
		value, err := p.Value()
		if err != nil {
			failed++
			slog.Debug("Variable failed", "name", p.Name(), "error", err)
		}
		results = append(results, command.NewResult(p.Name(), p.Type(), p.Strategy().String(), value, err))
	}

	return results, failed
}

func writeTable(w io.Writer, results []command.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // column padding
	_, _ = fmt.Fprintln(tw, "NAME\tTYPE\tREFRESH\tVALUE")
	for _, r := range results {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Type, r.Strategy, r.Text())
	}

	return tw.Flush()
}
