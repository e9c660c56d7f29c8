package get

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-envar/internal/command"
	"github.com/lwmacct/251207-go-pkg-envar/internal/manifest"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	name := cmd.Args().First()
	if name == "" {
		return cli.Exit("missing variable name", 2) //nolint:mnd // usage error
	}

	entry := entryFromFlags(cmd, name)
	probe, err := manifest.Bind(entry)
	if err != nil {
		return cli.Exit(err.Error(), 2) //nolint:mnd // usage error
	}

	value, valueErr := probe.Value()
	result := command.NewResult(probe.Name(), probe.Type(), probe.Strategy().String(), value, valueErr)

	w := command.Writer(cmd)
	if cfg.Output == "json" {
		if err := command.WriteJSON(w, result); err != nil {
			return err
		}
	} else if valueErr == nil {
		_, _ = fmt.Fprintln(w, result.Text())
	}

	if valueErr != nil {
		return cli.Exit(valueErr.Error(), 1)
	}

	return nil
}

// entryFromFlags 把 flags 组装为清单条目，复用清单的类型绑定。
func entryFromFlags(cmd *cli.Command, name string) manifest.Entry {
	entry := manifest.Entry{
		Name:   name,
		Type:   cmd.String("type"),
		Expand: cmd.Bool("expand"),
	}
	if cmd.IsSet("default") {
		def := cmd.String("default")
		entry.Default = &def
	}
	if cmd.Bool("on-startup") {
		entry.Refresh = "on-startup"
	}
	if cmd.Bool("list") {
		entry.List = &manifest.ListSpec{
			Sep:              cmd.String("sep"),
			FilterEmpty:      cmd.Bool("filter-empty"),
			FilterWhitespace: cmd.Bool("filter-whitespace"),
		}
	}

	return entry
}
