package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-envar/internal/command/check"
	"github.com/lwmacct/251207-go-pkg-envar/internal/command/get"
)

// Version 构建时通过 -ldflags "-X main.Version=..." 注入。
var Version = "dev"

func main() {
	app := &cli.Command{
		Name:    "envar",
		Usage:   "类型化环境变量检查工具",
		Version: Version,
		Commands: []*cli.Command{
			get.Command,
			check.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
