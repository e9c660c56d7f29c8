// Package check 提供按清单批量校验环境变量的命令。
package check

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-envar/internal/command"
)

// Command 清单校验命令
var Command = &cli.Command{
	Name:   "check",
	Usage:  "读取变量清单，逐个解析并报告结果",
	Action: action,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "manifest",
			Aliases: []string{"m"},
			Value:   command.Defaults.Manifest,
			Usage:   "变量清单文件路径 (YAML/JSON)",
		},
	}, command.CommonFlags()...),
}
