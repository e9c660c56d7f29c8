// Package get 提供读取单个环境变量的命令。
package get

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-envar/internal/command"
	"github.com/lwmacct/251207-go-pkg-envar/internal/manifest"
)

// Command 读取单个变量
var Command = &cli.Command{
	Name:      "get",
	Usage:     "按指定类型读取并解析一个环境变量",
	ArgsUsage: "NAME",
	Action:    action,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Value:   "string",
			Usage:   "变量类型: " + strings.Join(manifest.Types(), ", "),
		},
		&cli.StringFlag{
			Name:    "default",
			Aliases: []string{"d"},
			Usage:   "变量缺失时使用的默认值（未设置则缺失即报错）",
		},
		&cli.BoolFlag{
			Name:    "list",
			Aliases: []string{"l"},
			Usage:   "按分隔符解析为列表",
		},
		&cli.StringFlag{
			Name:  "sep",
			Value: ",",
			Usage: "列表分隔符",
		},
		&cli.BoolFlag{
			Name:  "filter-empty",
			Value: true,
			Usage: "丢弃空元素",
		},
		&cli.BoolFlag{
			Name:  "filter-whitespace",
			Value: true,
			Usage: "裁剪元素空白并丢弃仅含空白的元素",
		},
		&cli.BoolFlag{
			Name:  "on-startup",
			Usage: "使用 on-startup 刷新策略",
		},
		&cli.BoolFlag{
			Name:  "expand",
			Usage: "解析前执行 ${VAR} 展开",
		},
	}, command.CommonFlags()...),
}
