// Package command 提供 envar 命令行的公共部分。
package command

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-envar/internal/config"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// CommonFlags 返回每个子命令共用的 flags。
//
// 每次调用都返回新的 flag 实例，urfave/cli 不允许在多个命令间共享同一实例。
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "env-file",
			Value: Defaults.EnvFile,
			Usage: "先加载的 .env 文件（不覆盖已存在的变量）",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.LogLevel,
			Usage: "日志级别 debug/info/warn/error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Value: Defaults.LogFormat,
			Usage: "日志格式 text/json",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   Defaults.Output,
			Usage:   "输出格式 text/json",
		},
	}
}

// Setup 加载配置并设置默认 logger。
func Setup(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(cfg.NewLogger())
	slog.Debug("Config loaded", "manifest", cfg.Manifest, "envFile", cfg.EnvFile, "output", cfg.Output)

	return cfg, nil
}

// Writer 返回命令输出目标。
func Writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

// Result 单个变量的求值结果。
type Result struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Strategy string `json:"strategy"`
	Value    any    `json:"value,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NewResult 由求值结果构造输出记录。
func NewResult(name, typ, strategy string, value any, err error) Result {
	r := Result{Name: name, Type: typ, Strategy: strategy}
	if err != nil {
		r.Error = err.Error()

		return r
	}
	if d, ok := value.(time.Duration); ok {
		r.Value = d.String()
	} else {
		r.Value = value
	}

	return r
}

// Text 返回适合终端显示的值或错误。
func (r Result) Text() string {
	if r.Error != "" {
		return "error: " + r.Error
	}

	return fmt.Sprint(r.Value)
}

// WriteJSON 以缩进 JSON 输出。
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
