// Package config 提供 envar 命令行工具自身的配置。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. .env 文件 - 通过 --env-file / ENVAR_ENV_FILE 指定，不覆盖已存在的环境变量
//  3. 环境变量 - ENVAR_ 前缀，见各字段 env 标签
//  4. CLI flags - 仅用户显式设置的 flag 生效
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// EnvPrefix 工具自身配置的环境变量前缀。
const EnvPrefix = "ENVAR_"

// Config 命令行配置。
type Config struct {
	Manifest  string `json:"manifest" env:"MANIFEST" desc:"变量清单文件路径 (YAML/JSON)"`
	EnvFile   string `json:"env-file" env:"ENV_FILE" desc:".env 文件路径"`
	LogLevel  string `json:"log-level" env:"LOG_LEVEL" desc:"日志级别 debug/info/warn/error"`
	LogFormat string `json:"log-format" env:"LOG_FORMAT" desc:"日志格式 text/json"`
	Output    string `json:"output" env:"OUTPUT" desc:"输出格式 text/json"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Manifest:  "envar.yaml",
		EnvFile:   ".env",
		LogLevel:  "warn",
		LogFormat: "text",
		Output:    "text",
	}
}

// Load 按优先级合并配置。cmd 为 nil 时跳过 flags。
func Load(cmd *cli.Command) (*Config, error) {
	cfg := DefaultConfig()

	// .env 文件路径本身只能来自 flag 或进程环境
	envFile, explicit := cfg.EnvFile, false
	if v, ok := os.LookupEnv(EnvPrefix + "ENV_FILE"); ok {
		envFile, explicit = v, true
	}
	if cmd != nil && cmd.IsSet("env-file") {
		envFile, explicit = cmd.String("env-file"), true
	}
	if err := loadEnvFile(envFile, explicit); err != nil {
		return nil, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse %s* environment: %w", EnvPrefix, err)
	}

	if cmd != nil {
		applyFlags(cmd, &cfg)
	}
	cfg.EnvFile = envFile

	return &cfg, nil
}

// loadEnvFile 加载 .env 文件；默认路径不存在时忽略，显式指定的路径必须存在。
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		slog.Debug("Loaded env file", "path", path)

		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load env file %s: %w", path, err)
}

func applyFlags(cmd *cli.Command, cfg *Config) {
	for flag, dst := range map[string]*string{
		"manifest":   &cfg.Manifest,
		"log-level":  &cfg.LogLevel,
		"log-format": &cfg.LogFormat,
		"output":     &cfg.Output,
	} {
		if cmd.IsSet(flag) {
			*dst = cmd.String(flag)
		}
	}
}

// Level 解析日志级别，无法识别时返回 slog.LevelWarn。
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger 按配置创建 logger，日志写入 stderr 以免干扰命令输出。
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
