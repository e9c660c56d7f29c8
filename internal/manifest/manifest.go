// Package manifest 读取变量清单，并把每个条目转换为真实的 envar 声明。
//
// 清单示例 (YAML)：
//
//	variables:
//	  - name: PORT
//	    type: int
//	    default: 8080
//	  - name: BROKERS
//	    type: string
//	    list: {sep: ",", filter_empty: true, filter_whitespace: true}
//	  - name: DEBUG
//	    type: bool
//	    refresh: on-startup
//
// 文件按扩展名选择解析器：.json 使用 JSON，其余使用 YAML。
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251207-go-pkg-envar/pkg/envar"
)

// Manifest 变量清单。
type Manifest struct {
	Variables []Entry `json:"variables"`
}

// Entry 单个变量的声明。
type Entry struct {
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Default     *string   `json:"default"` // nil 表示必填
	Refresh     string    `json:"refresh"` // on-demand (默认) / on-startup
	List        *ListSpec `json:"list"`
	Expand      bool      `json:"expand"`
	Description string    `json:"description"`
}

// ListSpec 对应 [envar.ListPolicy]。
//
//nolint:tagliatelle
type ListSpec struct {
	Sep              string `json:"sep"`
	FilterEmpty      bool   `json:"filter_empty"`
	FilterWhitespace bool   `json:"filter_whitespace"`
}

// Policy 转换为列表策略。
func (s ListSpec) Policy() envar.ListPolicy {
	return envar.ListPolicy{
		Sep:              s.Sep,
		FilterEmpty:      s.FilterEmpty,
		FilterWhitespace: s.FilterWhitespace,
	}
}

// Load 读取并解析清单文件。
func Load(path string) (*Manifest, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is provided by the operator
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	m, err := Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	slog.Debug("Loaded manifest", "path", path, "variables", len(m.Variables))

	return m, nil
}

// Parse 解析清单内容，path 仅用于判断格式。
func Parse(path string, content []byte) (*Manifest, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	normalized := normalizeMapKeys(raw)
	if normalized == nil {
		return &Manifest{}, nil
	}
	data, ok := normalized.(map[string]any)
	if !ok {
		return nil, errors.New("manifest root must be object")
	}

	var m Manifest
	if err := decode(data, &m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate 检查名称、类型与刷新策略。
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Variables))
	var errs []error
	for i, e := range m.Variables {
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("variables[%d]: name is required", i))

			continue
		}
		if _, dup := seen[e.Name]; dup {
			errs = append(errs, fmt.Errorf("variables[%d]: duplicate name %s", i, e.Name))
		}
		seen[e.Name] = struct{}{}

		if _, ok := binders[typeKey(e.Type)]; !ok {
			errs = append(errs, fmt.Errorf("%s: unknown type %q (supported: %s)", e.Name, e.Type, strings.Join(Types(), ", ")))
		}
		if _, err := ParseStrategy(e.Refresh); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name, err))
		}
	}

	return errors.Join(errs...)
}

// ParseStrategy 解析刷新策略名称，空字符串表示 on-demand。
func ParseStrategy(s string) (envar.Strategy, error) {
	switch strings.ToLower(strings.NewReplacer("_", "-", " ", "-").Replace(strings.TrimSpace(s))) {
	case "", "on-demand", "ondemand":
		return envar.RefreshOnDemand, nil
	case "on-startup", "onstartup":
		return envar.RefreshOnStartup, nil
	default:
		return 0, fmt.Errorf("unknown refresh strategy %q", s)
	}
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalizeMapKeys(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

func decode(data map[string]any, out any) error {
	conf := &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
