package envar

import "strings"

// expand 对原始值执行 Shell 参数展开，变量从 lookup 读取。
//
// 支持：
//   - ${VAR} - 变量替换，未设置时为空
//   - ${VAR:-word} / ${VAR-word} - 回退值（带冒号时空值也视为未设置）
//   - ${VAR:+word} / ${VAR+word} - 替代值
//   - $$ - 字面量 "$"
//
// 不识别的表达式与 $VAR 形式保持原样。
func expand(text string, lookup Lookup) string {
	if !strings.Contains(text, "$") {
		return text
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		ch := text[i]
		if ch != '$' || i+1 >= len(text) {
			buf.WriteByte(ch)
			i++

			continue
		}

		switch text[i+1] {
		case '$':
			buf.WriteByte('$')
			i += 2

			continue
		case '{':
		default:
			buf.WriteByte(ch)
			i++

			continue
		}

		end := matchingBrace(text, i+2)
		if end == -1 {
			buf.WriteByte(ch)
			i++

			continue
		}

		if v, ok := expandExpr(text[i+2:end], lookup); ok {
			buf.WriteString(v)
		} else {
			buf.WriteString(text[i : end+1])
		}
		i = end + 1
	}

	return buf.String()
}

func expandExpr(expr string, lookup Lookup) (string, bool) {
	name, op, word, ok := splitExpr(expr)
	if !ok {
		return "", false
	}

	val, isSet := lookup.Lookup(name)
	switch op {
	case "":
		return val, true
	case ":-":
		if !isSet || val == "" {
			return expand(word, lookup), true
		}
	case "-":
		if !isSet {
			return expand(word, lookup), true
		}
	case ":+":
		if isSet && val != "" {
			return expand(word, lookup), true
		}

		return "", true
	case "+":
		if isSet {
			return expand(word, lookup), true
		}

		return "", true
	default:
		return "", false
	}

	return val, true
}

func splitExpr(expr string) (name, op, word string, ok bool) {
	if expr == "" || !isNameStart(expr[0]) {
		return "", "", "", false
	}

	i := 1
	for i < len(expr) && (isNameStart(expr[i]) || (expr[i] >= '0' && expr[i] <= '9')) {
		i++
	}
	name, rest := expr[:i], expr[i:]
	if rest == "" {
		return name, "", "", true
	}
	if len(rest) >= 2 && rest[0] == ':' && (rest[1] == '-' || rest[1] == '+') {
		return name, rest[:2], rest[2:], true
	}
	if rest[0] == '-' || rest[0] == '+' {
		return name, rest[:1], rest[1:], true
	}

	return "", "", "", false
}

func isNameStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

// matchingBrace 返回与 start 之前的 "${" 匹配的 "}" 下标，支持嵌套。
func matchingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}
