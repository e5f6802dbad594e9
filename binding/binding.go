package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Scope 是文本模板可见的数据：元信息键位于顶层，外部 JSON 数据挂在 "data" 下。
type Scope struct {
	root map[string]any
}

// NewScope 合并元信息与外部数据。data 为 nil 时不注册 "data" 键；元信息中同名的 "data" 会被覆盖。
func NewScope(values map[string]any, data any) Scope {
	root := make(map[string]any, len(values)+1)
	for k, v := range values {
		root[k] = v
	}
	if data != nil {
		root["data"] = data
	}
	return Scope{root: root}
}

// Empty 报告作用域内是否没有任何值。
func (s Scope) Empty() bool { return len(s.root) == 0 }

// Expand 将文本中的 ${path.to.value} 替换为作用域中的值。
// 路径不存在时保留原占位符；数组值以 ", " 连接。
func (s Scope) Expand(text string) string {
	if s.Empty() || !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		val, ok := s.Lookup(path)
		if !ok {
			return match
		}
		return format(val)
	})
}

// Lookup 按 a.b[0].c 形式的路径取值。
func (s Scope) Lookup(path string) (any, bool) {
	var current any = s.root
	for _, segment := range strings.Split(path, ".") {
		name, indexes := parseSegment(segment)
		if name != "" {
			var ok bool
			if current, ok = descendMap(current, name); !ok {
				return nil, false
			}
		}
		for _, idxStr := range indexes {
			idx, err := strconv.Atoi(idxStr)
			if err != nil {
				return nil, false
			}
			var ok bool
			if current, ok = descendArray(current, idx); !ok {
				return nil, false
			}
		}
	}
	return current, true
}

func format(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = format(item)
		}
		return strings.Join(parts, ", ")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func parseSegment(segment string) (string, []string) {
	i := strings.IndexByte(segment, '[')
	if i == -1 {
		return segment, nil
	}
	name := segment[:i]
	var indexes []string
	rest := segment[i:]
	for len(rest) > 0 && rest[0] == '[' {
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			break
		}
		indexes = append(indexes, rest[1:end])
		rest = rest[end+1:]
	}
	return name, indexes
}

func descendMap(current any, key string) (any, bool) {
	if m, ok := current.(map[string]any); ok {
		val, ok := m[key]
		return val, ok
	}
	return nil, false
}

func descendArray(current any, idx int) (any, bool) {
	arr, ok := current.([]any)
	if !ok || idx < 0 || idx >= len(arr) {
		return nil, false
	}
	return arr[idx], true
}
