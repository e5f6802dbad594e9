package dsl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ByLCY/folio/layout"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Split 从文档开头分离 `---` 包围的元信息块。没有元信息块时 ok 为 false，body 为原文。
// 结束标记可以是 `---` 或 `...`。
func Split(src []byte) (front, body []byte, ok bool) {
	text := bytes.TrimPrefix(src, utf8BOM)
	first, rest, found := cutLine(text)
	if !found || strings.TrimRight(string(first), " \t\r") != "---" {
		return nil, src, false
	}
	offset := 0
	for {
		line, next, more := cutLine(rest[offset:])
		trimmed := strings.TrimRight(string(line), " \t\r")
		if trimmed == "---" || trimmed == "..." {
			return rest[:offset], rest[offset+len(line)+newlineLen(more):], true
		}
		if !more {
			return nil, src, false
		}
		offset = len(rest) - len(next)
	}
}

func cutLine(b []byte) (line, rest []byte, found bool) {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[:i], b[i+1:], true
	}
	return b, nil, false
}

func newlineLen(found bool) int {
	if found {
		return 1
	}
	return 0
}

// Load 解析文档开头的元信息块，返回元信息（可能为 nil）与剩余正文。
func Load(src []byte) (*FrontMatter, []byte, error) {
	front, body, ok := Split(src)
	if !ok {
		return nil, src, nil
	}
	fm, err := ParseString(string(front))
	if err != nil {
		return nil, nil, fmt.Errorf("解析元信息失败: %w", err)
	}
	return fm, body, nil
}

// Values 将元信息转换为模板可用的数据：字符串或 []any。重复的键以最后一次为准。
// 带 . 的键按路径展开为嵌套表，og.title 可通过 ${og.title} 引用。
func (f *FrontMatter) Values() map[string]any {
	out := map[string]any{}
	if f == nil {
		return out
	}
	for _, e := range f.Entries {
		setPath(out, strings.Split(e.Key, "."), e.Value.native())
	}
	return out
}

// setPath 沿路径写入值，途中遇到非表的值时以新表替换。
func setPath(m map[string]any, path []string, val any) {
	for _, seg := range path[:len(path)-1] {
		next, ok := m[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[seg] = next
		}
		m = next
	}
	m[path[len(path)-1]] = val
}

// Meta 提取 PDF 元信息字段（键名不区分大小写）。
func (f *FrontMatter) Meta() layout.DocumentMeta {
	var meta layout.DocumentMeta
	if f == nil {
		return meta
	}
	for _, e := range f.Entries {
		switch strings.ToLower(e.Key) {
		case "title":
			meta.Title = e.Value.text()
		case "author":
			meta.Author = e.Value.text()
		case "subject":
			meta.Subject = e.Value.text()
		case "creator":
			meta.Creator = e.Value.text()
		case "keywords", "tags":
			meta.Keywords = e.Value.list()
		}
	}
	return meta
}

func (v *Value) native() any {
	switch {
	case v == nil:
		return ""
	case v.Array != nil:
		items := make([]any, 0, len(v.Array.Items))
		for _, it := range v.Array.Items {
			items = append(items, it.text())
		}
		return items
	default:
		return v.text()
	}
}

func (v *Value) text() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Bare != nil:
		return v.Bare.Text
	case v.Array != nil:
		return strings.Join(v.list(), ", ")
	default:
		return ""
	}
}

// list 返回数组元素；标量按逗号拆分。
func (v *Value) list() []string {
	if v == nil {
		return nil
	}
	var out []string
	if v.Array != nil {
		for _, it := range v.Array.Items {
			if s := it.text(); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	for _, part := range strings.Split(v.text(), ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (it *ArrayItem) text() string {
	switch {
	case it == nil:
		return ""
	case it.String != nil:
		return string(*it.String)
	case it.Bare != nil:
		return it.Bare.Text
	default:
		return ""
	}
}
