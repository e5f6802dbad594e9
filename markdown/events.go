// Package markdown 将 blackfriday 解析出的 Markdown 语法树展开为布局事件流。
package markdown

import (
	"github.com/russross/blackfriday/v2"

	"github.com/ByLCY/folio/layout"
)

// Options 控制解析与事件生成。
type Options struct {
	// Extensions 为 0 时使用 blackfriday.CommonExtensions。
	Extensions blackfriday.Extensions
	// Expand 在输出前改写普通文本（不作用于代码），例如模板插值。
	Expand func(string) string
}

// Events 解析 Markdown 源文本并按文档顺序返回事件流。
func Events(src []byte, opts Options) []layout.Event {
	ext := opts.Extensions
	if ext == 0 {
		ext = blackfriday.CommonExtensions
	}
	root := blackfriday.New(blackfriday.WithExtensions(ext)).Parse(src)
	return FromAST(root, opts)
}

// FromAST 遍历已解析的语法树。紧凑列表中的段落不产生 Paragraph 事件。
func FromAST(root *blackfriday.Node, opts Options) []layout.Event {
	expand := opts.Expand
	if expand == nil {
		expand = func(s string) string { return s }
	}
	var events []layout.Event
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch node.Type {
		case blackfriday.Document:
			// 根节点不产生事件
		case blackfriday.Text:
			if len(node.Literal) > 0 {
				events = append(events, layout.Text(expand(string(node.Literal))))
			}
		case blackfriday.Code:
			events = append(events, layout.Code(string(node.Literal)))
		case blackfriday.CodeBlock:
			events = append(events,
				layout.Start(layout.CodeBlock),
				layout.Text(string(node.Literal)),
				layout.End(layout.CodeBlock),
			)
		case blackfriday.Softbreak:
			events = append(events, layout.SoftBreak())
		case blackfriday.Hardbreak:
			events = append(events, layout.HardBreak())
		case blackfriday.Paragraph:
			if inTightList(node) {
				break
			}
			events = append(events, boundary(layout.Paragraph, entering))
		case blackfriday.Heading:
			events = append(events, boundary(layout.Heading(node.HeadingData.Level), entering))
		case blackfriday.List:
			events = append(events, boundary(layout.List, entering))
		case blackfriday.Item:
			events = append(events, boundary(layout.Item, entering))
		case blackfriday.Strong:
			events = append(events, boundary(layout.Strong, entering))
		case blackfriday.Emph:
			events = append(events, boundary(layout.Emphasis, entering))
		default:
			if node.IsContainer() {
				events = append(events, boundary(layout.OtherTag, entering))
			} else {
				events = append(events, layout.Other(node.Type.String()))
			}
		}
		return blackfriday.GoToNext
	})
	return events
}

func boundary(tag layout.Tag, entering bool) layout.Event {
	if entering {
		return layout.Start(tag)
	}
	return layout.End(tag)
}

func inTightList(node *blackfriday.Node) bool {
	item := node.Parent
	if item == nil || item.Type != blackfriday.Item {
		return false
	}
	list := item.Parent
	return list != nil && list.Type == blackfriday.List && list.ListData.Tight
}
