package layout

import (
	"fmt"
	"log/slog"
	"strings"
)

// Build 顺序消费事件流，生成分页后的布局结果。
// 整个过程单线程、一次遍历；任何排版后端错误都会中止本次排版。
func Build(events []Event, opts BuildOptions) (*Result, error) {
	ctx := newFlowContext(opts)
	for i, ev := range events {
		if err := ctx.handle(ev); err != nil {
			return nil, fmt.Errorf("处理第 %d 个事件 %s 失败: %w", i, ev, err)
		}
	}

	res := DefaultResources()
	if opts.Resources != nil {
		res = *opts.Resources
	}
	meta := opts.Meta
	if meta.Title == "" {
		meta.Title = DefaultTitle
	}
	pages := ctx.collector.pages()
	Logger().Debug("layout finished",
		slog.Int("events", len(events)),
		slog.Int("pages", len(pages)),
	)
	return &Result{
		Pages:     pages,
		Resources: res,
		Meta:      meta,
	}, nil
}

// flowContext 是一次排版会话独占的可变状态，只在 Build 内部按引用传递。
type flowContext struct {
	collector  *pageCollector
	typesetter Typesetter
	combine    bool

	style      Style
	fontSize   float64 // pt
	lineHeight float64 // 倍数
	// styleStack 记录 Strong/Emphasis 的嵌套；仅在 combine 打开时参与字体选择。
	styleStack  []Style
	listDepth   int
	inCodeBlock bool
}

func newFlowContext(opts BuildOptions) *flowContext {
	ts := opts.Typesetter
	if ts == nil {
		ts = ApproxTypesetter{}
	}
	ctx := &flowContext{
		collector:  newPageCollector(),
		typesetter: ts,
		combine:    opts.CombineInlineStyles,
	}
	ctx.setStyle(StyleBody)
	return ctx
}

func (ctx *flowContext) handle(ev Event) error {
	switch ev.Kind {
	case EventStart:
		ctx.start(ev.Tag)
	case EventEnd:
		ctx.end(ev.Tag)
	case EventText:
		return ctx.text(ev.Text)
	case EventCode:
		ctx.inlineCode(ev.Text)
	case EventSoftBreak:
		return ctx.text(" ")
	case EventHardBreak:
		ctx.newLine()
	}
	return nil
}

func (ctx *flowContext) start(tag Tag) {
	switch tag.Kind {
	case TagHeading:
		ctx.collector.ensureSpace(HeadingSpacingBefore)
		ctx.setStyle(HeadingStyle(tag.Level))
	case TagParagraph:
		ctx.collector.ensureSpace(ParagraphSpacing / 2)
		ctx.setStyle(StyleBody)
	case TagCodeBlock:
		ctx.collector.ensureSpace(CodeBlockSpacing)
		ctx.inCodeBlock = true
		ctx.setStyle(StyleCode)
	case TagList:
		ctx.listDepth++
		ctx.collector.ensureSpace(ParagraphSpacing / 2)
	case TagItem:
		ctx.bullet()
	case TagStrong:
		ctx.styleStack = append(ctx.styleStack, StyleStrong)
	case TagEmphasis:
		ctx.styleStack = append(ctx.styleStack, StyleEmphasis)
	}
}

func (ctx *flowContext) end(tag Tag) {
	switch tag.Kind {
	case TagHeading:
		ctx.collector.ensureSpace(HeadingSpacingAfter)
		ctx.setStyle(StyleBody)
	case TagParagraph:
		ctx.collector.ensureSpace(ParagraphSpacing / 2)
		ctx.setStyle(StyleBody)
	case TagCodeBlock:
		ctx.inCodeBlock = false
		ctx.collector.ensureSpace(CodeBlockSpacing)
		ctx.setStyle(StyleBody)
	case TagList:
		if ctx.listDepth > 0 {
			ctx.listDepth--
		} else {
			Logger().Warn("unmatched list end ignored")
		}
		ctx.collector.ensureSpace(ParagraphSpacing / 2)
	case TagStrong, TagEmphasis:
		if n := len(ctx.styleStack); n > 0 {
			ctx.styleStack = ctx.styleStack[:n-1]
		} else {
			Logger().Warn("unmatched inline style end ignored", slog.String("tag", tag.String()))
		}
	}
}

func (ctx *flowContext) setStyle(s Style) {
	spec := s.Spec()
	ctx.style = s
	ctx.fontSize = spec.FontSize
	ctx.lineHeight = spec.LineHeight
}

// font 返回当前文本使用的字体。
func (ctx *flowContext) font() FontKey {
	base := ctx.style.Spec().Font
	if !ctx.combine {
		return base
	}
	return combineFont(base, ctx.styleStack)
}

func (ctx *flowContext) lineHeightMm() float64 {
	return LineHeightMm(ctx.fontSize, ctx.lineHeight)
}

// newLine 前进一行；空间不足时由 ensureSpace 换页。
func (ctx *flowContext) newLine() {
	ctx.collector.ensureSpace(ctx.lineHeightMm())
}

func (ctx *flowContext) text(run string) error {
	if ctx.inCodeBlock {
		ctx.codeLines(run)
		return nil
	}
	indent := float64(indentLevel(ctx.listDepth)) * ListIndentStep
	font := ctx.font()
	lines, err := ctx.typesetter.WrapLines(run, ContentWidth-indent, font, ctx.fontSize)
	if err != nil {
		return fmt.Errorf("文本折行失败: %w", err)
	}
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			ctx.collector.placeText(line, MarginLeft+indent, ctx.collector.cursorY, font, ctx.fontSize)
		}
		ctx.newLine()
	}
	return nil
}

// codeLines 按物理行原样输出代码块内容，不折行。
func (ctx *flowContext) codeLines(code string) {
	for _, line := range splitPhysicalLines(code) {
		ctx.collector.placeText(line, MarginLeft+CodeBlockIndent, ctx.collector.cursorY, FontMono, ctx.fontSize)
		ctx.newLine()
	}
}

// inlineCode 在当前游标处放置行内代码，不推进游标。
func (ctx *flowContext) inlineCode(run string) {
	ctx.collector.placeText(run, MarginLeft, ctx.collector.cursorY, FontMono, ctx.fontSize*InlineCodeScale)
}

// bullet 在当前游标处放置列表符号，不推进游标；后续 Text 事件提供条目正文。
func (ctx *flowContext) bullet() {
	level := max(ctx.listDepth, 1)
	glyph := "•"
	if level > 1 {
		glyph = "◦"
	}
	x := MarginLeft + float64(indentLevel(level)-1)*ListIndentStep
	ctx.collector.placeText(glyph, x, ctx.collector.cursorY, FontRegular, ctx.fontSize)
}

// indentLevel 将列表深度限制在 [0, MaxListIndentLevel]。
func indentLevel(depth int) int {
	return min(max(depth, 0), MaxListIndentLevel)
}

// splitPhysicalLines 按换行拆分，去掉每行末尾的 \r；结尾换行不产生额外空行。
func splitPhysicalLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
