package layout

import (
	"fmt"
	"log/slog"
)

type pageAccumulator struct {
	number int
	texts  []TextBox
	footer TextBox
}

func (p *pageAccumulator) appendText(tb TextBox) {
	p.texts = append(p.texts, tb)
}

// pageCollector 持有当前页、纵向游标与页码；游标为基线距页面底边的距离（mm），
// 始终位于 [MarginBottom, PageHeight-MarginTop] 内。
type pageCollector struct {
	width   float64
	height  float64
	margin  Margin
	accs    []*pageAccumulator
	current int
	cursorY float64
}

func newPageCollector() *pageCollector {
	pc := &pageCollector{
		width:  PageWidth,
		height: PageHeight,
		margin: Margin{Top: MarginTop, Right: MarginRight, Bottom: MarginBottom, Left: MarginLeft},
	}
	pc.newPage()
	return pc
}

// newPage 追加一页并把游标重置到内容区顶部，随即盖上页码页脚。
func (pc *pageCollector) newPage() *pageAccumulator {
	acc := &pageAccumulator{number: len(pc.accs) + 1}
	pc.accs = append(pc.accs, acc)
	pc.current = len(pc.accs) - 1
	pc.cursorY = pc.contentTop()
	acc.footer = TextBox{
		Content:  fmt.Sprintf("- %d -", acc.number),
		X:        pc.width / 2,
		Y:        FooterY,
		Font:     FontRegular,
		FontSize: FooterFontSize,
		Align:    "center",
	}
	if acc.number > 1 {
		Logger().Debug("page break", slog.Int("page", acc.number))
	}
	return acc
}

// ensureSpace 为 amount 预留纵向空间；空间不足时换页。
// 换页后游标停在新页顶部，本次请求不再从新页扣减。
func (pc *pageCollector) ensureSpace(amount float64) {
	if pc.cursorY-amount < pc.contentBottom() {
		pc.newPage()
		return
	}
	pc.cursorY -= amount
}

// placeText 在当前页的绝对位置写入一行文本，不做任何空间计算。
func (pc *pageCollector) placeText(text string, x, y float64, font FontKey, size float64) {
	pc.curr().appendText(TextBox{
		Content:  text,
		X:        x,
		Y:        y,
		Font:     font,
		FontSize: size,
	})
}

func (pc *pageCollector) curr() *pageAccumulator {
	if len(pc.accs) == 0 {
		return pc.newPage()
	}
	return pc.accs[pc.current]
}

func (pc *pageCollector) pageNumber() int {
	return pc.curr().number
}

func (pc *pageCollector) contentTop() float64 {
	return pc.height - pc.margin.Top
}

func (pc *pageCollector) contentBottom() float64 {
	return pc.margin.Bottom
}

func (pc *pageCollector) pages() []Page {
	out := make([]Page, len(pc.accs))
	for i, acc := range pc.accs {
		out[i] = Page{
			Number: acc.number,
			Width:  pc.width,
			Height: pc.height,
			Margin: pc.margin,
			Texts:  acc.texts,
			Footer: acc.footer,
		}
	}
	return out
}
