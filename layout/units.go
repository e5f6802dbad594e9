package layout

// 该文件集中定义页面几何、排版间距与 pt↔mm 换算常量（长度单位一律为 mm，字号为 pt）。

// Conversion constants between pt and mm (1pt = 1/72 inch).
const (
	PtToMm = 25.4 / 72
	MmToPt = 1.0 / PtToMm
)

// A4 页面与统一边距。
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	MarginTop    = 25.0
	MarginBottom = 25.0
	MarginLeft   = 25.0
	MarginRight  = 25.0

	ContentWidth  = PageWidth - MarginLeft - MarginRight
	ContentHeight = PageHeight - MarginTop - MarginBottom
)

// 块级间距（mm）。
const (
	ParagraphSpacing     = 6.0
	HeadingSpacingBefore = 12.0
	HeadingSpacingAfter  = 6.0
	CodeBlockSpacing     = 8.0
	ListIndentStep       = 10.0
	// 代码块相对左边距的缩进
	CodeBlockIndent = 5.0
	// 更深的列表按此层级缩进，正文仍保留 ContentWidth/2 的宽度
	MaxListIndentLevel = 8
)

// 页脚：8pt 常规字体，水平居中，距页面底边 12.5mm。
const (
	FooterFontSize = 8.0
	FooterY        = MarginBottom / 2
)

// InlineCodeScale 为行内代码相对当前字号的缩放比例。
const InlineCodeScale = 0.9

// approxCharWidthFactor 为近似等宽模型中字符宽度与字号之比。
const approxCharWidthFactor = 0.5

// ToMm 将点(pt)转换为毫米(mm)。
func ToMm(pt float64) float64 { return pt * PtToMm }

// ToPt 将毫米(mm)转换为点(pt)。
func ToPt(mm float64) float64 { return mm * MmToPt }
