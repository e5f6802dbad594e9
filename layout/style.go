package layout

import "fmt"

// FontKey 标识字体表中的一个字体句柄。
type FontKey string

const (
	FontRegular    FontKey = "regular"
	FontBold       FontKey = "bold"
	FontItalic     FontKey = "italic"
	FontBoldItalic FontKey = "bold-italic"
	FontMono       FontKey = "mono"
)

// FontKeys 按固定顺序列出字体表中的全部字体。
var FontKeys = []FontKey{FontRegular, FontBold, FontItalic, FontBoldItalic, FontMono}

// Style 是语义样式标签，作为样式表的查找键。
type Style int

const (
	StyleBody Style = iota
	StyleH1
	StyleH2
	StyleH3
	StyleH4
	StyleH5
	StyleH6
	StyleCode
	StyleStrong
	StyleEmphasis
)

// StyleSpec 是样式表中的一行：字号（pt）、行高倍数与字体。
type StyleSpec struct {
	FontSize   float64 `json:"fontSize"`
	LineHeight float64 `json:"lineHeight"`
	Font       FontKey `json:"font"`
}

// Spec 查询样式表。Strong/Emphasis 不改变字号，只决定字体。
func (s Style) Spec() StyleSpec {
	switch s {
	case StyleH1:
		return StyleSpec{FontSize: 18, LineHeight: 1.2, Font: FontBold}
	case StyleH2:
		return StyleSpec{FontSize: 16, LineHeight: 1.2, Font: FontBold}
	case StyleH3:
		return StyleSpec{FontSize: 14, LineHeight: 1.15, Font: FontBold}
	case StyleH4:
		return StyleSpec{FontSize: 12, LineHeight: 1.4, Font: FontRegular}
	case StyleH5:
		return StyleSpec{FontSize: 11, LineHeight: 1.4, Font: FontRegular}
	case StyleH6:
		return StyleSpec{FontSize: 10, LineHeight: 1.4, Font: FontRegular}
	case StyleCode:
		return StyleSpec{FontSize: 9, LineHeight: 1.2, Font: FontMono}
	case StyleStrong:
		return StyleSpec{FontSize: 11, LineHeight: 1.4, Font: FontBold}
	case StyleEmphasis:
		return StyleSpec{FontSize: 11, LineHeight: 1.4, Font: FontItalic}
	default:
		return StyleSpec{FontSize: 11, LineHeight: 1.4, Font: FontRegular}
	}
}

// HeadingStyle 将标题级别映射为 H1..H6，越界的级别被钳制到 [1, 6]。
func HeadingStyle(level int) Style {
	switch {
	case level <= 1:
		return StyleH1
	case level >= 6:
		return StyleH6
	default:
		return StyleH1 + Style(level-1)
	}
}

func (s Style) String() string {
	switch s {
	case StyleBody:
		return "Body"
	case StyleH1, StyleH2, StyleH3, StyleH4, StyleH5, StyleH6:
		return fmt.Sprintf("H%d", int(s-StyleH1)+1)
	case StyleCode:
		return "Code"
	case StyleStrong:
		return "Strong"
	case StyleEmphasis:
		return "Emphasis"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// combineFont 将基础样式的字体与行内样式栈合并：粗体与斜体同时生效时取 bold-italic。
// 等宽字体不参与合并。
func combineFont(base FontKey, stack []Style) FontKey {
	if base == FontMono {
		return base
	}
	bold := base == FontBold || base == FontBoldItalic
	italic := base == FontItalic || base == FontBoldItalic
	for _, s := range stack {
		switch s {
		case StyleStrong:
			bold = true
		case StyleEmphasis:
			italic = true
		}
	}
	switch {
	case bold && italic:
		return FontBoldItalic
	case bold:
		return FontBold
	case italic:
		return FontItalic
	default:
		return FontRegular
	}
}
