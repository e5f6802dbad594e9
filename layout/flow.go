package layout

import (
	"math"
	"strings"
	"unicode/utf8"
)

// ApproxTypesetter 使用近似等宽字符模型折行：字符宽度 = 字号 × 0.5（pt→mm）。
// 不读取任何字体度量，因此与字体无关。
type ApproxTypesetter struct{}

var _ Typesetter = ApproxTypesetter{}

// WrapLines 实现 Typesetter。
func (ApproxTypesetter) WrapLines(content string, maxWidth float64, _ FontKey, fontSize float64) ([]string, error) {
	return Wrap(content, maxWidth, fontSize), nil
}

// MaxChars 返回给定宽度与字号下一行最多容纳的近似字符数。
func MaxChars(maxWidth, fontSize float64) int {
	charWidth := fontSize * approxCharWidthFactor * PtToMm
	if charWidth <= 0 {
		return math.MaxInt32
	}
	n := math.Floor(maxWidth / charWidth)
	if n < 0 {
		return 0
	}
	return int(n)
}

// Wrap 按空白分词后贪心装行：加入下一个词（含一个分隔空格）会超出 MaxChars 时换行。
// 单个超长词独占一行，不在词内拆分。空输入返回一个空行。
func Wrap(text string, maxWidth, fontSize float64) []string {
	limit := MaxChars(maxWidth, fontSize)
	fits := func(line, word string) bool {
		return utf8.RuneCountInString(line)+utf8.RuneCountInString(word)+1 <= limit
	}
	return greedyWrap(strings.Fields(text), fits)
}

// greedyWrap 是两种排版后端共用的贪心装行循环，fits 判断 word 能否追加到非空的 line。
func greedyWrap(words []string, fits func(line, word string) bool) []string {
	var lines []string
	var current strings.Builder
	for _, word := range words {
		if current.Len() > 0 && !fits(current.String(), word) {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// GreedyWrap 供基于真实字体度量的排版后端复用：measure 返回字符串宽度（mm）。
func GreedyWrap(text string, maxWidth float64, measure func(string) float64) []string {
	fits := func(line, word string) bool {
		return measure(line+" "+word) <= maxWidth
	}
	return greedyWrap(strings.Fields(text), fits)
}

// LineHeightMm 返回一行所占的纵向空间：字号 × 行高倍数（pt→mm）。
func LineHeightMm(fontSize, multiplier float64) float64 {
	return fontSize * multiplier * PtToMm
}
