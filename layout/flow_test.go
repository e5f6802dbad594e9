package layout

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapEmptyInputYieldsSingleEmptyLine(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		lines := Wrap(in, ContentWidth, 11)
		if len(lines) != 1 || lines[0] != "" {
			t.Fatalf("Wrap(%q) 期望单个空行，实际 %q", in, lines)
		}
	}
}

func TestMaxChars(t *testing.T) {
	// 11pt: 字符宽约 1.940mm，160mm 可容纳 82 个字符
	if got := MaxChars(ContentWidth, 11); got != 82 {
		t.Fatalf("MaxChars(160, 11) 期望 82，实际 %d", got)
	}
	if got := MaxChars(0, 11); got != 0 {
		t.Fatalf("零宽度应容纳 0 个字符，实际 %d", got)
	}
}

// TestWrapWidthBound 验证每行字符数不超过上限，除非该行只有一个超长单词。
func TestWrapWidthBound(t *testing.T) {
	words := []string{"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
		"supercalifragilisticexpialidocious", "a", "bb", "ccc"}
	var sb strings.Builder
	for i := 0; i < 60; i++ {
		sb.WriteString(words[i%len(words)])
		sb.WriteByte(' ')
	}
	text := sb.String()

	for _, tc := range []struct {
		width, size float64
	}{{160, 11}, {60, 18}, {30, 9}, {15, 14}} {
		limit := MaxChars(tc.width, tc.size)
		lines := Wrap(text, tc.width, tc.size)
		if got, want := strings.Join(lines, " "), strings.Join(strings.Fields(text), " "); got != want {
			t.Fatalf("折行后内容应保持不变")
		}
		for i, line := range lines {
			n := utf8.RuneCountInString(line)
			if n > limit && strings.Contains(line, " ") {
				t.Fatalf("width=%g size=%g 第 %d 行超出上限 %d: %q", tc.width, tc.size, i, limit, line)
			}
		}
	}
}

func TestWrapLongWordStandsAlone(t *testing.T) {
	long := strings.Repeat("w", 50)
	lines := Wrap("a "+long+" b", 20, 11)
	want := []string{"a", long, "b"}
	if len(lines) != len(want) {
		t.Fatalf("期望 %q，实际 %q", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("第 %d 行期望 %q，实际 %q", i, want[i], lines[i])
		}
	}
}

func TestWrapIsDeterministic(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog again and again"
	a := Wrap(text, 40, 11)
	b, err := ApproxTypesetter{}.WrapLines(text, 40, FontBold, 11)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(a, "\n") != strings.Join(b, "\n") {
		t.Fatalf("相同输入应得到相同结果: %q vs %q", a, b)
	}
}

func TestGreedyWrapWithMeasure(t *testing.T) {
	// 每个字符 1mm
	measure := func(s string) float64 { return float64(utf8.RuneCountInString(s)) }
	lines := GreedyWrap("aaa bbb ccc", 7, measure)
	if len(lines) != 2 || lines[0] != "aaa bbb" || lines[1] != "ccc" {
		t.Fatalf("按度量折行结果不正确: %q", lines)
	}
}

func TestLineHeightMm(t *testing.T) {
	got := LineHeightMm(11, 1.4)
	want := 11 * 1.4 * 25.4 / 72
	if abs(got-want) > 1e-12 {
		t.Fatalf("LineHeightMm(11, 1.4) 期望 %g，实际 %g", want, got)
	}
}
