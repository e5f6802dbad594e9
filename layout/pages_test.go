package layout

import (
	"fmt"
	"testing"
)

func TestEnsureSpaceDecrementsCursor(t *testing.T) {
	pc := newPageCollector()
	if pc.cursorY != PageHeight-MarginTop {
		t.Fatalf("初始游标应位于内容区顶部，实际 %g", pc.cursorY)
	}
	pc.ensureSpace(10)
	if pc.cursorY != PageHeight-MarginTop-10 {
		t.Fatalf("预留 10mm 后游标不正确: %g", pc.cursorY)
	}
	if len(pc.accs) != 1 {
		t.Fatalf("不应换页")
	}
}

// TestEnsureSpaceExactFit 恰好落在下边距上时不换页。
func TestEnsureSpaceExactFit(t *testing.T) {
	pc := newPageCollector()
	pc.ensureSpace(ContentHeight)
	if len(pc.accs) != 1 || pc.cursorY != MarginBottom {
		t.Fatalf("恰好用尽内容区时不应换页: pages=%d cursor=%g", len(pc.accs), pc.cursorY)
	}
	pc.ensureSpace(0.001)
	if len(pc.accs) != 2 {
		t.Fatalf("超出内容区后应换页")
	}
	if pc.cursorY != PageHeight-MarginTop {
		t.Fatalf("换页后游标应重置到顶部，实际 %g", pc.cursorY)
	}
}

func TestPaginationNumbersPages(t *testing.T) {
	pc := newPageCollector()
	total := 0.0
	for total <= 3*ContentHeight {
		pc.ensureSpace(7)
		total += 7
	}
	pages := pc.pages()
	if len(pages) < 2 {
		t.Fatalf("累计预留超过一页高度时应产生多页，实际 %d", len(pages))
	}
	for i, page := range pages {
		if page.Number != i+1 {
			t.Fatalf("第 %d 页页码错误: %d", i+1, page.Number)
		}
		if want := fmt.Sprintf("- %d -", i+1); page.Footer.Content != want {
			t.Fatalf("第 %d 页页脚期望 %q，实际 %q", i+1, want, page.Footer.Content)
		}
		if page.Width != PageWidth || page.Height != PageHeight || page.Margin.Left != MarginLeft {
			t.Fatalf("页面几何不正确: %+v", page)
		}
	}
	if pc.pageNumber() != len(pages) {
		t.Fatalf("当前页码应为最后一页: %d", pc.pageNumber())
	}
}

func TestPlaceTextTargetsCurrentPage(t *testing.T) {
	pc := newPageCollector()
	pc.placeText("first", MarginLeft, pc.cursorY, FontRegular, 11)
	pc.newPage()
	pc.placeText("second", MarginLeft, pc.cursorY, FontBold, 14)
	pages := pc.pages()
	if len(pages[0].Texts) != 1 || pages[0].Texts[0].Content != "first" {
		t.Fatalf("第一页内容不正确: %+v", pages[0].Texts)
	}
	if len(pages[1].Texts) != 1 || pages[1].Texts[0].Content != "second" || pages[1].Texts[0].Font != FontBold {
		t.Fatalf("第二页内容不正确: %+v", pages[1].Texts)
	}
}
