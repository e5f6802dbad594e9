package layout

import (
	"math"
	"testing"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 8, 11, 18, 72, 144, 1000}
	for _, pt := range samples {
		back := ToPt(ToMm(pt))
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt back=%g diff=%g", pt, back, diff)
		}
	}
	for _, mm := range samples {
		back := ToMm(ToPt(mm))
		if diff := math.Abs(back - mm); diff > 1e-9 {
			t.Fatalf("mm→pt→mm 往返误差过大: in=%gmm back=%g diff=%g", mm, back, diff)
		}
	}
}

// TestPointIsOne72ndInch 校验 1pt ≈ 0.352778mm，72pt = 25.4mm。
func TestPointIsOne72ndInch(t *testing.T) {
	if diff := math.Abs(PtToMm - 0.352778); diff > 1e-6 {
		t.Fatalf("PtToMm 期望约 0.352778，实际 %g", PtToMm)
	}
	if got := ToMm(72); math.Abs(got-25.4) > 1e-9 {
		t.Fatalf("72pt 转 mm 期望 25.4，实际 %g", got)
	}
}

func TestContentArea(t *testing.T) {
	if ContentWidth != 160 {
		t.Fatalf("内容宽度期望 160mm，实际 %g", ContentWidth)
	}
	if ContentHeight != 247 {
		t.Fatalf("内容高度期望 247mm，实际 %g", ContentHeight)
	}
}
