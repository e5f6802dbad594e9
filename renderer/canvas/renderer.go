package canvasrenderer

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/ByLCY/folio/fonts"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/renderer"
)

var textColor = canvas.Hex("#1e1e1e")

// Renderer draws layout results via github.com/tdewolff/canvas.
// It also implements layout.Typesetter using real glyph advances.
type Renderer struct {
	resources layout.ResourceSet

	fontMu       sync.Mutex
	fontFamilies map[layout.FontKey]*fontFamilyEntry
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

type fontFamilyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

// NewRenderer creates a renderer using the built-in font table.
func NewRenderer() *Renderer { return NewRendererWithResources(layout.DefaultResources()) }

// NewRendererWithResources creates a renderer for an explicit font table.
// Fonts referenced by a rendered result take precedence over this table.
func NewRendererWithResources(res layout.ResourceSet) *Renderer {
	return &Renderer{
		resources:    res,
		fontFamilies: map[layout.FontKey]*fontFamilyEntry{},
	}
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}
	if len(result.Resources.Fonts) > 0 {
		r.useResources(result.Resources)
	}
	// 字体在绘制任何页面之前全部加载，失败即中止。
	for _, key := range layout.FontKeys {
		if _, _, err := r.ensureFontFamily(key); err != nil {
			return nil, fmt.Errorf("初始化字体失败: %w", err)
		}
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, result.Pages[0].Width, result.Pages[0].Height, nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(page.Width, page.Height)
		}
		c := canvas.New(page.Width, page.Height)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianI) // 原点在左下角，与布局坐标一致

		if err := r.drawPage(ctx, page); err != nil {
			return nil, fmt.Errorf("绘制第 %d 页失败: %w", page.Number, err)
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

// WrapLines 实现 layout.Typesetter：按字体真实宽度贪心换行。fontSize 单位为 pt，宽度为 mm。
func (r *Renderer) WrapLines(content string, maxWidth float64, font layout.FontKey, fontSize float64) ([]string, error) {
	face, err := r.fontFace(font, fontSize)
	if err != nil {
		return nil, err
	}
	return layout.GreedyWrap(Sanitize(content), maxWidth, face.TextWidth), nil
}

func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	for _, tb := range page.Texts {
		if err := r.drawTextBox(ctx, tb); err != nil {
			return err
		}
	}
	return r.drawTextBox(ctx, page.Footer)
}

// drawTextBox 是唯一的文字放置入口，所有内容都先经过 Sanitize。
func (r *Renderer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	content := Sanitize(tb.Content)
	if strings.TrimSpace(content) == "" {
		return nil
	}
	face, err := r.fontFace(tb.Font, tb.FontSize)
	if err != nil {
		return err
	}
	align := canvas.Left
	if strings.EqualFold(tb.Align, "center") {
		align = canvas.Center
	}
	ctx.DrawText(tb.X, tb.Y, canvas.NewTextLine(face, content, align))
	return nil
}

// Sanitize 将文本规范化为 NFC，制表符展开为四个空格，并移除其余控制字符。
func Sanitize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\t", "    ")
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func (r *Renderer) useResources(res layout.ResourceSet) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	for key, font := range res.Fonts {
		if cur, ok := r.resources.Fonts[key]; ok && cur == font {
			continue
		}
		if r.resources.Fonts == nil {
			r.resources.Fonts = map[layout.FontKey]layout.FontResource{}
		}
		r.resources.Fonts[key] = font
		delete(r.fontFamilies, key)
	}
}

func (r *Renderer) fontFace(key layout.FontKey, sizePt float64) (*canvas.FontFace, error) {
	family, style, err := r.ensureFontFamily(key)
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, textColor, style, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(key layout.FontKey) (*canvas.FontFamily, canvas.FontStyle, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if entry, ok := r.fontFamilies[key]; ok {
		return entry.family, entry.style, nil
	}
	font, ok := r.resources.Fonts[key]
	if !ok {
		return nil, canvas.FontRegular, fmt.Errorf("字体 %s 未定义", key)
	}
	data, err := loadFontBytes(font)
	if err != nil {
		return nil, canvas.FontRegular, err
	}
	style := parseFontStyle(font.Style)
	family := canvas.NewFontFamily("folio-" + string(key))
	if err := family.LoadFont(data, 0, style); err != nil {
		return nil, canvas.FontRegular, fmt.Errorf("加载字体 %s 失败: %w", key, err)
	}
	r.fontFamilies[key] = &fontFamilyEntry{family: family, style: style}
	return family, style, nil
}

func loadFontBytes(font layout.FontResource) ([]byte, error) {
	if font.Src == "" {
		return nil, fmt.Errorf("字体 %s 缺少 src", font.Name)
	}
	if !strings.HasPrefix(font.Src, "embed:") {
		return nil, fmt.Errorf("字体 %s 的 src 仅支持 embed:，实际 %s", font.Name, font.Src)
	}
	return fonts.Load(font.Src)
}

func parseFontStyle(style string) canvas.FontStyle {
	s := strings.ToLower(style)
	result := canvas.FontRegular
	if strings.Contains(s, "bold") {
		result = canvas.FontBold
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		result |= canvas.FontItalic
	}
	return result
}
