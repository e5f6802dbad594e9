package layout

// 该文件定义布局结果与资源描述，供布局计算、渲染与调试 JSON 共用。
// 坐标约定：原点位于页面左下角，y 向上增长，单位 mm；TextBox.Y 为文字基线位置。

// Result 保存布局后的页面与资源信息。
type Result struct {
	Pages     []Page       `json:"pages"`
	Resources ResourceSet  `json:"resources"`
	Meta      DocumentMeta `json:"meta"`
}

// ResourceSet 记录字体表。
type ResourceSet struct {
	Fonts map[FontKey]FontResource `json:"fonts"`
}

// FontResource 描述字体资源，src 形如 "embed:goregular"。
type FontResource struct {
	Name  string `json:"name"`
	Src   string `json:"src"`
	Style string `json:"style"`
}

// Page 记录页面尺寸、边距、页码与已定位的文本行。
type Page struct {
	Number int       `json:"number"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Margin Margin    `json:"margin"`
	Texts  []TextBox `json:"texts"`
	Footer TextBox   `json:"footer"`
}

// Margin 以毫米为单位。
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// TextBox 表示一行已经定位好的文本。
type TextBox struct {
	Content  string  `json:"content"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Font     FontKey `json:"font"`
	FontSize float64 `json:"fontSize"`        // pt
	Align    string  `json:"align,omitempty"` // left（默认）/center：center 时 X 为中线位置
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}

// DefaultTitle 为未提供标题时使用的文档标题。
const DefaultTitle = "Markdown Document"

// DefaultResources 返回指向内置 Go 字体的字体表。
func DefaultResources() ResourceSet {
	return ResourceSet{Fonts: map[FontKey]FontResource{
		FontRegular:    {Name: string(FontRegular), Src: "embed:goregular", Style: "regular"},
		FontBold:       {Name: string(FontBold), Src: "embed:gobold", Style: "bold"},
		FontItalic:     {Name: string(FontItalic), Src: "embed:goitalic", Style: "italic"},
		FontBoldItalic: {Name: string(FontBoldItalic), Src: "embed:gobolditalic", Style: "bold italic"},
		FontMono:       {Name: string(FontMono), Src: "embed:gomono", Style: "regular"},
	}}
}
