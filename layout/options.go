package layout

// BuildOptions 配置布局阶段所需的依赖，例如排版后端。
type BuildOptions struct {
	// Typesetter 为空时使用 ApproxTypesetter。
	Typesetter Typesetter
	// Resources 为空时使用 DefaultResources。
	Resources *ResourceSet
	Meta      DocumentMeta
	// CombineInlineStyles 为 true 时，Strong/Emphasis 栈参与字体选择（例如粗斜体）。
	// 默认关闭：样式栈只做入栈/出栈记录，字体仅由当前样式决定。
	CombineInlineStyles bool
}

// Typesetter 负责根据宽度约束将文本拆成可绘制的行。
// 对相同的 (content, maxWidth, font, fontSize) 必须给出相同结果。
type Typesetter interface {
	WrapLines(content string, maxWidth float64, font FontKey, fontSize float64) ([]string, error)
}
