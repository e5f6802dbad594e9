package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// 内置字体使用 Go 字体家族，覆盖字体表需要的常规、粗体、斜体、粗斜体与等宽五种字形。
var builtin = map[string][]byte{
	"goregular":    goregular.TTF,
	"gobold":       gobold.TTF,
	"goitalic":     goitalic.TTF,
	"gobolditalic": gobolditalic.TTF,
	"gomono":       gomono.TTF,
}

// Load 返回内置字体的字节数据，path 可写为 "embed:goregular" 或直接 "goregular"。
func Load(path string) ([]byte, error) {
	name := strings.TrimSuffix(strings.TrimPrefix(path, "embed:"), ".ttf")
	data, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 未知字体", path)
	}
	return data, nil
}

// Names 返回全部内置字体名称。
func Names() []string {
	return []string{"goregular", "gobold", "goitalic", "gobolditalic", "gomono"}
}
