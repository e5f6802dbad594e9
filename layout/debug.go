package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// EncodeDebugJSON 将布局结果以缩进 JSON 写入 w，便于调试或可视化。
func EncodeDebugJSON(w io.Writer, res *Result) error {
	if res == nil {
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(res)
}

// WriteDebugJSON 将布局结果输出为 JSON 文件。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建调试文件 %s 失败: %w", path, err)
	}
	if err := EncodeDebugJSON(f, res); err != nil {
		f.Close()
		return fmt.Errorf("写入调试 JSON 失败: %w", err)
	}
	return f.Close()
}
