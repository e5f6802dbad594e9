package renderer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ByLCY/folio/layout"
)

// Renderer 将布局结果输出为最终文件，例如 PDF。
// Render 返回生成的二进制数据（例如 PDF 字节切片）以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}

// Save 渲染布局结果并写入 path，必要时创建上级目录。
// 渲染失败时不会创建目标文件。
func Save(r Renderer, result *layout.Result, path string) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	data, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}
