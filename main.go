package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ByLCY/folio/binding"
	"github.com/ByLCY/folio/dsl"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/markdown"
	"github.com/ByLCY/folio/renderer"
	canvasrenderer "github.com/ByLCY/folio/renderer/canvas"
)

// config 汇总命令行参数。
type config struct {
	input         string
	output        string
	debugPath     string
	dataJSON      string
	metrics       string
	combineStyles bool
	verbose       bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.input, "in", "README.md", "Markdown 文件路径")
	flag.StringVar(&cfg.output, "out", "output/document.pdf", "PDF 输出路径")
	flag.StringVar(&cfg.debugPath, "debug", "", "布局调试 JSON 输出路径")
	flag.StringVar(&cfg.dataJSON, "data", "", "绑定到 ${data.*} 占位符的 JSON 数据")
	flag.StringVar(&cfg.metrics, "metrics", "approx", "折行度量：approx（近似等宽）或 font（真实字体宽度）")
	flag.BoolVar(&cfg.combineStyles, "combine-styles", false, "粗体/斜体与当前样式合并选择字体")
	flag.BoolVar(&cfg.verbose, "v", false, "输出排版调试日志")
	flag.Parse()

	if cfg.verbose {
		layout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	r := canvasrenderer.NewRenderer()
	if err := run(cfg, r); err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
	fmt.Printf("已生成 PDF：%s\n", cfg.output)
}

// run 串联读取、元信息解析、Markdown 解析、布局与渲染。
func run(cfg config, r *canvasrenderer.Renderer) error {
	src, err := os.ReadFile(cfg.input)
	if err != nil {
		return fmt.Errorf("无法读取 Markdown 文件 %s: %w", cfg.input, err)
	}

	var data any
	if cfg.dataJSON != "" {
		if err := json.Unmarshal([]byte(cfg.dataJSON), &data); err != nil {
			return fmt.Errorf("解析 data JSON 失败: %w", err)
		}
	}

	front, body, err := dsl.Load(src)
	if err != nil {
		return err
	}
	scope := binding.NewScope(front.Values(), data)
	events := markdown.Events(body, markdown.Options{Expand: scope.Expand})

	opts := layout.BuildOptions{
		Meta:                front.Meta(),
		CombineInlineStyles: cfg.combineStyles,
	}
	switch cfg.metrics {
	case "", "approx":
	case "font":
		opts.Typesetter = r
	default:
		return fmt.Errorf("未知的折行度量 %q（可选 approx、font）", cfg.metrics)
	}

	result, err := layout.Build(events, opts)
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	if cfg.debugPath != "" {
		if err := writeDebug(result, cfg.debugPath); err != nil {
			return err
		}
	}
	return renderer.Save(r, result, cfg.output)
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
