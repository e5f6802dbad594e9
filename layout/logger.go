package layout

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record; Enabled reports false so callers skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger 设置布局阶段使用的日志记录器；传 nil 恢复为静默。
//
// 使用的级别：
//   - [slog.LevelDebug]: 换页、每个文档的排版摘要
//   - [slog.LevelWarn]: 被宽容处理的异常事件序列（例如多余的 End）
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger 返回当前日志记录器，可被并发调用。
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
