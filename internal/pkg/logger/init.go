package logger

import (
	"Sokdak/internal/api/config"
	"io"
	log "log/slog"
	"os"
	"strings"
)

// LogWriter gin 访问日志的输出目标
var LogWriter io.Writer = os.Stdout

// InitLogger 按配置初始化默认 slog, 所有日志经过 ContextHandler 注入 trace_id
func InitLogger(cfg config.LogConfig) {
	opts := &log.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var finalHandler = newHandler(os.Stdout, cfg.Format, opts)
	LogWriter = os.Stdout

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			finalHandler = NewTeeHandler(finalHandler, log.NewJSONHandler(f, opts))
			LogWriter = io.MultiWriter(os.Stdout, f)
		} else {
			defer log.Warn("Failed to open log file, logging to stdout only", "file", cfg.File, "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}

// NewLogger 构造一个写入 w 的 logger
func NewLogger(w io.Writer, cfg config.LogConfig) *log.Logger {
	h := newHandler(w, cfg.Format, &log.HandlerOptions{Level: ParseLevel(cfg.Level)})
	return log.New(&ContextHandler{h})
}

func newHandler(w io.Writer, format string, opts *log.HandlerOptions) log.Handler {
	if strings.EqualFold(format, "text") {
		return log.NewTextHandler(w, opts)
	}
	return log.NewJSONHandler(w, opts)
}

// ParseLevel 无法识别时回落到 info
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
