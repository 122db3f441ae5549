package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type accessLog struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Msg     string `json:"msg"`
	TraceID string `json:"trace_id,omitempty"`
	Method  string `json:"method"`
	Path    string `json:"path"`
	Status  int    `json:"status"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}

func SetupGin(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		Formatter: formatAccessLog,
	}))

	r.Use(gin.Recovery())
}

func formatAccessLog(p gin.LogFormatterParams) string {
	var traceID string
	if p.Keys != nil {
		if id, ok := p.Keys[string(TraceIDKey)].(string); ok {
			traceID = id
		}
	}
	if traceID == "" && p.Request != nil {
		traceID = TraceID(p.Request.Context())
	}

	b, err := json.Marshal(accessLog{
		Time:    p.TimeStamp.Format(time.RFC3339),
		Level:   "INFO",
		Msg:     "GIN_ACCESS",
		TraceID: traceID,
		Method:  p.Method,
		Path:    p.Path,
		Status:  p.StatusCode,
		Latency: p.Latency.String(),
		Error:   p.ErrorMessage,
	})
	if err != nil {
		return ""
	}
	return string(b) + "\n"
}
