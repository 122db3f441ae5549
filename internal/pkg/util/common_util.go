package util

import (
	"strings"
	"time"
)

// FormatTime 零值返回空串
func FormatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

// IsBlank 仅包含空白字符也视为空
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// PtrInt 用于将 int 转换为 *int
func PtrInt(i int) *int {
	return &i
}
