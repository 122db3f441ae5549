package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTraceMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})

	tests := []struct {
		name    string
		header  string
		wantSet bool
	}{
		{"generated when absent", "", false},
		{"propagated when present", "abc-123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set(TraceHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			got := rr.Header().Get(TraceHeader)
			if got == "" {
				t.Fatal("trace header not set")
			}
			if tt.wantSet && got != tt.header {
				t.Errorf("trace id = %q, want %q", got, tt.header)
			}
			if rr.Body.String() != got {
				t.Errorf("context trace id %q != header %q", rr.Body.String(), got)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantAllow  string
		wantExpose bool
		wantCode   int
	}{
		{"any origin", nil, "http://a.test", http.MethodGet, "*", true, http.StatusOK},
		{"listed origin", []string{"http://a.test"}, "http://a.test", http.MethodGet, "http://a.test", true, http.StatusOK},
		{"unlisted origin", []string{"http://a.test"}, "http://b.test", http.MethodGet, "", false, http.StatusForbidden},
		{"no origin", []string{"http://a.test"}, "", http.MethodGet, "", false, http.StatusOK},
		{"preflight", []string{"http://a.test"}, "http://a.test", http.MethodOptions, "http://a.test", false, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORSMiddleware(tt.allowed))
			r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantCode)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("allow origin = %q, want %q", got, tt.wantAllow)
			}
			expose := rr.Header().Get("Access-Control-Expose-Headers")
			if got := strings.Contains(expose, "Location"); got != tt.wantExpose {
				t.Errorf("expose headers = %q, want Location exposed: %v", expose, tt.wantExpose)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		rps           int
		expectLimited bool
	}{
		{"enabled", 1, true},
		{"disabled with 0", 0, false},
		{"disabled with negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RateLimitMiddleware(tt.rps, 1))
			r.POST("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

			var last int
			for i := 0; i < 2; i++ {
				rr := httptest.NewRecorder()
				r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/test", nil))
				last = rr.Code
			}

			if tt.expectLimited && last != http.StatusTooManyRequests {
				t.Errorf("second request status = %d, want 429", last)
			}
			if !tt.expectLimited && last != http.StatusOK {
				t.Errorf("second request status = %d, want 200", last)
			}
		})
	}
}

func TestAuditMiddlewareKeepsBody(t *testing.T) {
	r := gin.New()
	r.Use(AuditMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		var body struct {
			Title string `json:"title"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.String(http.StatusOK, body.Title)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"title":"제목"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "제목" {
		t.Errorf("got %d %q", rr.Code, rr.Body.String())
	}
}
