package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
database:
  driver: mysql
  dsn: "u:p@tcp(db:3306)/sokdak"
post:
  default_page_size: 20
  max_page_size: 50
`)

	if err := LoadConfig(dir); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if Cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", Cfg.Server.Port)
	}
	if Cfg.DB.Driver != "mysql" || Cfg.DB.DSN != "u:p@tcp(db:3306)/sokdak" {
		t.Errorf("unexpected database config: %+v", Cfg.DB)
	}
	if Cfg.Post.DefaultPageSize != 20 || Cfg.Post.MaxPageSize != 50 {
		t.Errorf("unexpected post config: %+v", Cfg.Post)
	}
	// 未配置的字段保持默认值
	if Cfg.Job.ViewSyncSpec != "@every 1m" {
		t.Errorf("view sync spec = %q, want default", Cfg.Job.ViewSyncSpec)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("SOKDAK_SERVER_PORT", "7070")
	t.Setenv("SOKDAK_REDIS_ADDR", "cache:6379")

	if err := LoadConfig(dir); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if Cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", Cfg.Server.Port)
	}
	if Cfg.Redis.Addr != "cache:6379" {
		t.Errorf("redis addr = %q, want cache:6379", Cfg.Redis.Addr)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	if err := LoadConfig(t.TempDir()); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if Cfg.DB.Driver != "sqlite" {
		t.Errorf("driver = %q, want sqlite", Cfg.DB.Driver)
	}
	if Cfg.Post.DefaultPageSize != 10 || Cfg.Post.MaxPageSize != 100 {
		t.Errorf("unexpected post defaults: %+v", Cfg.Post)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "database:\n  driver: oracle\n"},
		{"empty dsn", "database:\n  dsn: \"\"\n"},
		{"page size above max", "post:\n  default_page_size: 200\n  max_page_size: 100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
