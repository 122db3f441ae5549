// Package testutil 提供测试用的内存存储
package testutil

import (
	"Sokdak/internal/api/config"
	"Sokdak/internal/pkg/database"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewDB 返回一个迁移完成的 sqlite 内存库, 单连接保证各查询看到同一个库
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.NewGormDB(&config.DBConfig{
		Driver:      "sqlite",
		DSN:         ":memory:",
		MaxIdle:     1,
		MaxOpen:     1,
		AutoMigrate: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// NewRedis 启动 miniredis 并返回连接它的客户端
func NewRedis(t testing.TB) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}
