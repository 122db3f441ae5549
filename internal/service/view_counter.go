package service

import "context"

// ViewCounter 暂存尚未落库的浏览量
type ViewCounter interface {
	Incr(ctx context.Context, postID uint64) (int64, error)
	Drain(ctx context.Context) (map[uint64]int64, error)
	Restore(ctx context.Context, postID uint64, delta int64) error
}

// NoopViewCounter 未配置 Redis 时使用
type NoopViewCounter struct{}

func (NoopViewCounter) Incr(context.Context, uint64) (int64, error) { return 0, nil }

func (NoopViewCounter) Drain(context.Context) (map[uint64]int64, error) { return nil, nil }

func (NoopViewCounter) Restore(context.Context, uint64, int64) error { return nil }
