package job

import (
	"Sokdak/internal/pkg/logger"
	"Sokdak/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// PostViewJob 定期将 Redis 中的浏览量写回数据库
type PostViewJob struct {
	postSvc service.PostService
	timeout time.Duration
}

func NewPostViewJob(postSvc service.PostService) *PostViewJob {
	return &PostViewJob{
		postSvc: postSvc,
		timeout: 30 * time.Second,
	}
}

func (s *PostViewJob) Run() {
	traceID := "job-post-view-" + uuid.NewString()
	ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), traceID), s.timeout)
	defer cancel()

	start := time.Now()
	synced, err := s.postSvc.SyncPostViews(ctx)
	if err != nil {
		log.ErrorContext(ctx, "sync post views error", "err", err)
		return
	}
	if synced > 0 {
		log.InfoContext(ctx, "post views synced", "posts", synced, "latency", time.Since(start))
	}
}
