package wire

import (
	"Sokdak/internal/api"
	"Sokdak/internal/api/config"
	"Sokdak/internal/api/handler"
	"Sokdak/internal/job"
	"Sokdak/internal/pkg/cron"
	"Sokdak/internal/pkg/redis"
	"Sokdak/internal/repository"
	"Sokdak/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

// BuildApplication rdb 为 nil 时不统计浏览量
func BuildApplication(db *gorm.DB, rdb *goredis.Client, cfg *config.Config) (*ApplicationContainer, error) {
	if db == nil || cfg == nil {
		return nil, errors.New("database and config are required")
	}

	postRepo := repository.NewPostRepository(db)

	var viewCounter service.ViewCounter = service.NoopViewCounter{}
	if rdb != nil {
		viewCounter = redis.NewPostViewCounter(rdb)
	}
	postService := service.NewPostService(postRepo, viewCounter, cfg.Post)

	handlers := &api.HandlersGroup{
		PostHandler: handler.NewPostHandler(postService),
	}

	router := api.SetupRouter(handlers, cfg.Server)

	cronMgr := cron.NewCronManager(job.NewPostViewJob(postService), cfg.Job.ViewSyncSpec)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
