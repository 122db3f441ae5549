package service

import (
	"Sokdak/internal/api/config"
	"Sokdak/internal/api/dto"
	"Sokdak/internal/model"
	"Sokdak/internal/pkg/consts"
	"Sokdak/internal/pkg/util"
	"Sokdak/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"math"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, postDTO *dto.PostBaseDTO) (uint64, error)
	ListPosts(ctx context.Context, page, size *int) (*dto.PostsDTO, error)
	GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, postID uint64, postDTO *dto.PostBaseDTO) error
	DeletePost(ctx context.Context, postID uint64) error
	SyncPostViews(ctx context.Context) (int, error)
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	viewCounter ViewCounter
	pageCfg     config.PostConfig
}

func NewPostService(postRepo repository.PostRepo, viewCounter ViewCounter, pageCfg config.PostConfig) PostService {
	if viewCounter == nil {
		viewCounter = NoopViewCounter{}
	}
	return &postServiceImpl{
		postRepo:    postRepo,
		viewCounter: viewCounter,
		pageCfg:     pageCfg,
	}
}

// CreatePost 校验通过后落库, 返回新帖子 ID
func (s *postServiceImpl) CreatePost(ctx context.Context, postDTO *dto.PostBaseDTO) (uint64, error) {
	if err := validatePost(postDTO); err != nil {
		return 0, err
	}

	post := &model.Post{}
	if err := copier.Copy(post, postDTO); err != nil {
		return 0, err
	}

	id, err := s.postRepo.Save(ctx, post)
	if err != nil {
		log.ErrorContext(ctx, "save post error", "err", err)
		return 0, fmt.Errorf("save post: %w", err)
	}
	return id, nil
}

// ListPosts 最新帖子在前
func (s *postServiceImpl) ListPosts(ctx context.Context, page, size *int) (*dto.PostsDTO, error) {
	p, sz := s.normalizePage(page, size)

	// Count 与 FindPage 不在同一事务, 并发写入时 last_page 可能滞后一页
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	items := make([]*dto.PostSummaryDTO, 0, sz)
	if int64(p)*int64(sz) < total {
		posts, err := s.postRepo.FindPage(ctx, p, sz)
		if err != nil {
			return nil, fmt.Errorf("find post page: %w", err)
		}
		for _, post := range posts {
			item := &dto.PostSummaryDTO{}
			if err = copier.CopyWithOption(item, post, copyOption); err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}

	return &dto.PostsDTO{
		Posts:      items,
		TotalCount: total,
		Page:       p,
		Size:       sz,
		LastPage:   int64(p+1)*int64(sz) >= total,
	}, nil
}

// GetPost 获取单个帖子并记录一次浏览
func (s *postServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("find post %d: %w", postID, err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	pending, err := s.viewCounter.Incr(ctx, postID)
	if err != nil {
		// 计数失败不影响读取
		log.WarnContext(ctx, "incr post view error", "post_id", postID, "err", err)
	}

	out := &dto.PostDTO{}
	if err = copier.CopyWithOption(out, post, copyOption); err != nil {
		return nil, err
	}
	out.Views = post.Views + pending
	return out, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, postID uint64, postDTO *dto.PostBaseDTO) error {
	if err := validatePost(postDTO); err != nil {
		return err
	}

	rows, err := s.postRepo.UpdateContent(ctx, postID, postDTO.Title, postDTO.Content)
	if err != nil {
		return fmt.Errorf("update post %d: %w", postID, err)
	}
	if rows == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, postID uint64) error {
	rows, err := s.postRepo.Delete(ctx, postID)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}
	if rows == 0 {
		return ErrPostNotFound
	}
	return nil
}

// SyncPostViews 将 Redis 中的浏览量增量写回数据库, 返回同步的帖子数
func (s *postServiceImpl) SyncPostViews(ctx context.Context) (int, error) {
	deltas, err := s.viewCounter.Drain(ctx)
	if err != nil {
		return 0, fmt.Errorf("drain post views: %w", err)
	}

	synced := 0
	for pid, delta := range deltas {
		if err = s.postRepo.AddViews(ctx, pid, delta); err != nil {
			log.ErrorContext(ctx, "add post views error", "post_id", pid, "err", err)
			if rErr := s.viewCounter.Restore(ctx, pid, delta); rErr != nil {
				log.ErrorContext(ctx, "restore post views error", "post_id", pid, "delta", delta, "err", rErr)
			}
			continue
		}
		synced++
	}
	return synced, nil
}

func (s *postServiceImpl) normalizePage(page, size *int) (int, int) {
	p := consts.DefaultPage
	if page != nil && *page > 0 {
		p = *page
	}

	sz := s.pageCfg.DefaultPageSize
	if size != nil && *size > 0 {
		sz = *size
	}
	if sz > s.pageCfg.MaxPageSize {
		sz = s.pageCfg.MaxPageSize
	}
	// (p+1)*sz 不能溢出 int
	if maxPage := math.MaxInt/sz - 1; p > maxPage {
		p = maxPage
	}
	return p, sz
}

func validatePost(postDTO *dto.PostBaseDTO) error {
	if postDTO == nil || util.IsBlank(postDTO.Title) || util.IsBlank(postDTO.Content) {
		return ErrPostInvalid
	}
	if err := util.ValidateDTO(postDTO); err != nil {
		return fmt.Errorf("%w: %v", ErrPostInvalid, err)
	}
	return nil
}

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				t, _ := src.(time.Time)
				return util.FormatTime(t, consts.TimeLayout), nil
			},
		},
	},
}
