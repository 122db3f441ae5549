package repository

import (
	"Sokdak/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	Save(ctx context.Context, post *model.Post) (uint64, error)
	FindByID(ctx context.Context, id uint64) (*model.Post, error)
	FindPage(ctx context.Context, page, size int) ([]*model.Post, error)
	Count(ctx context.Context) (int64, error)
	UpdateContent(ctx context.Context, id uint64, title, content string) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
	AddViews(ctx context.Context, id uint64, delta int64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// Save 写入帖子并返回数据库分配的 ID
func (s *PostRepoImpl) Save(ctx context.Context, post *model.Post) (uint64, error) {
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return 0, err
	}
	return post.ID, nil
}

// FindByID 帖子不存在或已删除时返回 nil, nil
func (s *PostRepoImpl) FindByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// FindPage 按 ID 倒序分页, page 从 0 开始
func (s *PostRepoImpl) FindPage(ctx context.Context, page, size int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, size)
	err := s.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("id DESC").
		Offset(page * size).
		Limit(size).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("is_deleted = ?", false).
		Count(&total).Error
	return total, err
}

// UpdateContent 返回受影响行数, 0 表示帖子不存在
func (s *PostRepoImpl) UpdateContent(ctx context.Context, id uint64, title, content string) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"title":   title,
			"content": content,
		})
	return result.RowsAffected, result.Error
}

// Delete 软删除, 返回受影响行数
func (s *PostRepoImpl) Delete(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}

// AddViews 累加浏览量, 不更新 updated_at
func (s *PostRepoImpl) AddViews(ctx context.Context, id uint64, delta int64) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", delta)).Error
}
