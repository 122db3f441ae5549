package redis

import (
	"Sokdak/internal/pkg/consts"
	"context"
	log "log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// PostViewCounter 在 Redis 中累计尚未落库的浏览量
type PostViewCounter struct {
	rdb *redis.Client
}

func NewPostViewCounter(rdb *redis.Client) *PostViewCounter {
	return &PostViewCounter{rdb: rdb}
}

func viewKey(postID uint64) string {
	return consts.PostViewKey + strconv.FormatUint(postID, 10)
}

// Incr 浏览量 +1 并标记脏数据, 返回待落库的浏览量
func (s *PostViewCounter) Incr(ctx context.Context, postID uint64) (int64, error) {
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, viewKey(postID))
	pipe.SAdd(ctx, consts.PostViewDirtyKey, postID)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Drain 取出所有脏帖子的增量并清零
func (s *PostViewCounter) Drain(ctx context.Context) (map[uint64]int64, error) {
	// 上次 Drain 中断留下的处理集合先并回脏集合, 否则会被 RENAME 覆盖
	if err := s.requeue(ctx); err != nil {
		return nil, err
	}

	ok, err := RenameIfExists(ctx, s.rdb, consts.PostViewDirtyKey, consts.PostViewProcessingKey)
	if err != nil || !ok {
		return nil, err
	}

	members, err := s.rdb.SMembers(ctx, consts.PostViewProcessingKey).Result()
	if err != nil {
		return nil, err
	}
	ids, invalid := StrSliceToUInt64Slice(members)
	if len(invalid) > 0 {
		log.WarnContext(ctx, "skip invalid post view members", "members", invalid)
	}

	deltas := make(map[uint64]int64, len(ids))
	for _, id := range ids {
		n, err := GetDelInt64(ctx, s.rdb, viewKey(id))
		if err != nil {
			log.ErrorContext(ctx, "drain post view error", "post_id", id, "err", err)
			if aErr := s.rdb.SAdd(ctx, consts.PostViewDirtyKey, id).Err(); aErr != nil {
				log.ErrorContext(ctx, "requeue post view error", "post_id", id, "err", aErr)
			}
			continue
		}
		if n > 0 {
			deltas[id] = n
		}
	}

	// 增量已取出, 删除失败只会在下次 Drain 时多并回一些空计数
	if err = s.rdb.Del(ctx, consts.PostViewProcessingKey).Err(); err != nil {
		log.WarnContext(ctx, "delete post view processing set error", "err", err)
	}
	return deltas, nil
}

func (s *PostViewCounter) requeue(ctx context.Context) error {
	n, err := s.rdb.Exists(ctx, consts.PostViewProcessingKey).Result()
	if err != nil || n == 0 {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.SUnionStore(ctx, consts.PostViewDirtyKey, consts.PostViewDirtyKey, consts.PostViewProcessingKey)
	pipe.Del(ctx, consts.PostViewProcessingKey)
	_, err = pipe.Exec(ctx)
	return err
}

// Restore 落库失败时把增量加回去
func (s *PostViewCounter) Restore(ctx context.Context, postID uint64, delta int64) error {
	pipe := s.rdb.TxPipeline()
	pipe.IncrBy(ctx, viewKey(postID), delta)
	pipe.SAdd(ctx, consts.PostViewDirtyKey, postID)
	_, err := pipe.Exec(ctx)
	return err
}
