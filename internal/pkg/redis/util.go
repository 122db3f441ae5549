package redis

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RenameIfExists key 不存在时返回 false 而不是错误
func RenameIfExists(ctx context.Context, rdb *redis.Client, key, newKey string) (bool, error) {
	n, err := rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	if err = rdb.Rename(ctx, key, newKey).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// GetDelInt64 取出整数值并删除 key, key 不存在时返回 0
func GetDelInt64(ctx context.Context, rdb *redis.Client, key string) (int64, error) {
	value, err := rdb.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

// StrSliceToUInt64Slice 转换集合成员, 非法成员单独返回
func StrSliceToUInt64Slice(members []string) ([]uint64, []string) {
	ids := make([]uint64, 0, len(members))
	var invalid []string
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			invalid = append(invalid, m)
			continue
		}
		ids = append(ids, id)
	}
	return ids, invalid
}
