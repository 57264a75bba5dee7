package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yuqie6/lifemirror/internal/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository 键值仓储，storage.Store 的 SQLite 实现
type KVRepository struct {
	db *gorm.DB
}

// NewKVRepository 创建仓储
func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get 读取 key 对应的值；不存在时返回 ok=false
func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry schema.KVEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("查询键值失败: %w", err)
	}
	return entry.Value, true, nil
}

// Set 插入或更新
func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	entry := schema.KVEntry{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("写入键值失败: %w", err)
	}
	return nil
}

// Remove 删除 key；key 不存在时视为成功
func (r *KVRepository) Remove(ctx context.Context, key string) error {
	err := r.db.WithContext(ctx).Where("key = ?", key).Delete(&schema.KVEntry{}).Error
	if err != nil {
		return fmt.Errorf("删除键值失败: %w", err)
	}
	return nil
}

// Keys 枚举指定前缀的所有 key
func (r *KVRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Model(&schema.KVEntry{}).
		Where("key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
		Order("key ASC").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("枚举键失败: %w", err)
	}
	return keys, nil
}

// escapeLike 转义 LIKE 通配符，key 前缀里可能出现下划线
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
