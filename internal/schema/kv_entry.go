package schema

import "time"

// KVEntry 键值存储行。账本、各类日志均以 JSON 文本存放在 value 里，
// 一个 key 对应一个特性（见 internal/model 的 key 常量）。
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:255" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (KVEntry) TableName() string {
	return "kv_entries"
}
