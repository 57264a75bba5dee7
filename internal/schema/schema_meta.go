package schema

import "time"

// SchemaMeta 记录 kv 存储的 schema 版本。单行表（ID=1），
// 迁移逻辑比对版本号决定是否升级，不把升级完全交给 AutoMigrate。
type SchemaMeta struct {
	ID            int       `gorm:"primaryKey"`
	SchemaVersion int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (SchemaMeta) TableName() string {
	return "schema_meta"
}
