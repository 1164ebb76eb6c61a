package model

import "time"

// KVRecord MySQL 持久化端口的行结构：一键一行，值为 JSON 文本
type KVRecord struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"type:longtext;not null"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (KVRecord) TableName() string {
	return "kv_records"
}
