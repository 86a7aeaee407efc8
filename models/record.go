package models

import "time"

// Record 键值存储记录，所有业务数据按语义键落在这一张表里
type Record struct {
	Key          string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value        string    `gorm:"type:longtext" json:"value"`
	LastModified time.Time `json:"lastModified"`
}
