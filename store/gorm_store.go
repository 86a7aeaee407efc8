package store

import (
	"errors"
	"time"

	"github.com/LuckyLyon/lifeos/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore 基于records表的键值存储，同键覆盖写（last-writer-wins）
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) (string, bool) {
	var record models.Record
	if err := s.db.Where("`key` = ?", key).First(&record).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logWarn("读取记录失败", "key", key, "error", err)
		}
		return "", false
	}
	return record.Value, true
}

func (s *GormStore) Set(key, value string) error {
	record := models.Record{
		Key:          key,
		Value:        value,
		LastModified: time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "last_modified"}),
	}).Create(&record).Error
}

func (s *GormStore) Delete(key string) error {
	return s.db.Where("`key` = ?", key).Delete(&models.Record{}).Error
}
