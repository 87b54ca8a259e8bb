package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryModel is the table row of SQLBackend.
type EntryModel struct {
	Namespace string    `gorm:"primaryKey;size:64"`
	Key       string    `gorm:"column:entry_key;primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (EntryModel) TableName() string {
	return "kv_entries"
}

// SQLBackend stores entries in a gorm-managed table, one row per key.
type SQLBackend struct {
	db        *gorm.DB
	namespace string
}

// NewSQLBackend migrates the entry table and returns a backend scoped to namespace.
func NewSQLBackend(db *gorm.DB, namespace string) (*SQLBackend, error) {
	if err := db.AutoMigrate(&EntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &SQLBackend{db: db, namespace: namespace}, nil
}

func (b *SQLBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var row EntryModel
	err := b.db.WithContext(ctx).
		Where("namespace = ? AND entry_key = ?", b.namespace, key).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load entry: %w", err)
	}
	return row.Value, true, nil
}

func (b *SQLBackend) Set(ctx context.Context, key, value string) error {
	row := EntryModel{Namespace: b.namespace, Key: key, Value: value}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

func (b *SQLBackend) Delete(ctx context.Context, key string) error {
	err := b.db.WithContext(ctx).
		Where("namespace = ? AND entry_key = ?", b.namespace, key).
		Delete(&EntryModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

func (b *SQLBackend) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := b.db.WithContext(ctx).
		Model(&EntryModel{}).
		Where("namespace = ?", b.namespace).
		Order("entry_key").
		Pluck("entry_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return keys, nil
}

func (b *SQLBackend) Clear(ctx context.Context) error {
	err := b.db.WithContext(ctx).
		Where("namespace = ?", b.namespace).
		Delete(&EntryModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	return nil
}
