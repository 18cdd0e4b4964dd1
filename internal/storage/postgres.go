// internal/storage/postgres.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// clientValue is one persisted client-storage entry.
type clientValue struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (clientValue) TableName() string {
	return "client_storage"
}

// PostgresStorage keeps client storage in a single key-value table,
// upserting on write.
type PostgresStorage struct {
	db *gorm.DB
}

func NewPostgresStorage(db *gorm.DB) (*PostgresStorage, error) {
	if err := db.AutoMigrate(&clientValue{}); err != nil {
		return nil, fmt.Errorf("failed to migrate client storage table: %w", err)
	}
	return &PostgresStorage{db: db}, nil
}

func (p *PostgresStorage) Get(ctx context.Context, key string) (string, error) {
	var row clientValue
	err := p.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return row.Value, nil
}

func (p *PostgresStorage) Set(ctx context.Context, key, value string) error {
	row := clientValue{Key: key, Value: value, UpdatedAt: time.Now()}
	err := p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (p *PostgresStorage) Delete(ctx context.Context, key string) error {
	return p.db.WithContext(ctx).Delete(&clientValue{}, "key = ?", key).Error
}
