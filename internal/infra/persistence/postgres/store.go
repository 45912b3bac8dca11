package postgres

import (
	"context"
	"time"

	"giftie/internal/domain/storage"
	"giftie/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the persistence model for the key-value table. All storefront
// state (carts, orders, users, wishlists) lives here as JSON blobs.
type KVEntry struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value;type:bytea;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the GORM table name.
func (KVEntry) TableName() string {
	return "kv_entries"
}

type postgresStore struct {
	db *gorm.DB
}

// NewStore creates a PostgreSQL-backed store and ensures the table exists.
func NewStore(db *gorm.DB) (storage.Store, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_entries")
	}

	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to get kv entry")
	}

	return entry.Value, nil
}

func (s *postgresStore) Put(ctx context.Context, key string, value []byte) error {
	entry := KVEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return errors.Wrap(err, "failed to put kv entry")
	}

	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&KVEntry{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete kv entry")
	}

	return nil
}
