package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvModel maps to the kv_entries table.
type kvModel struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (kvModel) TableName() string {
	return tableName
}

// PostgresKV stores values in PostgreSQL through gorm.
type PostgresKV struct {
	db *gorm.DB
}

// OpenPostgres connects to databaseURL and verifies the connection.
// The table is created by Migrate (operator migrate), not here.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresKV, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return NewPostgresKV(db), nil
}

// NewPostgresKV wraps an existing gorm handle.
func NewPostgresKV(db *gorm.DB) *PostgresKV {
	return &PostgresKV{db: db}
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var record kvModel
	result := p.db.WithContext(ctx).Where("key = ?", key).Limit(1).Find(&record)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return record.Value, true, nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	record := kvModel{Key: key, Value: value, UpdatedAt: time.Now()}
	err := p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Migrate creates or updates the kv table.
func (p *PostgresKV) Migrate(ctx context.Context) error {
	if err := p.db.WithContext(ctx).AutoMigrate(&kvModel{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (p *PostgresKV) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (p *PostgresKV) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
