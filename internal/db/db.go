package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Warn),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// WithContext returns a session bound to ctx for queries the helpers below do not cover.
func (f *PostgresDB) WithContext(ctx context.Context) *gorm.DB {
	return f.DB.WithContext(ctx)
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// Exists reports whether at least one row of model matches column = value.
func (f *PostgresDB) Exists(ctx context.Context, model any, column string, value any) (bool, error) {
	var count int64
	err := f.DB.WithContext(ctx).Model(model).Where(fmt.Sprintf("%s = ?", column), value).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("counting records by %q: %w", column, err)
	}
	return count > 0, nil
}

// Atomic runs fn inside a database transaction. Any error returned by fn rolls it back.
func (f *PostgresDB) Atomic(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return f.DB.WithContext(ctx).Transaction(fn)
}

func (f *PostgresDB) Exec(ctx context.Context, statement string, args ...any) error {
	if err := f.DB.WithContext(ctx).Exec(statement, args...).Error; err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}
