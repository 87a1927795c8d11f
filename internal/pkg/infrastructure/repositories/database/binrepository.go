package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const DefaultBatchSize int = 100

//go:generate moq -rm -out binrepository_mock.go . BinRepository

type BinRepository interface {
	ReplaceAll(ctx context.Context, bins []Bin) error
	GetAll(ctx context.Context) ([]Bin, error)
	Count(ctx context.Context) (int64, error)
	Close() error
}

type RepositoryOption func(*binRepository)

func WithBatchSize(size int) RepositoryOption {
	return func(r *binRepository) {
		if size > 0 {
			r.batchSize = size
		}
	}
}

type binRepository struct {
	db        *gorm.DB
	batchSize int
}

// NewBinRepository connects to the store and makes sure the bins table exists
// before the repository is handed out.
func NewBinRepository(ctx context.Context, connect ConnectorFunc, opts ...RepositoryOption) (BinRepository, error) {
	db, err := connect()
	if err != nil {
		return nil, err
	}

	err = EnsureSchema(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	r := &binRepository{
		db:        db,
		batchSize: DefaultBatchSize,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// ReplaceAll deletes every stored bin and inserts bins in their place within a single
// transaction. On failure the transaction is rolled back and the table keeps its previous content.
func (r *binRepository) ReplaceAll(ctx context.Context, bins []Bin) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range clearStatements(tx.Dialector.Name()) {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}

		if len(bins) == 0 {
			return nil
		}

		return tx.CreateInBatches(&bins, r.batchSize).Error
	})

	return persistenceError("replace", err)
}

func (r *binRepository) GetAll(ctx context.Context) ([]Bin, error) {
	bins := []Bin{}

	result := r.db.WithContext(ctx).Find(&bins)
	if result.Error != nil {
		return nil, persistenceError("select", result.Error)
	}

	return bins, nil
}

func (r *binRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	result := r.db.WithContext(ctx).Model(&Bin{}).Count(&count)
	if result.Error != nil {
		return 0, persistenceError("count", result.Error)
	}

	return count, nil
}

func (r *binRepository) Close() error {
	sqldb, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}
