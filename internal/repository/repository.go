package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormRepository implements the insertAll/queryAll/queryEmpty operations
// shared by every record type.
type gormRepository[T any] struct {
	db *gorm.DB
}

// InsertAll adds all records in a single INSERT statement. The store
// assigns primary keys, which GORM writes back into the records.
func (r gormRepository[T]) InsertAll(ctx context.Context, records []*T) error {
	if len(records) == 0 {
		return nil
	}
	// Create on a slice issues one multi-row INSERT. Associations are omitted
	// so GORM never upserts a related record behind the caller's back.
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(records).Error
}

// QueryAll retrieves every row ordered by primary key.
func (r gormRepository[T]) QueryAll(ctx context.Context) ([]T, error) {
	var rows []T
	// GORM's Find retrieves all records into the slice; without Order the
	// row order is whatever the store returns.
	result := r.db.WithContext(ctx).Order("id").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// QueryEmpty reports whether the table has no rows.
func (r gormRepository[T]) QueryEmpty(ctx context.Context) (bool, error) {
	var rows []T
	// Find with Limit(1) instead of First: an empty table is a normal
	// answer here, not gorm.ErrRecordNotFound.
	result := r.db.WithContext(ctx).Select("id").Limit(1).Find(&rows)
	if result.Error != nil {
		return false, result.Error
	}
	return len(rows) == 0, nil
}
