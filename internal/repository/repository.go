package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agrilink/marketplace-backend/pkg/query"
)

// Repository is a generic per-table CRUD gateway. It translates query intent
// into storage operations and normalizes every failure through the error-code
// table; it never retries.
type Repository[T any] struct {
	db *gorm.DB
}

// New creates a repository for the entity table backing T.
func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// FindAll lists rows matching the query options and returns the total count
// of matching rows before pagination.
func (r *Repository[T]) FindAll(ctx context.Context, opts query.Options) ([]T, int64, error) {
	var model T
	tx := r.db.WithContext(ctx).Model(&model)
	tx, err := applyFilters(tx, opts.Filters)
	if err != nil {
		return nil, 0, &Error{Code: ErrCodeValidation, Err: err}
	}
	if opts.Select != "" {
		tx = tx.Select(opts.Select)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, NormalizeError(err)
	}

	for _, s := range opts.Sorts {
		direction := "DESC"
		if s.Ascending {
			direction = "ASC"
		}
		tx = tx.Order(fmt.Sprintf("%s %s", s.Column, direction))
	}
	if p := opts.Pagination; p != nil && p.Limit > 0 {
		tx = tx.Offset(p.Offset()).Limit(p.Limit)
	}

	var results []T
	if err := tx.Find(&results).Error; err != nil {
		return nil, 0, NormalizeError(err)
	}
	return results, total, nil
}

// FindByID fetches a single row by primary key.
func (r *Repository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var result T
	if err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error; err != nil {
		return nil, NormalizeError(err)
	}
	return &result, nil
}

// FindWhere lists rows matching the filters, unsorted and unpaginated.
func (r *Repository[T]) FindWhere(ctx context.Context, filters []query.Filter) ([]T, error) {
	var model T
	tx := r.db.WithContext(ctx).Model(&model)
	tx, err := applyFilters(tx, filters)
	if err != nil {
		return nil, &Error{Code: ErrCodeValidation, Err: err}
	}
	var results []T
	if err := tx.Find(&results).Error; err != nil {
		return nil, NormalizeError(err)
	}
	return results, nil
}

// Count returns the number of rows matching the filters.
func (r *Repository[T]) Count(ctx context.Context, filters []query.Filter) (int64, error) {
	var model T
	tx := r.db.WithContext(ctx).Model(&model)
	tx, err := applyFilters(tx, filters)
	if err != nil {
		return 0, &Error{Code: ErrCodeValidation, Err: err}
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, NormalizeError(err)
	}
	return count, nil
}

// Create inserts a single row and returns it with storage-assigned fields.
func (r *Repository[T]) Create(ctx context.Context, record *T) (*T, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, NormalizeError(err)
	}
	return record, nil
}

// Update applies a partial column map to one row and returns the updated row.
// Last writer wins; there is no version check.
func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*T, error) {
	var model T
	res := r.db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, NormalizeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, &Error{Code: ErrCodeNotFound, Err: gorm.ErrRecordNotFound}
	}
	return r.FindByID(ctx, id)
}

// Delete removes one row unconditionally. Referential cleanup is the storage
// layer's concern.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var model T
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return NormalizeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return &Error{Code: ErrCodeNotFound, Err: gorm.ErrRecordNotFound}
	}
	return nil
}

// applyFilters chains filter clauses in the order listed.
func applyFilters(tx *gorm.DB, filters []query.Filter) (*gorm.DB, error) {
	for _, f := range filters {
		if f.Column == "" {
			return nil, fmt.Errorf("filter with empty column")
		}
		switch f.Operator {
		case query.OpEq:
			tx = tx.Where(f.Column+" = ?", f.Value)
		case query.OpNeq:
			tx = tx.Where(f.Column+" <> ?", f.Value)
		case query.OpGt:
			tx = tx.Where(f.Column+" > ?", f.Value)
		case query.OpGte:
			tx = tx.Where(f.Column+" >= ?", f.Value)
		case query.OpLt:
			tx = tx.Where(f.Column+" < ?", f.Value)
		case query.OpLte:
			tx = tx.Where(f.Column+" <= ?", f.Value)
		case query.OpLike:
			tx = tx.Where(f.Column+" LIKE ?", f.Value)
		case query.OpILike:
			tx = tx.Where(f.Column+" ILIKE ?", f.Value)
		case query.OpIn:
			tx = tx.Where(f.Column+" IN ?", f.Value)
		case query.OpIs:
			if f.Value == nil {
				tx = tx.Where(f.Column + " IS NULL")
			} else {
				tx = tx.Where(f.Column+" IS ?", f.Value)
			}
		default:
			return nil, fmt.Errorf("unsupported filter operator %q", f.Operator)
		}
	}
	return tx, nil
}
