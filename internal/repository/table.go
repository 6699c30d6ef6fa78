package repository

import (
	"context"
	"time"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/pkg/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// table holds the single-table statements every repository shares.
type table[T any] struct {
	db   *gorm.DB
	name string
	pk   string
}

func (t table[T]) byID(id int64) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: t.pk}, Value: id}
}

func (t table[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	defer metrics.TrackDBOperation(t.name, "find")(time.Now())
	var entity T
	if err := t.db.WithContext(ctx).Where(t.byID(id)).Take(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (t table[T]) Create(ctx context.Context, entity *T) error {
	defer metrics.TrackDBOperation(t.name, "create")(time.Now())
	return t.db.WithContext(ctx).Create(entity).Error
}

// Replace writes every column of entity, zero values included.
func (t table[T]) Replace(ctx context.Context, entity *T) error {
	defer metrics.TrackDBOperation(t.name, "replace")(time.Now())
	return t.db.WithContext(ctx).Model(entity).Select("*").Omit(t.pk).Updates(entity).Error
}

// UpdateColumns writes only the given columns of row id.
func (t table[T]) UpdateColumns(ctx context.Context, id int64, columns map[string]interface{}) error {
	defer metrics.TrackDBOperation(t.name, "update")(time.Now())
	return t.db.WithContext(ctx).Model(new(T)).Where(t.byID(id)).Updates(columns).Error
}

// Delete reports whether a row was removed.
func (t table[T]) Delete(ctx context.Context, id int64) (bool, error) {
	defer metrics.TrackDBOperation(t.name, "delete")(time.Now())
	result := t.db.WithContext(ctx).Where(t.byID(id)).Delete(new(T))
	return result.RowsAffected > 0, result.Error
}

func (t table[T]) FindAll(ctx context.Context) ([]T, error) {
	defer metrics.TrackDBOperation(t.name, "list")(time.Now())
	entities := make([]T, 0)
	if err := t.db.WithContext(ctx).Order(t.pk).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// view runs an enrichment query built by joins.
type view[V any] struct {
	db    *gorm.DB
	name  string
	pk    string
	joins func(db *gorm.DB) *gorm.DB
}

func (v view[V]) FindAll(ctx context.Context) ([]V, error) {
	defer metrics.TrackDBOperation(v.name, "list")(time.Now())
	rows := make([]V, 0)
	if err := v.joins(v.db.WithContext(ctx)).Order(v.pk).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID returns gorm.ErrRecordNotFound when no row matches.
func (v view[V]) FindByID(ctx context.Context, id int64) (*V, error) {
	defer metrics.TrackDBOperation(v.name, "find")(time.Now())
	var row V
	result := v.joins(v.db.WithContext(ctx)).Where(v.pk+" = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
