package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Lookup answers point existence queries against any table.
type Lookup interface {
	Exists(ctx context.Context, table, column string, value interface{}) (bool, error)
}

type lookup struct {
	db *gorm.DB
}

func NewLookup(db *gorm.DB) Lookup {
	return &lookup{db}
}

func (l *lookup) Exists(ctx context.Context, table, column string, value interface{}) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).
		Table(table).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
