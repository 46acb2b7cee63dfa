package repository

import (
	"context"
	"errors"
	"fmt"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL error codes the store translates into domain error kinds.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// GormStore persists the template and estimate hierarchies in PostgreSQL.
//
// A GormStore returned by WithinTx is bound to that transaction; nested WithinTx calls
// join it instead of opening savepoints.
type GormStore struct {
	db   *gorm.DB
	inTx bool
}

var _ interfaces.IEstimateStore = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates or updates every table and unique index the store relies on.
func (s *GormStore) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(gormModels()...)
}

func (s *GormStore) WithinTx(ctx context.Context, fn func(tx interfaces.IEstimateStore) error) error {
	return s.write(ctx, func(tx *GormStore) error { return fn(tx) })
}

// write runs fn in the ambient transaction or opens one for multi-statement writes.
func (s *GormStore) write(ctx context.Context, fn func(tx *GormStore) error) error {
	if s.inTx {
		return fn(s)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, inTx: true})
	})
}

func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// findByID loads one row by primary key. found is false on a miss.
func findByID[R any](ctx context.Context, s *GormStore, id string) (R, bool, error) {
	var row R
	err := s.conn(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, false, nil
	}
	if err != nil {
		return row, false, err
	}
	return row, true, nil
}

// findOne loads the first row matching query. found is false on a miss.
func findOne[R any](ctx context.Context, s *GormStore, query string, args ...any) (R, bool, error) {
	var row R
	err := s.conn(ctx).Where(query, args...).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, false, nil
	}
	if err != nil {
		return row, false, err
	}
	return row, true, nil
}

func exists[R any](ctx context.Context, s *GormStore, query string, args ...any) (bool, error) {
	var n int64
	var row R
	if err := s.conn(ctx).Model(&row).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// updateColumns writes the given columns of the row with id and reports whether a row matched.
func updateColumns[R any](ctx context.Context, s *GormStore, id string, cols map[string]any) (bool, error) {
	var row R
	res := s.conn(ctx).Model(&row).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// deleteByID removes the row with id; a miss is reported as entities.ErrNotFound.
func deleteByID[R any](ctx context.Context, s *GormStore, entity, id string) error {
	var row R
	res := s.conn(ctx).Where("id = ?", id).Delete(&row)
	if res.Error != nil {
		return mapPgError(entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(entity, id)
	}
	return nil
}

// mapPgError translates constraint violations into domain error kinds.
func mapPgError(entity string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s %w: %s", entity, entities.ErrDuplicateRelation, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s %w: %s", entity, entities.ErrDeleteRestricted, pgErr.ConstraintName)
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s %w", entity, entities.ErrDuplicateRelation)
	}
	return err
}

func ensureID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func notFound(entity, id string) error {
	return fmt.Errorf("%s %w: id=%s", entity, entities.ErrNotFound, id)
}

func restricted(entity, id, reason string) error {
	return fmt.Errorf("%s %w: id=%s %s", entity, entities.ErrDeleteRestricted, id, reason)
}
