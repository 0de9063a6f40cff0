// Package postgres provides the GORM-backed unit of work used to change the
// catalog atomically.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.CatalogRepository().SaveMaterial(ctx, pla, 5000); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin or after Commit/Rollback run on the
// plain connection and autocommit every statement.
package postgres

import (
	"context"
	"fmt"

	"printshop/internal/adapters/out/postgres/catalogrepo"
	"printshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new unit of work. Instances are not safe for concurrent use.
func (f *GormUnitOfWorkFactory) Create() *GormUnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork wraps a single database transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CatalogRepository returns a repository bound to the open transaction, or
// to the plain connection when none is open.
func (uow *GormUnitOfWork) CatalogRepository() *catalogrepo.GormCatalogRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return catalogrepo.NewGormCatalogRepository(db)
}

// StockedMaterial pairs a catalog entry with its initial stock.
type StockedMaterial struct {
	Material   order.MaterialSnapshot
	StockGrams int
}

// SeedCatalog writes users and materials in one transaction when the
// materials table is empty. It reports whether anything was written.
func SeedCatalog(
	ctx context.Context,
	factory *GormUnitOfWorkFactory,
	users []order.UserSnapshot,
	materials []StockedMaterial,
) (bool, error) {
	n, err := factory.Create().CatalogRepository().CountMaterials(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	uow := factory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	repo := uow.CatalogRepository()
	for _, u := range users {
		if err = repo.SaveUser(ctx, u); err != nil {
			_ = uow.Rollback(ctx)
			return false, fmt.Errorf("seed user %s: %w", u.Username(), err)
		}
	}
	for _, m := range materials {
		if err = repo.SaveMaterial(ctx, m.Material, m.StockGrams); err != nil {
			_ = uow.Rollback(ctx)
			return false, fmt.Errorf("seed material %s: %w", m.Material.Name(), err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
