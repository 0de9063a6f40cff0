package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.Catalog = (*GormCatalogRepository)(nil)

// GormCatalogRepository implements ports.Catalog using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserDTO{}, &MaterialDTO{})
}

// SaveUser inserts the user or overwrites an existing one.
func (r *GormCatalogRepository) SaveUser(ctx context.Context, user order.UserSnapshot) error {
	if user.IsZero() {
		return errs.NewValueIsRequiredError("user")
	}

	dto := userFromDomain(user)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
}

// SaveMaterial inserts the material or overwrites an existing one, stock included.
func (r *GormCatalogRepository) SaveMaterial(ctx context.Context, material order.MaterialSnapshot, stockGrams int) error {
	if material.IsZero() {
		return errs.NewValueIsRequiredError("material")
	}
	if stockGrams < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock_grams", fmt.Errorf("%d is negative", stockGrams))
	}

	dto := materialFromDomain(material, stockGrams)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
}

func (r *GormCatalogRepository) GetUser(ctx context.Context, username string) (order.UserSnapshot, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.UserSnapshot{}, errs.NewObjectNotFoundError("user", username)
		}
		return order.UserSnapshot{}, err
	}
	return userToDomain(dto), nil
}

func (r *GormCatalogRepository) GetMaterial(ctx context.Context, name string) (order.MaterialSnapshot, error) {
	dto, err := r.material(ctx, name)
	if err != nil {
		return order.MaterialSnapshot{}, err
	}
	return materialToDomain(dto), nil
}

func (r *GormCatalogRepository) StockGrams(ctx context.Context, material string) (int, error) {
	dto, err := r.material(ctx, material)
	if err != nil {
		return 0, err
	}
	return dto.StockGrams, nil
}

// Consume decrements stock with a single conditional UPDATE, so concurrent
// submissions can never drive stock below zero.
func (r *GormCatalogRepository) Consume(ctx context.Context, material string, grams int) error {
	if grams < 0 {
		return errs.NewValueIsInvalidErrorWithCause("grams", fmt.Errorf("%d is negative", grams))
	}

	result := r.db.WithContext(ctx).
		Model(&MaterialDTO{}).
		Where("lookup_key = ? AND stock_grams >= ?", materialKey(material), grams).
		UpdateColumn("stock_grams", gorm.Expr("stock_grams - ?", grams))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	stock, err := r.StockGrams(ctx, material)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s has %dg, %dg requested", ports.ErrInsufficientStock, material, stock, grams)
}

// CountMaterials reports how many materials are stored.
func (r *GormCatalogRepository) CountMaterials(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&MaterialDTO{}).Count(&n).Error
	return n, err
}

func (r *GormCatalogRepository) material(ctx context.Context, name string) (MaterialDTO, error) {
	var dto MaterialDTO
	if err := r.db.WithContext(ctx).First(&dto, "lookup_key = ?", materialKey(name)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MaterialDTO{}, errs.NewObjectNotFoundError("material", name)
		}
		return MaterialDTO{}, err
	}
	return dto, nil
}
