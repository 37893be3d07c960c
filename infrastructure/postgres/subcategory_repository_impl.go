package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Madhavladani/adeptjs64/domain/models"
	"github.com/Madhavladani/adeptjs64/domain/repositories"
)

type SubcategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewSubcategoryRepository(db *gorm.DB) repositories.SubcategoryRepository {
	return &SubcategoryRepositoryImpl{db: db}
}

func (r *SubcategoryRepositoryImpl) Create(ctx context.Context, subcategory *models.Subcategory) error {
	return r.db.WithContext(ctx).Omit("Category").Create(subcategory).Error
}

func (r *SubcategoryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Subcategory, error) {
	var sub models.Subcategory
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&sub).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &sub, nil
}

func (r *SubcategoryRepositoryImpl) List(ctx context.Context) ([]*models.Subcategory, error) {
	var subs []*models.Subcategory
	err := r.db.WithContext(ctx).
		Preload("Category", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order("name ASC").
		Find(&subs).Error
	return subs, err
}

func (r *SubcategoryRepositoryImpl) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Subcategory, error) {
	var subs []*models.Subcategory
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("name ASC").Find(&subs).Error
	return subs, err
}

func (r *SubcategoryRepositoryImpl) ListByCreation(ctx context.Context) ([]*models.Subcategory, error) {
	var subs []*models.Subcategory
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&subs).Error
	return subs, err
}

func (r *SubcategoryRepositoryImpl) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.Subcategory{}).Where("id IN ?", ids).Pluck("id", &found).Error
	return found, err
}

func (r *SubcategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subcategory_id = ?", id).Delete(&models.ComponentSubcategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&models.MenuOrder{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Subcategory{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repositories.ErrNotFound
		}
		return nil
	})
}
