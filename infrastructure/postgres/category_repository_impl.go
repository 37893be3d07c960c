package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Madhavladani/adeptjs64/domain/models"
	"github.com/Madhavladani/adeptjs64/domain/repositories"
)

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id IN ?", ids).Pluck("id", &found).Error
	return found, err
}

// Delete ลบ category และทุกอย่างที่อ้างถึง (subcategories, join rows, menu entries)
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subIDs := func() *gorm.DB {
			return tx.Model(&models.Subcategory{}).Select("id").Where("category_id = ?", id)
		}

		if err := tx.Where("subcategory_id IN (?)", subIDs()).Delete(&models.ComponentSubcategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id IN (?)", subIDs()).Delete(&models.MenuOrder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Subcategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.ComponentCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&models.MenuOrder{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Category{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repositories.ErrNotFound
		}
		return nil
	})
}
