package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Madhavladani/adeptjs64/domain/models"
	"github.com/Madhavladani/adeptjs64/domain/repositories"
)

type ComponentRepositoryImpl struct {
	db *gorm.DB
}

func NewComponentRepository(db *gorm.DB) repositories.ComponentRepository {
	return &ComponentRepositoryImpl{db: db}
}

// withRelations preload join rows พร้อม entity ปลายทาง
func (r *ComponentRepositoryImpl) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("ComponentCategories").
		Preload("ComponentCategories.Category").
		Preload("ComponentSubcategories").
		Preload("ComponentSubcategories.Subcategory").
		Order("created_at DESC, id ASC")
}

func (r *ComponentRepositoryImpl) Create(ctx context.Context, component *models.Component) error {
	return r.db.WithContext(ctx).Omit("ComponentCategories", "ComponentSubcategories").Create(component).Error
}

func (r *ComponentRepositoryImpl) AddCategories(ctx context.Context, componentID uuid.UUID, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	rows := make([]models.ComponentCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		rows = append(rows, models.ComponentCategory{ComponentID: componentID, CategoryID: id})
	}
	return r.db.WithContext(ctx).Omit("Category").Create(&rows).Error
}

func (r *ComponentRepositoryImpl) AddSubcategories(ctx context.Context, componentID uuid.UUID, subcategoryIDs []uuid.UUID) error {
	if len(subcategoryIDs) == 0 {
		return nil
	}
	rows := make([]models.ComponentSubcategory, 0, len(subcategoryIDs))
	for _, id := range subcategoryIDs {
		rows = append(rows, models.ComponentSubcategory{ComponentID: componentID, SubcategoryID: id})
	}
	return r.db.WithContext(ctx).Omit("Subcategory").Create(&rows).Error
}

func (r *ComponentRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&component).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &component, nil
}

func (r *ComponentRepositoryImpl) ListWithRelations(ctx context.Context) ([]*models.Component, error) {
	var components []*models.Component
	err := r.withRelations(ctx).Find(&components).Error
	return components, err
}

func (r *ComponentRepositoryImpl) ListByCategory(ctx context.Context, categoryID uuid.UUID, subcategoryID *uuid.UUID) ([]*models.Component, error) {
	query := r.withRelations(ctx).
		Where("id IN (?)", r.db.Model(&models.ComponentCategory{}).Select("component_id").Where("category_id = ?", categoryID))

	if subcategoryID != nil {
		query = query.Where("id IN (?)", r.db.Model(&models.ComponentSubcategory{}).Select("component_id").Where("subcategory_id = ?", *subcategoryID))
	}

	var components []*models.Component
	err := query.Find(&components).Error
	return components, err
}

func (r *ComponentRepositoryImpl) ListBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]*models.Component, error) {
	var components []*models.Component
	err := r.withRelations(ctx).
		Where("id IN (?)", r.db.Model(&models.ComponentSubcategory{}).Select("component_id").Where("subcategory_id = ?", subcategoryID)).
		Find(&components).Error
	return components, err
}

// Delete ใช้เป็น compensating delete ตอนสร้าง component ไม่สำเร็จ
func (r *ComponentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.DeleteMany(ctx, []uuid.UUID{id})
	return err
}

func (r *ComponentRepositoryImpl) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("component_id IN ?", ids).Delete(&models.ComponentCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("component_id IN ?", ids).Delete(&models.ComponentSubcategory{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", ids).Delete(&models.Component{})
		deleted = result.RowsAffected
		return result.Error
	})
	return deleted, err
}
