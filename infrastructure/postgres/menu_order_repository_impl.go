package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Madhavladani/adeptjs64/domain/models"
	"github.com/Madhavladani/adeptjs64/domain/repositories"
)

type MenuOrderRepositoryImpl struct {
	db *gorm.DB
}

func NewMenuOrderRepository(db *gorm.DB) repositories.MenuOrderRepository {
	return &MenuOrderRepositoryImpl{db: db}
}

func (r *MenuOrderRepositoryImpl) List(ctx context.Context) ([]*models.MenuOrder, error) {
	var entries []*models.MenuOrder
	err := r.db.WithContext(ctx).Order("position ASC").Find(&entries).Error
	return entries, err
}

// ReplaceAll ถ้า insert ล้มเหลว การลบจะถูก rollback ด้วย
func (r *MenuOrderRepositoryImpl) ReplaceAll(ctx context.Context, entries []*models.MenuOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.MenuOrder{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *MenuOrderRepositoryImpl) Append(ctx context.Context, entries []*models.MenuOrder) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *MenuOrderRepositoryImpl) DeleteByItemID(ctx context.Context, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("item_id = ?", itemID).Delete(&models.MenuOrder{}).Error
}
