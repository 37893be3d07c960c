package serviceimpl

import (
	"context"
	"time"

	"github.com/Madhavladani/adeptjs64/domain/services"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

const (
	MenuReconcileJobID   = "menu-reconcile"
	menuReconcileTimeout = time.Minute
)

// NewMenuReconcileTask job ของ scheduler ที่เติม item ใหม่เข้าเมนูอัตโนมัติ
func NewMenuReconcileTask(menu services.MenuService) func() {
	log := logger.Component("scheduler")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), menuReconcileTimeout)
		defer cancel()

		result, err := menu.Reconcile(ctx)
		if err != nil {
			log.Error("Scheduled menu reconcile failed", "error", err)
			return
		}
		if result.CategoriesAdded+result.SubcategoriesAdded > 0 {
			log.Info("Scheduled menu reconcile added items",
				"categories_added", result.CategoriesAdded,
				"subcategories_added", result.SubcategoriesAdded,
			)
		}
	}
}
