package serviceimpl

import (
	"context"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/apperror"
	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/domain/repositories"
	"github.com/Madhavladani/adeptjs64/domain/services"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

type MenuServiceImpl struct {
	menuRepo        repositories.MenuOrderRepository
	categoryRepo    repositories.CategoryRepository
	subcategoryRepo repositories.SubcategoryRepository
	support         CatalogSupport
}

func NewMenuService(
	menuRepo repositories.MenuOrderRepository,
	categoryRepo repositories.CategoryRepository,
	subcategoryRepo repositories.SubcategoryRepository,
	support CatalogSupport,
) services.MenuService {
	return &MenuServiceImpl{
		menuRepo:        menuRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		support:         support,
	}
}

func (s *MenuServiceImpl) loadCatalog(ctx context.Context) (*menuCatalog, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, apperror.Store("list categories", err)
	}
	subcategories, err := s.subcategoryRepo.ListByCreation(ctx)
	if err != nil {
		return nil, apperror.Store("list subcategories", err)
	}
	return newMenuCatalog(categories, subcategories), nil
}

func (s *MenuServiceImpl) Load(ctx context.Context) ([]dto.MenuItemResponse, error) {
	return cachedRead(ctx, s.support, menuCacheKey, func(ctx context.Context) ([]dto.MenuItemResponse, error) {
		entries, err := s.menuRepo.List(ctx)
		if err != nil {
			return nil, apperror.Store("list menu order", err)
		}
		catalog, err := s.loadCatalog(ctx)
		if err != nil {
			return nil, err
		}

		if len(entries) == 0 {
			return defaultMenu(catalog), nil
		}
		return resolveMenu(entries, catalog), nil
	})
}

func (s *MenuServiceImpl) Reorder(ctx context.Context, items []dto.MenuOrderItem) error {
	entries, err := buildMenuEntries(items)
	if err != nil {
		logger.WarnContext(ctx, "Invalid menu order", "error", err)
		return err
	}

	if err := s.menuRepo.ReplaceAll(ctx, entries); err != nil {
		logger.ErrorContext(ctx, "Failed to save menu order", "error", err)
		return apperror.Store("save menu order", err)
	}

	logger.InfoContext(ctx, "Menu reordered", "items", len(entries))
	s.support.changed(ctx, "menu", ports.CatalogReordered, uuid.Nil)
	return nil
}

func (s *MenuServiceImpl) Reconcile(ctx context.Context) (*dto.ReconcileMenuResponse, error) {
	entries, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, apperror.Store("list menu order", err)
	}
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	added, categoriesAdded, subcategoriesAdded := planReconcile(entries, catalog)
	result := &dto.ReconcileMenuResponse{
		CategoriesAdded:    categoriesAdded,
		SubcategoriesAdded: subcategoriesAdded,
	}
	if len(added) == 0 {
		return result, nil
	}

	if err := s.menuRepo.Append(ctx, added); err != nil {
		logger.ErrorContext(ctx, "Failed to append menu items", "error", err)
		return nil, apperror.Store("append menu order", err)
	}

	logger.InfoContext(ctx, "Menu reconciled",
		"categories_added", categoriesAdded,
		"subcategories_added", subcategoriesAdded,
	)
	s.support.changed(ctx, "menu", ports.CatalogReconciled, uuid.Nil)
	return result, nil
}

func (s *MenuServiceImpl) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.menuRepo.DeleteByItemID(ctx, itemID); err != nil {
		return apperror.Store("remove menu item", err)
	}
	logger.InfoContext(ctx, "Menu item removed", "item_id", itemID)
	s.support.changed(ctx, "menu", ports.CatalogDeleted, itemID)
	return nil
}
