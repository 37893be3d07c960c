package serviceimpl

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/apperror"
	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/models"
	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/domain/repositories"
	"github.com/Madhavladani/adeptjs64/domain/services"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

type ComponentServiceImpl struct {
	componentRepo   repositories.ComponentRepository
	categoryRepo    repositories.CategoryRepository
	subcategoryRepo repositories.SubcategoryRepository
	enricher        *DimensionEnricher
	support         CatalogSupport
}

func NewComponentService(
	componentRepo repositories.ComponentRepository,
	categoryRepo repositories.CategoryRepository,
	subcategoryRepo repositories.SubcategoryRepository,
	enricher *DimensionEnricher,
	support CatalogSupport,
) services.ComponentService {
	return &ComponentServiceImpl{
		componentRepo:   componentRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		enricher:        enricher,
		support:         support,
	}
}

// listAll components ทั้งหมดที่ assemble แล้ว (ผ่าน cache)
func (s *ComponentServiceImpl) listAll(ctx context.Context) ([]dto.ComponentResponse, error) {
	return cachedRead(ctx, s.support, componentsCacheKey, func(ctx context.Context) ([]dto.ComponentResponse, error) {
		rows, err := s.componentRepo.ListWithRelations(ctx)
		if err != nil {
			return nil, apperror.Store("list components", err)
		}
		return AssembleComponents(rows), nil
	})
}

func (s *ComponentServiceImpl) List(ctx context.Context, filter dto.ComponentFilter) ([]dto.ComponentResponse, error) {
	all, err := s.listAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list components", "error", err)
		return nil, err
	}
	if filter.IsEmpty() {
		return all, nil
	}
	return FilterComponents(all, filter), nil
}

func (s *ComponentServiceImpl) Search(ctx context.Context, query string) ([]dto.ComponentResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.Validation("query", "Search query is required")
	}
	return s.List(ctx, dto.ComponentFilter{Query: query})
}

func (s *ComponentServiceImpl) ListByCategory(ctx context.Context, categoryID uuid.UUID, subcategoryID *uuid.UUID) (*dto.CategoryComponentsResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Category not found", "category_id", categoryID)
			return nil, apperror.NotFound("category", categoryID)
		}
		return nil, apperror.Store("get category", err)
	}

	resp := &dto.CategoryComponentsResponse{Category: dto.CategoryToResponse(category)}

	if subcategoryID != nil {
		sub, err := s.subcategoryRepo.GetByID(ctx, *subcategoryID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.Store("get subcategory", err)
		}
		// subcategory ต้องอยู่ใน category นี้
		if sub == nil || sub.CategoryID != categoryID {
			logger.WarnContext(ctx, "Subcategory not found in category", "category_id", categoryID, "subcategory_id", *subcategoryID)
			return nil, apperror.NotFound("subcategory", *subcategoryID)
		}
		view := dto.SubcategoryToResponse(sub)
		resp.Subcategory = &view
	}

	rows, err := s.componentRepo.ListByCategory(ctx, categoryID, subcategoryID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list category components", "category_id", categoryID, "error", err)
		return nil, apperror.Store("list category components", err)
	}

	resp.Components = s.enricher.EnrichDimensions(ctx, AssembleComponents(rows))
	return resp, nil
}

func (s *ComponentServiceImpl) ListBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (*dto.CategoryComponentsResponse, error) {
	sub, err := s.subcategoryRepo.GetByID(ctx, subcategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Subcategory not found", "subcategory_id", subcategoryID)
			return nil, apperror.NotFound("subcategory", subcategoryID)
		}
		return nil, apperror.Store("get subcategory", err)
	}

	category := sub.Category
	if category == nil {
		category, err = s.categoryRepo.GetByID(ctx, sub.CategoryID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperror.NotFound("category", sub.CategoryID)
			}
			return nil, apperror.Store("get category", err)
		}
	}

	rows, err := s.componentRepo.ListBySubcategory(ctx, subcategoryID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list subcategory components", "subcategory_id", subcategoryID, "error", err)
		return nil, apperror.Store("list subcategory components", err)
	}

	view := dto.SubcategoryToResponse(sub)
	return &dto.CategoryComponentsResponse{
		Category:    dto.CategoryToResponse(category),
		Subcategory: &view,
		Components:  s.enricher.EnrichDimensions(ctx, AssembleComponents(rows)),
	}, nil
}

func (s *ComponentServiceImpl) GetCode(ctx context.Context, id uuid.UUID, platform models.CodePlatform) (string, error) {
	if !platform.IsValid() {
		return "", apperror.Validation("type", "Invalid code type")
	}

	component, err := s.componentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", apperror.NotFound("component", id)
		}
		return "", apperror.Store("get component", err)
	}

	code := component.Code(platform)
	if code == nil || *code == "" {
		logger.DebugContext(ctx, "Component has no code for platform", "component_id", id, "type", platform)
		return "", apperror.NotFound("code", id)
	}
	return *code, nil
}

func (s *ComponentServiceImpl) Create(ctx context.Context, req *dto.CreateComponentRequest) (uuid.UUID, error) {
	categoryIDs := uniqueIDs(req.CategoryIDs)
	subcategoryIDs := uniqueIDs(req.SubcategoryIDs)

	if err := s.ensureExist(ctx, "category", categoryIDs, s.categoryRepo.ExistingIDs); err != nil {
		return uuid.Nil, err
	}
	if err := s.ensureExist(ctx, "subcategory", subcategoryIDs, s.subcategoryRepo.ExistingIDs); err != nil {
		return uuid.Nil, err
	}

	component := &models.Component{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		IsPublic:    true,
		IsPro:       false,
		FigmaCode:   nullIfEmpty(req.FigmaCode),
		FramerCode:  nullIfEmpty(req.FramerCode),
		WebflowCode: nullIfEmpty(req.WebflowCode),
	}
	if req.IsPublic != nil {
		component.IsPublic = *req.IsPublic
	}
	if req.IsPro != nil {
		component.IsPro = *req.IsPro
	}

	if err := s.componentRepo.Create(ctx, component); err != nil {
		logger.ErrorContext(ctx, "Failed to create component", "error", err)
		return uuid.Nil, apperror.Store("create component", err)
	}

	if err := s.componentRepo.AddCategories(ctx, component.ID, categoryIDs); err != nil {
		return uuid.Nil, s.compensate(ctx, component.ID, "link component categories", err)
	}
	if err := s.componentRepo.AddSubcategories(ctx, component.ID, subcategoryIDs); err != nil {
		return uuid.Nil, s.compensate(ctx, component.ID, "link component subcategories", err)
	}

	logger.InfoContext(ctx, "Component created",
		"component_id", component.ID,
		"name", component.Name,
		"categories", len(categoryIDs),
		"subcategories", len(subcategoryIDs),
	)
	s.support.changed(ctx, "component", ports.CatalogCreated, component.ID)
	return component.ID, nil
}

// compensate ลบ component ที่ insert ไปแล้ว (join rows ถูกลบตามไปด้วย)
func (s *ComponentServiceImpl) compensate(ctx context.Context, id uuid.UUID, op string, cause error) error {
	delErr := s.componentRepo.Delete(context.WithoutCancel(ctx), id)
	if delErr != nil {
		logger.ErrorContext(ctx, "Compensating delete failed", "component_id", id, "op", op, "error", delErr)
	} else {
		logger.WarnContext(ctx, "Component create rolled back", "component_id", id, "op", op, "error", cause)
	}
	return &apperror.PartialWriteError{Op: op, Err: cause, Compensated: delErr == nil}
}

func (s *ComponentServiceImpl) ensureExist(
	ctx context.Context,
	entity string,
	ids []uuid.UUID,
	existing func(context.Context, []uuid.UUID) ([]uuid.UUID, error),
) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := existing(ctx, ids)
	if err != nil {
		return apperror.Store("check "+entity+" ids", err)
	}
	foundSet := idSet(found)
	for _, id := range ids {
		if _, ok := foundSet[id]; !ok {
			logger.WarnContext(ctx, "Referenced "+entity+" not found", entity+"_id", id)
			return apperror.NotFound(entity, id)
		}
	}
	return nil
}

func (s *ComponentServiceImpl) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, apperror.Validation("ids", "At least one component id is required")
	}

	deleted, err := s.componentRepo.DeleteMany(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete components", "count", len(ids), "error", err)
		return 0, apperror.Store("delete components", err)
	}

	logger.InfoContext(ctx, "Components deleted", "requested", len(ids), "deleted", deleted)
	if deleted > 0 {
		s.support.changed(ctx, "component", ports.CatalogDeleted, uuid.Nil)
	}
	return deleted, nil
}

func nullIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
