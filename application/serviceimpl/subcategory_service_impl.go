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

type SubcategoryServiceImpl struct {
	subcategoryRepo repositories.SubcategoryRepository
	categoryRepo    repositories.CategoryRepository
	logos           *LogoUploader
	support         CatalogSupport
}

func NewSubcategoryService(
	subcategoryRepo repositories.SubcategoryRepository,
	categoryRepo repositories.CategoryRepository,
	logos *LogoUploader,
	support CatalogSupport,
) services.SubcategoryService {
	return &SubcategoryServiceImpl{
		subcategoryRepo: subcategoryRepo,
		categoryRepo:    categoryRepo,
		logos:           logos,
		support:         support,
	}
}

func (s *SubcategoryServiceImpl) getCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Category not found", "category_id", id)
			return nil, apperror.NotFound("category", id)
		}
		return nil, apperror.Store("get category", err)
	}
	return category, nil
}

func (s *SubcategoryServiceImpl) Create(ctx context.Context, req *dto.CreateSubcategoryRequest, logo *dto.LogoUpload) (*models.Subcategory, error) {
	category, err := s.getCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	sub := &models.Subcategory{
		ID:          uuid.New(),
		CategoryID:  category.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: trimmedOrNil(req.Description),
		SvgLogo:     trimmedOrNil(req.SvgLogo),
		ImageURL:    trimmedOrNil(req.ImageURL),
	}

	var logoKey string
	if logo != nil && sub.SvgLogo == nil {
		url, key, err := s.logos.Upload(ctx, logoFolderSubcat, sub.Name, logo)
		if err != nil {
			return nil, err
		}
		sub.SvgLogo = &url
		logoKey = key
	}

	if err := s.subcategoryRepo.Create(ctx, sub); err != nil {
		logger.ErrorContext(ctx, "Failed to create subcategory", "error", err)
		s.logos.Remove(ctx, logoKey)
		return nil, apperror.Store("create subcategory", err)
	}
	sub.Category = category

	logger.InfoContext(ctx, "Subcategory created", "subcategory_id", sub.ID, "category_id", category.ID, "name", sub.Name)
	s.support.changed(ctx, "subcategory", ports.CatalogCreated, sub.ID)
	return sub, nil
}

func (s *SubcategoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Subcategory, error) {
	sub, err := s.subcategoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Subcategory not found", "subcategory_id", id)
			return nil, apperror.NotFound("subcategory", id)
		}
		return nil, apperror.Store("get subcategory", err)
	}
	return sub, nil
}

func (s *SubcategoryServiceImpl) List(ctx context.Context) ([]*models.Subcategory, error) {
	subs, err := s.subcategoryRepo.List(ctx)
	if err != nil {
		return nil, apperror.Store("list subcategories", err)
	}
	return subs, nil
}

func (s *SubcategoryServiceImpl) ListByCategory(ctx context.Context, categoryID uuid.UUID) (*models.Category, []*models.Subcategory, error) {
	category, err := s.getCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	subs, err := s.subcategoryRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, apperror.Store("list subcategories", err)
	}
	return category, subs, nil
}

func (s *SubcategoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.subcategoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperror.NotFound("subcategory", id)
		}
		logger.ErrorContext(ctx, "Failed to delete subcategory", "subcategory_id", id, "error", err)
		return apperror.Store("delete subcategory", err)
	}

	logger.InfoContext(ctx, "Subcategory deleted", "subcategory_id", id)
	s.support.changed(ctx, "subcategory", ports.CatalogDeleted, id)
	return nil
}
