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

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	logos        *LogoUploader
	support      CatalogSupport
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, logos *LogoUploader, support CatalogSupport) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		logos:        logos,
		support:      support,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CreateCategoryRequest, logo *dto.LogoUpload) (*models.Category, error) {
	category := &models.Category{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: trimmedOrNil(req.Description),
		SvgLogo:     trimmedOrNil(req.SvgLogo),
		ImageURL:    trimmedOrNil(req.ImageURL),
	}

	// ใช้ไฟล์ที่แนบมาเฉพาะตอนที่ไม่ได้ส่ง svg_logo URL มาเอง
	var logoKey string
	if logo != nil && category.SvgLogo == nil {
		url, key, err := s.logos.Upload(ctx, logoFolderCat, category.Name, logo)
		if err != nil {
			return nil, err
		}
		category.SvgLogo = &url
		logoKey = key
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "error", err)
		s.logos.Remove(ctx, logoKey)
		return nil, apperror.Store("create category", err)
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "name", category.Name)
	s.support.changed(ctx, "category", ports.CatalogCreated, category.ID)
	return category, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
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

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, apperror.Store("list categories", err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperror.NotFound("category", id)
		}
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return apperror.Store("delete category", err)
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	s.support.changed(ctx, "category", ports.CatalogDeleted, id)
	return nil
}
