package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/services"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
	"github.com/Madhavladani/adeptjs64/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create สร้าง category (JSON หรือ multipart พร้อมไฟล์ svg)
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	logo, closeLogo, err := readLogo(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid svg file")
	}
	defer closeLogo()

	category, err := h.categoryService.Create(ctx, &req, logo)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CategoryToResponse(category))
}

// GetByID ดึง category ตาม ID
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	category, err := h.categoryService.GetByID(ctx, id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CategoryToResponse(category))
}

// List categories ทั้งหมด
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.UserContext())
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoriesToResponses(categories))
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.categoryService.Delete(ctx, id); err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Category deleted successfully"})
}
