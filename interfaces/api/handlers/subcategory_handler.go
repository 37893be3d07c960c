package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/services"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
	"github.com/Madhavladani/adeptjs64/pkg/utils"
)

type SubcategoryHandler struct {
	subcategoryService services.SubcategoryService
}

func NewSubcategoryHandler(subcategoryService services.SubcategoryService) *SubcategoryHandler {
	return &SubcategoryHandler{
		subcategoryService: subcategoryService,
	}
}

// List ถ้ามี ?categoryId= คืน {category, subcategories} ไม่งั้นคืนทั้งหมด
func (h *SubcategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid categoryId")
		}

		category, subs, err := h.subcategoryService.ListByCategory(ctx, categoryID)
		if err != nil {
			return handleServiceError(c, err)
		}

		return utils.SuccessResponse(c, dto.CategorySubcategoriesResponse{
			Category:      dto.CategoryToResponse(category),
			Subcategories: dto.SubcategoriesToResponses(subs),
		})
	}

	subs, err := h.subcategoryService.List(ctx)
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.SubcategoriesToResponses(subs))
}

func (h *SubcategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateSubcategoryRequest
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

	sub, err := h.subcategoryService.Create(ctx, &req, logo)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.SubcategoryToResponse(sub))
}

func (h *SubcategoryHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subcategory ID")
	}

	if err := h.subcategoryService.Delete(ctx, id); err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Subcategory deleted successfully"})
}
