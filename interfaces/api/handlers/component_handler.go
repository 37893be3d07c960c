package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/models"
	"github.com/Madhavladani/adeptjs64/domain/services"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
	"github.com/Madhavladani/adeptjs64/pkg/utils"
)

type ComponentHandler struct {
	componentService services.ComponentService
}

func NewComponentHandler(componentService services.ComponentService) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
	}
}

// List GET /components?query=&categoryIds=a,b&subcategoryIds=c
func (h *ComponentHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categoryIDs, err := parseUUIDList(c.Query("categoryIds"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid categoryIds")
	}
	subcategoryIDs, err := parseUUIDList(c.Query("subcategoryIds"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subcategoryIds")
	}

	components, err := h.componentService.List(ctx, dto.ComponentFilter{
		Query:          c.Query("query"),
		CategoryIDs:    categoryIDs,
		SubcategoryIDs: subcategoryIDs,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, components)
}

// Search GET /components/search?query=
func (h *ComponentHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return utils.BadRequestResponse(c, "Search query is required")
	}

	components, err := h.componentService.Search(c.UserContext(), query)
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, components)
}

// ByCategory GET /components/category?categoryId=&subcategoryId=
func (h *ComponentHandler) ByCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	raw := c.Query("categoryId")
	if raw == "" {
		return utils.BadRequestResponse(c, "categoryId is required")
	}
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid categoryId")
	}
	subcategoryID, err := optionalUUID(c.Query("subcategoryId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subcategoryId")
	}

	resp, err := h.componentService.ListByCategory(ctx, categoryID, subcategoryID)
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, resp)
}

// BySubcategory GET /components/subcategory?subcategoryId=
func (h *ComponentHandler) BySubcategory(c *fiber.Ctx) error {
	raw := c.Query("subcategoryId")
	if raw == "" {
		return utils.BadRequestResponse(c, "subcategoryId is required")
	}
	subcategoryID, err := uuid.Parse(raw)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subcategoryId")
	}

	resp, err := h.componentService.ListBySubcategory(c.UserContext(), subcategoryID)
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, resp)
}

// GetCode GET /components/:id/code?type=figma|framer|webflow
func (h *ComponentHandler) GetCode(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid component ID")
	}

	platform := models.CodePlatform(c.Query("type"))
	if !platform.IsValid() {
		return utils.BadRequestResponse(c, "Invalid code type")
	}

	code, err := h.componentService.GetCode(c.UserContext(), id, platform)
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.ComponentCodeResponse{Code: code})
}

// Create POST /components
func (h *ComponentHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateComponentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	id, err := h.componentService.Create(ctx, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CreateComponentResponse{ComponentID: id})
}

// DeleteMany DELETE /components {ids: []}
func (h *ComponentHandler) DeleteMany(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.IDsRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	deleted, err := h.componentService.DeleteMany(ctx, req.IDs)
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.DeleteComponentsResponse{Deleted: deleted})
}
