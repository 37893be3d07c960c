package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/services"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
	"github.com/Madhavladani/adeptjs64/pkg/utils"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// Get เมนู navigation ตามลำดับปัจจุบัน
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	items, err := h.menuService.Load(c.UserContext())
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, items)
}

// Reorder PUT /admin/menu {items: [{id, type}]}
func (h *MenuHandler) Reorder(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.ReorderMenuRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	if err := h.menuService.Reorder(ctx, req.Items); err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Menu order updated successfully"})
}

// Reconcile POST /admin/menu/reconcile
func (h *MenuHandler) Reconcile(c *fiber.Ctx) error {
	result, err := h.menuService.Reconcile(c.UserContext())
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, result)
}

// RemoveItem DELETE /admin/menu/:id
func (h *MenuHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid item ID")
	}

	if err := h.menuService.RemoveItem(c.UserContext(), id); err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Menu item removed"})
}
