package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Madhavladani/adeptjs64/domain/apperror"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
	"github.com/Madhavladani/adeptjs64/pkg/utils"
)

// handleServiceError แปลง error จาก service เป็น HTTP response
func handleServiceError(c *fiber.Ctx, err error) error {
	ctx := c.UserContext()

	var (
		validationErr *apperror.ValidationError
		notFoundErr   *apperror.NotFoundError
		partialErr    *apperror.PartialWriteError
		storeErr      *apperror.BackingStoreError
	)

	switch {
	case errors.As(err, &validationErr):
		var details any
		if validationErr.Field != "" {
			details = []utils.ValidationError{{Field: validationErr.Field, Tag: "invalid", Message: validationErr.Message}}
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ErrCodeValidation, validationErr.Message, details)

	case errors.As(err, &notFoundErr):
		return utils.NotFoundResponse(c, notFoundMessage(notFoundErr))

	case errors.As(err, &partialErr):
		logger.ErrorContext(ctx, "Partial write", "op", partialErr.Op, "compensated", partialErr.Compensated, "error", partialErr.Err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.ErrCodePartialWrite, partialErr.Error(),
			fiber.Map{"compensated": partialErr.Compensated})

	case errors.As(err, &storeErr):
		logger.ErrorContext(ctx, "Backing store error", "op", storeErr.Op, "error", storeErr.Err)
		return utils.InternalServerErrorResponse(c, storeErr.Error())
	}

	logger.ErrorContext(ctx, "Unexpected error", "error", err)
	return utils.InternalServerErrorResponse(c, "")
}

// notFoundMessage "category" -> "Category not found"
func notFoundMessage(e *apperror.NotFoundError) string {
	if e.Entity == "" {
		return "Resource not found"
	}
	return strings.ToUpper(e.Entity[:1]) + e.Entity[1:] + " not found"
}
