package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/dto"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/validator"
)

// Códigos de error de la API.
const (
	CodeInvalidBody       = "INVALID_BODY"
	CodeValidation        = "VALIDATION"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeNotFound          = "NOT_FOUND"
	CodeDuplicate         = "DUPLICATE"
	CodeInvalidCategory   = "INVALID_CATEGORY"
	CodeDanglingReference = "DANGLING_REFERENCE"
	CodeStorage           = "STORAGE"
	CodeInternal          = "INTERNAL"
)

// statusFor traduce un error del núcleo a estado HTTP y código.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, CodeInvalidInput
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrDuplicateName), errors.Is(err, domain.ErrDuplicateCode):
		return fiber.StatusConflict, CodeDuplicate
	case errors.Is(err, domain.ErrInvalidCategory):
		return fiber.StatusUnprocessableEntity, CodeInvalidCategory
	case errors.Is(err, domain.ErrDanglingReference):
		return fiber.StatusInternalServerError, CodeDanglingReference
	case errors.Is(err, domain.ErrStorage):
		return fiber.StatusInternalServerError, CodeStorage
	}
	return fiber.StatusInternalServerError, CodeInternal
}

func writeError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}

func invalid(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: validator.Message(err)})
}

// errorHandler responde los errores que no pasan por writeError (rutas inexistentes, pánicos recuperados).
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		if fe.Code == fiber.StatusNotFound {
			code = CodeNotFound
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return writeError(c, err)
}
