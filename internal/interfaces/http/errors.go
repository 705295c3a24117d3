package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// respondError traduce los sentinelas del dominio a códigos HTTP con la
// envoltura estándar. Un CascadeError envuelve el sentinela real, errors.Is
// lo resuelve a través del Unwrap. Errores no mapeados son 500 con mensaje
// genérico: el detalle queda en el log, nunca en la respuesta.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(domain.ErrNotFound.Error()))
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(domain.ErrDuplicateName.Error()))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(domain.ErrInvalidInput.Error()))
	case errors.Is(err, domain.ErrReferentialIntegrity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(domain.ErrReferentialIntegrity.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(domain.ErrUnauthorized.Error()))
	case errors.Is(err, domain.ErrAccountInactive):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail(domain.ErrAccountInactive.Error()))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail(domain.ErrForbidden.Error()))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno"))
}
