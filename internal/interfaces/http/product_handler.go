package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/authz"
)

// ProductHandler maneja el CRUD de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "datos del producto"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("producto creado", out))
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        includeInactive  query  bool  false  "incluir inactivos"
// @Success      200  {object}  dto.Response
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryBool("includeInactive"), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// GetByID godoc
// @Summary      Obtener producto
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "id del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "id del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("producto actualizado", out))
}

// Delete godoc
// @Summary      Eliminar producto (soft por defecto, hard con ?hardDelete=true)
// @Tags         products
// @Produce      json
// @Param        id          path   string  true   "id del producto"
// @Param        hardDelete  query  bool    false  "eliminación permanente (solo admin)"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if c.QueryBool("hardDelete") {
		if !authz.CanPerform(GetRole(c), authz.ActionHardDelete, authz.ResourceProduct) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("solo un admin puede eliminar permanentemente"))
		}
		out, err := h.uc.HardDelete(c.Context(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.OK("producto eliminado permanentemente", out))
	}
	out, err := h.uc.Deactivate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("producto desactivado", out))
}
