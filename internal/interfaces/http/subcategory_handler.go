package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/authz"
)

// SubcategoryHandler maneja el CRUD de subcategorías y su ciclo de vida.
type SubcategoryHandler struct {
	uc *usecase.SubcategoryUseCase
}

// NewSubcategoryHandler construye el handler de subcategorías.
func NewSubcategoryHandler(uc *usecase.SubcategoryUseCase) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubcategoryRequest  true  "category_id, name, description"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/subcategories [post]
func (h *SubcategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("subcategoría creada", out))
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         subcategories
// @Produce      json
// @Param        includeInactive  query  bool  false  "incluir inactivas"
// @Success      200  {object}  dto.Response
// @Router       /api/subcategories [get]
func (h *SubcategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryBool("includeInactive"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// ListByCategory godoc
// @Summary      Listar subcategorías de una categoría
// @Tags         subcategories
// @Produce      json
// @Param        id  path  string  true  "id de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id}/subcategories [get]
func (h *SubcategoryHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// GetByID godoc
// @Summary      Obtener subcategoría
// @Tags         subcategories
// @Produce      json
// @Param        id  path  string  true  "id de la subcategoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/subcategories/{id} [get]
func (h *SubcategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Update godoc
// @Summary      Actualizar subcategoría
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "id de la subcategoría"
// @Param        body  body  dto.UpdateSubcategoryRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/subcategories/{id} [put]
func (h *SubcategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("subcategoría actualizada", out))
}

// Delete godoc
// @Summary      Eliminar subcategoría (soft por defecto, hard con ?hardDelete=true)
// @Tags         subcategories
// @Produce      json
// @Param        id          path   string  true   "id de la subcategoría"
// @Param        hardDelete  query  bool    false  "eliminación permanente (solo admin)"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/subcategories/{id} [delete]
func (h *SubcategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if c.QueryBool("hardDelete") {
		if !authz.CanPerform(GetRole(c), authz.ActionHardDelete, authz.ResourceSubcategory) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("solo un admin puede eliminar permanentemente"))
		}
		out, err := h.uc.HardDelete(c.Context(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.OK("subcategoría eliminada permanentemente", out))
	}
	out, err := h.uc.Deactivate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("subcategoría desactivada", out))
}
