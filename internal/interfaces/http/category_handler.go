package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/authz"
)

// CategoryHandler maneja el CRUD de categorías y su ciclo de vida.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler de categorías.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name, description"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("categoría creada", out))
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        includeInactive  query  bool  false  "incluir inactivas"
// @Success      200  {object}  dto.Response
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryBool("includeInactive"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// GetByID godoc
// @Summary      Obtener categoría
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "id de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "id de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("categoría actualizada", out))
}

// Delete godoc
// @Summary      Eliminar categoría (soft por defecto, hard con ?hardDelete=true)
// @Tags         categories
// @Produce      json
// @Param        id          path   string  true   "id de la categoría"
// @Param        hardDelete  query  bool    false  "eliminación permanente (solo admin)"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if c.QueryBool("hardDelete") {
		// El hard delete exige admin aunque la ruta admita coordinador.
		if !authz.CanPerform(GetRole(c), authz.ActionHardDelete, authz.ResourceCategory) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("solo un admin puede eliminar permanentemente"))
		}
		out, err := h.uc.HardDelete(c.Context(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.OK("categoría eliminada permanentemente", out))
	}
	out, err := h.uc.Deactivate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("categoría desactivada", out))
}
