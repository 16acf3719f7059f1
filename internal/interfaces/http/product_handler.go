package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/dto"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/inventory"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/usecase"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/validator"
)

// ProductHandler maneja las peticiones HTTP para productos.
type ProductHandler struct {
	svc      *inventory.Service
	queries  *usecase.QueryFacade
	validate validator.Validator
}

// NewProductHandler construye el handler.
func NewProductHandler(svc *inventory.Service, queries *usecase.QueryFacade, validate validator.Validator) *ProductHandler {
	return &ProductHandler{svc: svc, queries: queries, validate: validate}
}

// Create godoc
// @Summary      Crear producto
// @Description  Si el stock inicial es mayor que cero se registra la entrada correspondiente.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.validate.Validate(in); err != nil {
		return invalid(c, err)
	}
	res, err := h.svc.AddProduct(c.UserContext(), inventory.AddProductRequest{
		Code:         in.Code,
		Name:         in.Name,
		Price:        string(in.Price),
		Stock:        string(in.Stock),
		CategoryName: in.Category,
	})
	if err != nil {
		return writeError(c, err)
	}
	view, err := h.queries.ProductByID(c.UserContext(), res.Product.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductMutationResponse{
		Product:  dto.NewProductResponse(view),
		Movement: dto.NewMovementResponse(res.Movement),
	})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queries.ProductByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductResponse(out))
}

// GetByCode godoc
// @Summary      Obtener producto por código
// @Tags         products
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/code/{code} [get]
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.queries.ProductByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductResponse(out))
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        q    query  string  false  "Filtro por código, nombre o categoría"
// @Success      200  {array}   dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.queries.SearchProducts(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductList(out))
}

// Update godoc
// @Summary      Actualizar producto
// @Description  El código no se puede cambiar. Un cambio de stock registra un movimiento por la diferencia.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.validate.Validate(in); err != nil {
		return invalid(c, err)
	}
	res, err := h.svc.EditProduct(c.UserContext(), inventory.EditProductRequest{
		ProductID:    c.Params("id"),
		Code:         in.Code,
		Name:         in.Name,
		Price:        string(in.Price),
		Stock:        string(in.Stock),
		CategoryName: in.Category,
	})
	if err != nil {
		return writeError(c, err)
	}
	view, err := h.queries.ProductByID(c.UserContext(), res.Product.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ProductMutationResponse{
		Product:  dto.NewProductResponse(view),
		Movement: dto.NewMovementResponse(res.Movement),
	})
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Borra también su libro de movimientos.
// @Tags         products
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
