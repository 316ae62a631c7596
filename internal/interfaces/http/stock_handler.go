package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/application/inventory"
)

// StockHandler maneja el libro de movimientos de stock (protegido).
type StockHandler struct {
	register *inventory.RegisterMovementUseCase
	list     *inventory.ListMovementsUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(register *inventory.RegisterMovementUseCase, list *inventory.ListMovementsUseCase) *StockHandler {
	return &StockHandler{register: register, list: list}
}

// movementCreatedResponse movimiento registrado con la alerta de bajo stock.
type movementCreatedResponse struct {
	Movement dto.MovementResponse `json:"movement"`
	LowStock bool                 `json:"low_stock"`
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento (in, out, return, loss)"
// @Success      201   {object}  movementCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.register.RegisterMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movementCreatedResponse{
		Movement: result.Movement,
		LowStock: result.LowStock,
	})
}

// ListMovements godoc
// @Summary      Listar movimientos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {object}  dto.MovementListResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.list.List(c.Query("product_id"), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
