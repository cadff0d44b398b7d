package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/application/usecase"
)

// FinanceHandler ventas y gastos.
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Sales godoc
// @Summary      Listado de ventas
// @Tags         finance
// @Security     Bearer
// @Produce      json,html
// @Param        page  query  int  false  "página (1-based)"
// @Success      200   {object}  dto.FinancePage
// @Router       /sales [get]
func (h *FinanceHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.ListSales(c.UserContext(), pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, "finance", fiber.Map{"Title": "Sales"}, out)
}

// Expenses godoc
// @Summary      Listado de gastos
// @Tags         finance
// @Security     Bearer
// @Produce      json,html
// @Param        page  query  int  false  "página (1-based)"
// @Success      200   {object}  dto.FinancePage
// @Router       /expenses [get]
func (h *FinanceHandler) Expenses(c *fiber.Ctx) error {
	out, err := h.uc.ListExpenses(c.UserContext(), pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, "finance", fiber.Map{"Title": "Expenses"}, out)
}

// RecordSale godoc
// @Summary      Registrar venta
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinanceEntryRequest  true  "category, amount, date, description"
// @Success      201   {object}  dto.FinanceEntryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *FinanceHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.FinanceEntryRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.RecordSale(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordExpense godoc
// @Summary      Registrar gasto
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinanceEntryRequest  true  "category, amount, date, description"
// @Success      201   {object}  dto.FinanceEntryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *FinanceHandler) RecordExpense(c *fiber.Ctx) error {
	var in dto.FinanceEntryRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.RecordExpense(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
