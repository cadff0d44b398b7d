package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/application/inventory"
	"github.com/jhoicas/mobile-inventory/internal/application/usecase"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// InventoryHandler cambios de stock, retiros, lotes, producción y umbrales (protegido).
type InventoryHandler struct {
	recorder *inventory.RecorderUseCase
	audit    *usecase.AuditUseCase
	catalog  *usecase.CatalogUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(recorder *inventory.RecorderUseCase, audit *usecase.AuditUseCase, catalog *usecase.CatalogUseCase) *InventoryHandler {
	return &InventoryHandler{recorder: recorder, audit: audit, catalog: catalog}
}

// RecordChange godoc
// @Summary      Registrar cambio de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockChangeRequest  true  "item_type, item_id, quantity_change, category"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock-changes [post]
func (h *InventoryHandler) RecordChange(c *fiber.Ctx) error {
	var in dto.StockChangeRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	sc, err := h.recorder.RecordChange(c.UserContext(), inventory.ChangeInput{
		ItemType: in.ItemType,
		ItemID:   in.ItemID,
		Delta:    in.Delta,
		Category: in.Category,
		Actor:    GetActor(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: sc.ID})
}

// RecordWithdrawal godoc
// @Summary      Registrar retiro de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawalRequest  true  "item_type, item_id, quantity, reason"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/withdrawals [post]
func (h *InventoryHandler) RecordWithdrawal(c *fiber.Ctx) error {
	var in dto.WithdrawalRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	w, err := h.recorder.RecordWithdrawal(c.UserContext(), inventory.WithdrawalInput{
		ItemType: in.ItemType,
		ItemID:   in.ItemID,
		Quantity: in.Quantity,
		Reason:   in.Reason,
		Actor:    GetActor(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: w.ID})
}

// ListWithdrawals godoc
// @Summary      Listar retiros
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "página (1-based)"
// @Success      200   {object}  dto.WithdrawalPage
// @Router       /api/withdrawals [get]
func (h *InventoryHandler) ListWithdrawals(c *fiber.Ctx) error {
	out, err := h.audit.ListWithdrawals(c.UserContext(), pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReceiveBatch godoc
// @Summary      Recibir lote
// @Description  Crea el lote, suma el stock y registra el cambio batch_received. unit_cost actualiza el costo promedio de materias primas.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchRequest  true  "item_type, item_id, quantity, fechas, unit_cost"
// @Success      201   {object}  dto.BatchDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *InventoryHandler) ReceiveBatch(c *fiber.Ctx) error {
	var in dto.BatchRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	batchDate, err := usecase.ParseDay(in.BatchDate)
	if err != nil {
		return writeError(c, err)
	}
	producedOn, err := usecase.ParseOptionalDay(in.ProducedOn)
	if err != nil {
		return writeError(c, err)
	}
	expiresOn, err := usecase.ParseOptionalDay(in.ExpiresOn)
	if err != nil {
		return writeError(c, err)
	}
	b, err := h.recorder.ReceiveBatch(c.UserContext(), inventory.BatchInput{
		ItemType:   in.ItemType,
		ItemID:     in.ItemID,
		Quantity:   in.Quantity,
		BatchDate:  batchDate,
		ProducedOn: producedOn,
		ExpiresOn:  expiresOn,
		UnitCost:   in.UnitCost,
		Actor:      GetActor(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBatchDTO(b))
}

// Produce godoc
// @Summary      Fabricar lote de producto
// @Description  Consume las materias primas de la receta (FIFO) y crea el lote del producto en una sola transacción.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProduceRequest  true  "product_id, quantity, batch_date, expires_on"
// @Success      201   {object}  dto.ProduceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *InventoryHandler) Produce(c *fiber.Ctx) error {
	var in dto.ProduceRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	batchDate, err := usecase.ParseDay(in.BatchDate)
	if err != nil {
		return writeError(c, err)
	}
	expiresOn, err := usecase.ParseOptionalDay(in.ExpiresOn)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.recorder.ProduceBatch(c.UserContext(), inventory.ProduceInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		BatchDate: batchDate,
		ExpiresOn: expiresOn,
		Actor:     GetActor(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	out := dto.ProduceResponse{Batch: toBatchDTO(res.Batch), Changes: make([]int64, 0, len(res.Changes))}
	for _, sc := range res.Changes {
		out.Changes = append(out.Changes, sc.ID)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetThreshold godoc
// @Summary      Cambiar umbral de stock bajo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        item_type  path  string                 true  "product o raw_material"
// @Param        id         path  int                    true  "id del ítem"
// @Param        body       body  dto.ThresholdRequest   true  "threshold"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{item_type}/{id}/threshold [put]
func (h *InventoryHandler) SetThreshold(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.ThresholdRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	if err := h.catalog.SetThreshold(c.UserContext(), GetActor(c), c.Params("item_type"), id, in.Threshold); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toBatchDTO(b *entity.Batch) dto.BatchDTO {
	return dto.BatchDTO{
		ID:         b.ID,
		ItemType:   b.ItemType,
		ItemID:     b.ItemID,
		Quantity:   b.Quantity,
		BatchDate:  b.BatchDate,
		ProducedOn: b.ProducedOn,
		ExpiresOn:  b.ExpiresOn,
		Retired:    b.Retired,
	}
}
