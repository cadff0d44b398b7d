package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/application/usecase"
	"github.com/jhoicas/mobile-inventory/internal/domain/inventory"
)

const sheetName = "Stock Changes"

var _ usecase.StockChangeExporter = (*StockChangeExporter)(nil)

var headings = []string{"ID", "Date", "Type", "Item", "Quantity Change", "Category", "User"}

// StockChangeExporter genera el libro .xlsx del ledger de cambios de stock.
type StockChangeExporter struct{}

func NewStockChangeExporter() *StockChangeExporter { return &StockChangeExporter{} }

// ExportStockChanges una fila por cambio, en el orden recibido, con encabezado fijo.
func (e *StockChangeExporter) ExportStockChanges(_ context.Context, rows []dto.StockChangeDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	for i, h := range headings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: encabezado: %w", err)
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetCellStyle(sheetName, "A1", "G1", style)
	}

	for i, r := range rows {
		values := []any{
			r.ID,
			r.Date.Format("2006-01-02 15:04"),
			inventory.TypeDisplayName(r.ItemType),
			r.ItemLabel,
			r.QuantityChange,
			r.Category,
			r.Actor,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(sheetName, "B", "B", 18)
	_ = f.SetColWidth(sheetName, "D", "D", 36)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
