package excel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
)

func TestExportStockChanges(t *testing.T) {
	rows := []dto.StockChangeDTO{
		{ID: 2, ItemType: "product", ItemID: 5, ItemLabel: "Jabón Lavanda 100g", QuantityChange: -3, Category: "sale",
			Date: time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC), Actor: "maria"},
		{ID: 1, ItemType: "raw_material", ItemID: 9, ItemLabel: "Raw Material ID 9 (Deleted)", QuantityChange: 50, Category: "batch_received",
			Date: time.Date(2024, 2, 9, 8, 0, 0, 0, time.UTC), Actor: "system"},
	}

	b, err := NewStockChangeExporter().ExportStockChanges(context.Background(), rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, headings, got[0])
	assert.Equal(t, []string{"2", "2024-02-10 09:30", "Product", "Jabón Lavanda 100g", "-3", "sale", "maria"}, got[1])
	assert.Equal(t, "Raw Material", got[2][2])
	assert.Equal(t, "Raw Material ID 9 (Deleted)", got[2][3])
}

func TestExportStockChanges_Vacio(t *testing.T) {
	b, err := NewStockChangeExporter().ExportStockChanges(context.Background(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
