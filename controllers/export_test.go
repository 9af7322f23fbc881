package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taphoa/models"
)

func TestBuildBackupWorkbook(t *testing.T) {
	snap := models.Snapshot{
		Products: []models.Product{
			{ID: 1, Name: "Nước Suối", Price: 5000, Cost: 3000, Stock: 7, Unit: "Chai", Category: "Đồ uống"},
			{ID: 2, Name: "Kẹo", Price: 2000, Cost: 1000, Stock: 3, Unit: "Cái"},
		},
		Transactions: []models.Transaction{
			{
				ID:   1750000000000,
				Date: "2026-06-15T10:00:00+07:00",
				Items: []models.CartLine{
					{Product: models.Product{ID: 1, Name: "Nước Suối"}, Qty: 2},
					{Product: models.Product{ID: 2, Name: "Kẹo"}, Qty: 1},
				},
				Total:  12000,
				Profit: 5000,
			},
		},
	}

	f, err := buildBackupWorkbook(snap)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{sheetInventory, sheetTransactions}, f.GetSheetList())

	name, err := f.GetCellValue(sheetInventory, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Nước Suối", name)

	// blank category exported as the default
	cat, err := f.GetCellValue(sheetInventory, "G3")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, cat)

	items, err := f.GetCellValue(sheetTransactions, "E2")
	require.NoError(t, err)
	assert.Equal(t, "Nước Suối (x2), Kẹo (x1)", items)

	total, err := f.GetCellValue(sheetTransactions, "C2")
	require.NoError(t, err)
	assert.Equal(t, "12000", total)
}
