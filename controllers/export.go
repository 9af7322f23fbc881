package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"taphoa/models"
)

// ExportExcel streams the two-sheet backup workbook: raw inventory rows
// plus flattened transactions.
func (ct *Controller) ExportExcel(c *fiber.Ctx) error {
	snap := ct.App.Snapshot()

	f, err := buildBackupWorkbook(snap)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := fmt.Sprintf("BACKUP_CuaHang_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(buf.Bytes())
}

const (
	sheetInventory    = "Inventory"
	sheetTransactions = "Transactions"
)

func buildBackupWorkbook(snap models.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	writeHeaders := func(sheet string, headers []string) {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
	}

	f.SetSheetName("Sheet1", sheetInventory)
	writeHeaders(sheetInventory, []string{"ID", "Name", "Price", "Cost", "Stock", "Unit", "Category"})

	for r, p := range snap.Products {
		values := []interface{}{p.ID, p.Name, p.Price, p.Cost, p.Stock, p.Unit, p.CategoryOf()}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(sheetInventory, cell, v)
		}
	}

	if _, err := f.NewSheet(sheetTransactions); err != nil {
		return nil, err
	}
	writeHeaders(sheetTransactions, []string{"ID", "Date", "Total", "Profit", "Items"})

	for r, t := range snap.Transactions {
		values := []interface{}{t.ID, t.Date, t.Total, t.Profit, itemSummary(t.Items)}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(sheetTransactions, cell, v)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// itemSummary flattens line items to "name (xqty), ..." for the sheet.
func itemSummary(items []models.CartLine) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s (x%d)", it.Name, it.Qty)
	}
	return strings.Join(parts, ", ")
}
