package Apis

import (
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Apar/Ledger"
	"Apar/Models"
)

// ImportProjects seeds projects from an uploaded spreadsheet. Expected
// columns: client, quotation, acceptance, currency, total_po_amount.
// Rows with invalid amounts or quotations already in use are skipped and
// reported, not fatal.
func ImportProjects(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing spreadsheet file"})
		}

		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to open uploaded file"})
		}
		defer file.Close()

		workbook, err := excelize.OpenReader(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is not a valid spreadsheet"})
		}
		defer workbook.Close()

		rows, err := workbook.GetRows(workbook.GetSheetName(0))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read spreadsheet rows"})
		}

		imported := 0
		var skipped []int
		for rowIndex, row := range rows {
			if rowIndex == 0 || len(row) < 5 {
				// Header row, or too few columns to be a project
				if rowIndex > 0 {
					skipped = append(skipped, rowIndex+1)
				}
				continue
			}

			client, quotation, acceptance, currency := row[0], row[1], row[2], row[3]
			amount, err := Ledger.ParseAmount(row[4])
			if err != nil {
				skipped = append(skipped, rowIndex+1)
				continue
			}

			var count int64
			db.Model(&Models.Project{}).Where("quotation = ? AND is_deleted = ?", quotation, false).Count(&count)
			if count > 0 {
				skipped = append(skipped, rowIndex+1)
				continue
			}

			project, err := Ledger.NewProject(client, quotation, acceptance, currency, amount)
			if err != nil {
				skipped = append(skipped, rowIndex+1)
				continue
			}
			if result := db.Create(&project); result.Error != nil {
				skipped = append(skipped, rowIndex+1)
				continue
			}
			imported++
		}

		return c.JSON(fiber.Map{
			"imported":     imported,
			"skipped_rows": skipped,
		})
	}
}
