package Controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Apar/Ledger"
	"Apar/Models"
)

// TransactionController handles payment transaction endpoints
type TransactionController struct {
	DB *gorm.DB
}

// NewTransactionController creates a new TransactionController
func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// GetProjectTransactions retrieves all transactions for a project, most
// recent payment first
func (c *TransactionController) GetProjectTransactions(ctx *fiber.Ctx) error {
	projectID, err := strconv.Atoi(ctx.Params("project_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var project Models.Project
	if result := c.DB.Where("is_deleted = ?", false).First(&project, projectID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	var transactions []Models.Transaction
	result := c.DB.Where("project_id = ?", projectID).Order("date_paid DESC").Find(&transactions)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve transactions"})
	}

	return ctx.JSON(transactions)
}

// GetTransaction retrieves a single transaction by ID. No project join: a
// transaction stays reachable after its project is soft-deleted.
func (c *TransactionController) GetTransaction(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	var transaction Models.Transaction
	result := c.DB.First(&transaction, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
	}

	return ctx.JSON(transaction)
}

// AddTransaction records a payment against a project. The project row, the
// purchase order row and the new transaction row are written in one storage
// transaction under the project lock, so either all three commit or none do.
func (c *TransactionController) AddTransaction(ctx *fiber.Ctx) error {
	projectID, err := strconv.Atoi(ctx.Params("project_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var input AddTransactionRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	amount, err := Ledger.ParseAmount(input.TransactionAmount)
	if err != nil {
		return ledgerError(ctx, err, fiber.StatusBadRequest)
	}

	datePaid, err := time.Parse("2006-01-02", input.DatePaid)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	unlock := Ledger.LockProject(uint(projectID))
	defer unlock()

	var project Models.Project
	if result := c.DB.Where("is_deleted = ?", false).First(&project, projectID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	// The payment applies to the referenced purchase order, or to the
	// project's first active one when none is given.
	var vendorPO *Models.VendorPurchaseOrder
	if input.VendorPOID != 0 {
		var po Models.VendorPurchaseOrder
		if result := c.DB.Where("project_id = ? AND is_deleted = ?", projectID, false).First(&po, input.VendorPOID); result.Error != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
		}
		vendorPO = &po
	} else {
		var po Models.VendorPurchaseOrder
		if result := c.DB.Where("project_id = ? AND is_deleted = ?", projectID, false).Order("id ASC").First(&po); result.Error == nil {
			vendorPO = &po
		}
	}

	var invoiceID *uint
	if input.InvoiceID != 0 {
		var invoice Models.Invoice
		if result := c.DB.Where("project_id = ? AND is_deleted = ?", projectID, false).First(&invoice, input.InvoiceID); result.Error != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		invoiceID = &invoice.ID
	}

	if err := Ledger.ApplyTransaction(&project, vendorPO, amount); err != nil {
		return ledgerError(ctx, err, fiber.StatusBadRequest)
	}

	transaction := Models.Transaction{
		ProjectID:         project.ID,
		InvoiceID:         invoiceID,
		TransactionAmount: amount,
		DatePaid:          datePaid,
		DVReference:       input.DVReference,
	}
	if vendorPO != nil {
		transaction.VendorPurchaseOrderID = &vendorPO.ID
	}
	if user, ok := ctx.Locals("user").(Models.User); ok {
		transaction.CreatedByID = &user.ID
	}

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Transaction error"})
	}

	if err := tx.Save(&project).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update project balance"})
	}
	if vendorPO != nil {
		if err := tx.Save(vendorPO).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update purchase order balance"})
		}
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record transaction"})
	}
	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to commit transaction"})
	}

	ctx.Set("HX-Redirect", fmt.Sprintf("/ap/details/%d", project.ID))
	return ctx.Status(fiber.StatusCreated).JSON(transaction)
}
