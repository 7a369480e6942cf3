package Controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Apar/Ledger"
	"Apar/Models"
)

// InvoiceController handles invoice endpoints
type InvoiceController struct {
	DB *gorm.DB
}

// NewInvoiceController creates a new InvoiceController
func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

// GetProjectInvoices retrieves all active invoices for a project
func (c *InvoiceController) GetProjectInvoices(ctx *fiber.Ctx) error {
	projectID, err := strconv.Atoi(ctx.Params("project_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var project Models.Project
	if result := c.DB.Where("is_deleted = ?", false).First(&project, projectID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	var invoices []Models.Invoice
	result := c.DB.Where("project_id = ? AND is_deleted = ?", projectID, false).Find(&invoices)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve invoices"})
	}

	return ctx.JSON(invoices)
}

// RecordInvoice records an invoice against a project, optionally linked to
// one of its purchase orders. Balance-neutral: nothing is reserved until a
// transaction is recorded against it.
func (c *InvoiceController) RecordInvoice(ctx *fiber.Ctx) error {
	projectID, err := strconv.Atoi(ctx.Params("project_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	var input RecordInvoiceRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var project Models.Project
	if result := c.DB.Where("is_deleted = ?", false).First(&project, projectID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	// Invoice number must be unique within the owning project
	var count int64
	c.DB.Model(&Models.Invoice{}).Where("project_id = ? AND invoice_number = ? AND is_deleted = ?", projectID, input.InvoiceNumber, false).Count(&count)
	if count > 0 {
		return ledgerError(ctx, fmt.Errorf("%w: invoice number %q already recorded for this project", Ledger.ErrDuplicateReference, input.InvoiceNumber), fiber.StatusConflict)
	}

	var vendorPOID *uint
	if input.VendorPOID != 0 {
		var vendorPO Models.VendorPurchaseOrder
		if result := c.DB.Where("project_id = ? AND is_deleted = ?", projectID, false).First(&vendorPO, input.VendorPOID); result.Error != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
		}
		vendorPOID = &vendorPO.ID
	}

	amount, err := Ledger.ParseAmount(input.InvoiceAmount)
	if err != nil {
		return ledgerError(ctx, err, fiber.StatusUnprocessableEntity)
	}

	invoice, err := Ledger.NewInvoice(&project, vendorPOID, input.InvoiceType, input.InvoiceNumber, amount)
	if err != nil {
		return ledgerError(ctx, err, fiber.StatusUnprocessableEntity)
	}

	if result := c.DB.Create(&invoice); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record invoice"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(invoice)
}
