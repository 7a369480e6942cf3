package Controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Apar/Ledger"
)

var validate = validator.New()

// Monetary fields arrive as strings and go through Ledger.ParseAmount so the
// two-decimal fixed-point contract is checked in one place.

type AddProjectRequest struct {
	Client        string `json:"client" form:"client" validate:"required,min=1,max=100"`
	Quotation     string `json:"quotation" form:"quotation" validate:"required,min=14,max=20"`
	Acceptance    string `json:"acceptance" form:"acceptance" validate:"required,len=14"`
	Currency      string `json:"currency" form:"currency" validate:"required,len=3"`
	TotalPOAmount string `json:"total_po_amount" form:"total_po_amount" validate:"required"`
}

type AddVendorPORequest struct {
	VendorPORef string `json:"vendor_po" form:"vendor_po" validate:"required,min=1,max=20"`
	Vendor      string `json:"vendor" form:"vendor" validate:"required,min=1,max=50"`
	POAmount    string `json:"po_amount" form:"po_amount" validate:"required"`
}

type RecordInvoiceRequest struct {
	VendorPOID    uint   `json:"vendor_po_id" form:"vendor_po_id"`
	InvoiceType   string `json:"invoice_type" form:"invoice_type" validate:"max=20"`
	InvoiceNumber string `json:"invoice_number" form:"invoice_number" validate:"required,max=30"`
	InvoiceAmount string `json:"invoice_amount" form:"invoice_amount" validate:"required"`
}

type AddTransactionRequest struct {
	InvoiceID         uint   `json:"invoice_id" form:"invoice_id"`
	VendorPOID        uint   `json:"vendor_po_id" form:"vendor_po_id"`
	TransactionAmount string `json:"transaction_amount" form:"transaction_amount" validate:"required"`
	DVReference       string `json:"dv_reference" form:"dv_reference" validate:"max=11"`
	DatePaid          string `json:"date_paid" form:"date_paid" validate:"required"`
}

// ledgerError maps a ledger error kind onto an HTTP response.
// invalidStatus selects 422 or 400 per route.
func ledgerError(ctx *fiber.Ctx, err error, invalidStatus int) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, Ledger.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, Ledger.ErrDuplicateReference):
		status = fiber.StatusConflict
	case errors.Is(err, Ledger.ErrInvalidAmount):
		status = invalidStatus
	case errors.Is(err, Ledger.ErrArithmetic):
		status = invalidStatus
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
