// Package Ledger holds the balance arithmetic applied whenever a project,
// purchase order, invoice or transaction is created. Every function is a pure
// computation over the records passed in; callers persist the results.
package Ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"Apar/Models"
)

// maxAmount bounds every monetary value; anything beyond it is treated as an
// arithmetic failure rather than a legitimate balance.
var maxAmount = decimal.New(1, 15)

// ParseAmount converts a form-submitted monetary string into a fixed-point
// decimal. Values must be numeric with at most two fractional digits.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not numeric", ErrInvalidAmount, raw)
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, raw)
	}
	if amount.Abs().GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrArithmetic, raw)
	}
	return amount, nil
}

// NewProject builds a project with an untouched balance. Quotation uniqueness
// among non-deleted projects is checked by the caller against storage.
func NewProject(client, quotation, acceptance, currency string, totalPOAmount decimal.Decimal) (Models.Project, error) {
	if !totalPOAmount.IsPositive() {
		return Models.Project{}, fmt.Errorf("%w: total_po_amount must be greater than zero", ErrInvalidAmount)
	}
	return Models.Project{
		Client:        client,
		Quotation:     quotation,
		Acceptance:    acceptance,
		Currency:      currency,
		TotalPOAmount: totalPOAmount,
		TotalPaid:     decimal.Zero,
		Balance:       totalPOAmount,
		FullyPaid:     false,
	}, nil
}

// NewVendorPO builds a purchase order under the given project. The PO amount
// may not exceed the project's remaining balance, and the currency is
// inherited from the project.
func NewVendorPO(project *Models.Project, vendorPORef, vendor string, poAmount decimal.Decimal) (Models.VendorPurchaseOrder, error) {
	if project == nil || project.IsDeleted {
		return Models.VendorPurchaseOrder{}, fmt.Errorf("%w: project", ErrNotFound)
	}
	if !poAmount.IsPositive() {
		return Models.VendorPurchaseOrder{}, fmt.Errorf("%w: po_amount must be greater than zero", ErrInvalidAmount)
	}
	if poAmount.GreaterThan(project.Balance) {
		return Models.VendorPurchaseOrder{}, fmt.Errorf("%w: po_amount %s exceeds project balance %s",
			ErrInvalidAmount, poAmount.StringFixed(2), project.Balance.StringFixed(2))
	}
	return Models.VendorPurchaseOrder{
		ProjectID:   project.ID,
		VendorPORef: vendorPORef,
		Vendor:      vendor,
		POAmount:    poAmount,
		Balance:     poAmount,
		Currency:    project.Currency,
		IsPaid:      false,
	}, nil
}

// NewInvoice builds an invoice under the given project, optionally linked to
// a purchase order. Invoice creation is balance-neutral: nothing is reserved
// against the PO or project until a transaction is recorded.
func NewInvoice(project *Models.Project, vendorPOID *uint, invoiceType, invoiceNumber string, invoiceAmount decimal.Decimal) (Models.Invoice, error) {
	if project == nil || project.IsDeleted {
		return Models.Invoice{}, fmt.Errorf("%w: project", ErrNotFound)
	}
	if !invoiceAmount.IsPositive() {
		return Models.Invoice{}, fmt.Errorf("%w: invoice_amount must be greater than zero", ErrInvalidAmount)
	}
	return Models.Invoice{
		ProjectID:             project.ID,
		VendorPurchaseOrderID: vendorPOID,
		InvoiceType:           invoiceType,
		InvoiceNumber:         invoiceNumber,
		InvoiceAmount:         invoiceAmount,
		Currency:              project.Currency,
		IsPaid:                false,
	}, nil
}

// ApplyTransaction applies a payment to the project and, when present, the
// purchase order it was made against. The project balance is recomputed from
// total_po_amount - total_paid rather than decremented directly, so repeated
// application of the rule cannot drift. Paid flags flip on exact zero.
func ApplyTransaction(project *Models.Project, po *Models.VendorPurchaseOrder, amount decimal.Decimal) error {
	if project == nil || project.IsDeleted {
		return fmt.Errorf("%w: project", ErrNotFound)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: transaction_amount must be greater than zero", ErrInvalidAmount)
	}

	totalPaid := project.TotalPaid.Add(amount)
	balance := project.TotalPOAmount.Sub(totalPaid)
	if totalPaid.Abs().GreaterThan(maxAmount) || balance.Abs().GreaterThan(maxAmount) {
		return fmt.Errorf("%w: project balance out of range", ErrArithmetic)
	}

	project.TotalPaid = totalPaid
	project.Balance = balance
	project.FullyPaid = project.Balance.IsZero()

	if po != nil {
		po.Balance = po.Balance.Sub(amount)
		po.IsPaid = po.Balance.IsZero()
	}
	return nil
}
