package Ledger

import (
	"github.com/shopspring/decimal"

	"Apar/Models"
)

// Recompute derives a project's totals from scratch out of its transaction
// rows: total_paid is the sum of transaction amounts and balance is
// total_po_amount - total_paid.
func Recompute(project Models.Project, transactions []Models.Transaction) Models.Project {
	totalPaid := decimal.Zero
	for _, transaction := range transactions {
		totalPaid = totalPaid.Add(transaction.TransactionAmount)
	}
	project.TotalPaid = totalPaid
	project.Balance = project.TotalPOAmount.Sub(totalPaid)
	project.FullyPaid = project.Balance.IsZero()
	return project
}

// RecomputePO derives a purchase order's balance from the transactions
// applied against it.
func RecomputePO(po Models.VendorPurchaseOrder, transactions []Models.Transaction) Models.VendorPurchaseOrder {
	paid := decimal.Zero
	for _, transaction := range transactions {
		if transaction.VendorPurchaseOrderID != nil && *transaction.VendorPurchaseOrderID == po.ID {
			paid = paid.Add(transaction.TransactionAmount)
		}
	}
	po.Balance = po.POAmount.Sub(paid)
	po.IsPaid = po.Balance.IsZero()
	return po
}
