package Models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a recorded payment event. It is the only entity whose
// creation mutates balances on its parents, and it is never deleted.
type Transaction struct {
	ID                    uint            `json:"id" gorm:"primarykey"`
	ProjectID             uint            `json:"project_id" gorm:"not null;index"`
	InvoiceID             *uint           `json:"invoice_id" gorm:"index"`
	VendorPurchaseOrderID *uint           `json:"vendor_po_id" gorm:"index"`
	TransactionAmount     decimal.Decimal `json:"transaction_amount" gorm:"type:decimal(18,2);not null"`
	DatePaid              time.Time       `json:"date_paid" gorm:"not null;index"`
	DVReference           string          `json:"dv_reference" gorm:"size:11"`
	CreatedByID           *uint           `json:"created_by_id"`
	CreatedAt             time.Time       `json:"created_at"`
}
