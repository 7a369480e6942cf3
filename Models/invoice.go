package Models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a vendor billing document, optionally tied to a purchase order.
// Invoice creation never mutates balances; payment is recorded separately as
// a Transaction.
type Invoice struct {
	ID                    uint            `json:"id" gorm:"primarykey"`
	ProjectID             uint            `json:"project_id" gorm:"not null;index"`
	VendorPurchaseOrderID *uint           `json:"vendor_po_id" gorm:"index"`
	InvoiceType           string          `json:"invoice_type" gorm:"size:20"`
	InvoiceNumber         string          `json:"invoice_number" gorm:"size:30;not null;index"`
	InvoiceAmount         decimal.Decimal `json:"invoice_amount" gorm:"type:decimal(18,2);not null"`
	Currency              string          `json:"currency" gorm:"size:3;not null"`
	IsPaid                bool            `json:"is_paid" gorm:"default:false"`
	IsDeleted             bool            `json:"is_deleted" gorm:"default:false;index"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}
