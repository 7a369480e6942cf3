package Models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a client engagement tracked for payables. Balance is always
// TotalPOAmount - TotalPaid; FullyPaid flips when the balance hits exactly zero.
type Project struct {
	ID            uint            `json:"id" gorm:"primarykey"`
	Client        string          `json:"client" gorm:"not null"`
	Quotation     string          `json:"quotation" gorm:"not null;index"`
	Acceptance    string          `json:"acceptance" gorm:"not null"`
	Currency      string          `json:"currency" gorm:"size:3;not null"`
	TotalPOAmount decimal.Decimal `json:"total_po_amount" gorm:"type:decimal(18,2);not null"`
	TotalPaid     decimal.Decimal `json:"total_paid" gorm:"type:decimal(18,2);not null"`
	Balance       decimal.Decimal `json:"balance" gorm:"type:decimal(18,2);not null"`
	FullyPaid     bool            `json:"fully_paid" gorm:"default:false"`
	IsDeleted     bool            `json:"is_deleted" gorm:"default:false;index"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	VendorPurchaseOrders []VendorPurchaseOrder `json:"vendor_purchase_orders,omitempty" gorm:"foreignKey:ProjectID"`
	Invoices             []Invoice             `json:"invoices,omitempty" gorm:"foreignKey:ProjectID"`
	Transactions         []Transaction         `json:"transactions,omitempty" gorm:"foreignKey:ProjectID"`
}
