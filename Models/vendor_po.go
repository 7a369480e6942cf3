package Models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorPurchaseOrder is a commitment to pay a vendor a fixed amount under a
// project. Its balance only ever decreases, by the amount of each transaction
// applied against it.
type VendorPurchaseOrder struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	ProjectID   uint            `json:"project_id" gorm:"not null;index"`
	VendorPORef string          `json:"vendor_po" gorm:"not null;index"`
	Vendor      string          `json:"vendor" gorm:"not null"`
	POAmount    decimal.Decimal `json:"po_amount" gorm:"type:decimal(18,2);not null"`
	Balance     decimal.Decimal `json:"balance" gorm:"type:decimal(18,2);not null"`
	Currency    string          `json:"currency" gorm:"size:3;not null"`
	IsPaid      bool            `json:"is_paid" gorm:"default:false"`
	IsDeleted   bool            `json:"is_deleted" gorm:"default:false;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
