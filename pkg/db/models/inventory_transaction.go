package models

import (
	"time"

	"github.com/campuslabs/campus-events-backend/pkg/enums"
)

// InventoryTransaction is an append-only ledger entry for stock movement.
// Rows are written and listed, never updated.
type InventoryTransaction struct {
	ID              uint                  `gorm:"primaryKey"`
	ItemID          uint                  `gorm:"column:item_id;not null;index"`
	Quantity        int                   `gorm:"column:quantity;not null"`
	TransactionType enums.TransactionType `gorm:"column:transaction_type;type:text;not null"`
	Reference       *string               `gorm:"column:reference"`
	TransactionDate time.Time             `gorm:"column:transaction_date;autoCreateTime"`
}
