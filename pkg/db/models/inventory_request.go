package models

import (
	"time"

	"github.com/campuslabs/campus-events-backend/pkg/enums"
)

// InventoryRequest is a claim against an item's available quantity, subject
// to approval.
type InventoryRequest struct {
	ID                uint                 `gorm:"primaryKey"`
	RequesterID       uint                 `gorm:"column:requester_id;not null;index"`
	ItemID            uint                 `gorm:"column:item_id;not null;index"`
	EventID           *uint                `gorm:"column:event_id;index"`
	QuantityRequested int                  `gorm:"column:quantity_requested;not null"`
	Status            enums.ApprovalStatus `gorm:"column:status;type:text;not null;default:pending"`
	RequestDate       time.Time            `gorm:"column:request_date;autoCreateTime"`
	ReturnDate        *time.Time           `gorm:"column:return_date"`
}
