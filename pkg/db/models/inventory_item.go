package models

import "time"

// InventoryItem tracks consumable/returnable stock.
type InventoryItem struct {
	ID                uint       `gorm:"primaryKey"`
	Name              string     `gorm:"column:name;not null"`
	Description       *string    `gorm:"column:description"`
	Category          *string    `gorm:"column:category"`
	QuantityAvailable int        `gorm:"column:quantity_available;not null;default:0"`
	Unit              *string    `gorm:"column:unit"`
	MinimumStock      int        `gorm:"column:minimum_stock;not null;default:0"`
	LastRestocked     *time.Time `gorm:"column:last_restocked"`
}
