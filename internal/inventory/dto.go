package inventory

import (
	"time"

	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
)

// ItemDTO is the transport shape for an inventory item.
type ItemDTO struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Description       *string    `json:"description,omitempty"`
	Category          *string    `json:"category,omitempty"`
	QuantityAvailable int        `json:"quantity_available"`
	Unit              *string    `json:"unit,omitempty"`
	MinimumStock      int        `json:"minimum_stock"`
	LastRestocked     *time.Time `json:"last_restocked,omitempty"`
}

// CreateItemRequest captures the payload for adding an item.
type CreateItemRequest struct {
	Name              string  `json:"name" validate:"required"`
	Description       *string `json:"description,omitempty"`
	Category          *string `json:"category,omitempty"`
	QuantityAvailable int     `json:"quantity_available" validate:"gte=0"`
	Unit              *string `json:"unit,omitempty"`
	MinimumStock      int     `json:"minimum_stock" validate:"gte=0"`
}

// RequestItemRequest captures the payload for claiming stock.
type RequestItemRequest struct {
	QuantityRequested int        `json:"quantity_requested" validate:"required,gt=0"`
	EventID           *uint      `json:"event_id,omitempty"`
	ReturnDate        *time.Time `json:"return_date,omitempty"`
}

// RestockRequest captures the payload for adding stock.
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// RequestDTO is the transport shape for an inventory request.
type RequestDTO struct {
	ID                uint                 `json:"id"`
	RequesterID       uint                 `json:"requester_id"`
	ItemID            uint                 `json:"item_id"`
	EventID           *uint                `json:"event_id,omitempty"`
	QuantityRequested int                  `json:"quantity_requested"`
	Status            enums.ApprovalStatus `json:"status"`
	RequestDate       time.Time            `json:"request_date"`
	ReturnDate        *time.Time           `json:"return_date,omitempty"`
}

// TransactionDTO is the transport shape for a ledger entry.
type TransactionDTO struct {
	ID              uint                  `json:"id"`
	ItemID          uint                  `json:"item_id"`
	Quantity        int                   `json:"quantity"`
	TransactionType enums.TransactionType `json:"transaction_type"`
	Reference       *string               `json:"reference,omitempty"`
	TransactionDate time.Time             `json:"transaction_date"`
}

func itemFromModel(i *models.InventoryItem) *ItemDTO {
	if i == nil {
		return nil
	}

	return &ItemDTO{
		ID:                i.ID,
		Name:              i.Name,
		Description:       i.Description,
		Category:          i.Category,
		QuantityAvailable: i.QuantityAvailable,
		Unit:              i.Unit,
		MinimumStock:      i.MinimumStock,
		LastRestocked:     i.LastRestocked,
	}
}

func itemsFromModels(items []models.InventoryItem) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *itemFromModel(&items[i]))
	}
	return dtos
}

func requestFromModel(r *models.InventoryRequest) *RequestDTO {
	if r == nil {
		return nil
	}

	return &RequestDTO{
		ID:                r.ID,
		RequesterID:       r.RequesterID,
		ItemID:            r.ItemID,
		EventID:           r.EventID,
		QuantityRequested: r.QuantityRequested,
		Status:            r.Status,
		RequestDate:       r.RequestDate,
		ReturnDate:        r.ReturnDate,
	}
}

func requestsFromModels(items []models.InventoryRequest) []RequestDTO {
	dtos := make([]RequestDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *requestFromModel(&items[i]))
	}
	return dtos
}

func transactionFromModel(tx *models.InventoryTransaction) *TransactionDTO {
	if tx == nil {
		return nil
	}

	return &TransactionDTO{
		ID:              tx.ID,
		ItemID:          tx.ItemID,
		Quantity:        tx.Quantity,
		TransactionType: tx.TransactionType,
		Reference:       tx.Reference,
		TransactionDate: tx.TransactionDate,
	}
}

func transactionsFromModels(items []models.InventoryTransaction) []TransactionDTO {
	dtos := make([]TransactionDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *transactionFromModel(&items[i]))
	}
	return dtos
}
