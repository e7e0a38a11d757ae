package inventory

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	"github.com/campuslabs/campus-events-backend/pkg/pagination"
)

// Repository exposes item, request, and ledger persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an inventory repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateItem inserts a new item and returns the persisted model.
func (r *Repository) CreateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindItemByID loads an item by its numeric ID.
func (r *Repository) FindItemByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns items ordered by id with offset pagination.
func (r *Repository) ListItems(ctx context.Context, params pagination.Params) ([]models.InventoryItem, error) {
	params = params.Normalize()
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddStock increments the item quantity and stamps last_restocked.
func (r *Repository) AddStock(ctx context.Context, itemID uint, quantity int, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ?", itemID).
		Updates(map[string]any{
			"quantity_available": gorm.Expr("quantity_available + ?", quantity),
			"last_restocked":     at,
		}).Error
}

// CreateRequest inserts a new inventory request.
func (r *Repository) CreateRequest(ctx context.Context, request *models.InventoryRequest) (*models.InventoryRequest, error) {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// FindRequestByID loads a request by its numeric ID.
func (r *Repository) FindRequestByID(ctx context.Context, id uint) (*models.InventoryRequest, error) {
	var request models.InventoryRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ListRequestsByItem returns the requests raised against an item.
func (r *Repository) ListRequestsByItem(ctx context.Context, itemID uint, params pagination.Params) ([]models.InventoryRequest, error) {
	params = params.Normalize()
	var requests []models.InventoryRequest
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("id ASC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// TransitionRequestStatus flips the status only when the stored value still
// matches from. Returns false when no row matched.
func (r *Repository) TransitionRequestStatus(ctx context.Context, id uint, from, to enums.ApprovalStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.InventoryRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AppendTransaction writes a ledger entry. Entries are never updated.
func (r *Repository) AppendTransaction(ctx context.Context, tx *models.InventoryTransaction) (*models.InventoryTransaction, error) {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return nil, err
	}
	return tx, nil
}

// ListTransactionsByItem returns the ledger for an item, newest first.
func (r *Repository) ListTransactionsByItem(ctx context.Context, itemID uint, params pagination.Params) ([]models.InventoryTransaction, error) {
	params = params.Normalize()
	var transactions []models.InventoryTransaction
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("id DESC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
