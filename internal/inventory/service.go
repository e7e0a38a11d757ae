package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/pkg/db"
	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	pkgerrors "github.com/campuslabs/campus-events-backend/pkg/errors"
	"github.com/campuslabs/campus-events-backend/pkg/pagination"
)

// Service defines the behavior needed by the items controller.
type Service interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (*ItemDTO, error)
	ListItems(ctx context.Context, params pagination.Params) ([]ItemDTO, error)
	GetItem(ctx context.Context, id uint) (*ItemDTO, error)
	Restock(ctx context.Context, itemID uint, req RestockRequest) (*ItemDTO, error)
	RequestItem(ctx context.Context, requesterID, itemID uint, req RequestItemRequest) (*RequestDTO, error)
	ListRequests(ctx context.Context, itemID uint, params pagination.Params) ([]RequestDTO, error)
	ApproveRequest(ctx context.Context, itemID, requestID uint) (*RequestDTO, error)
	RejectRequest(ctx context.Context, itemID, requestID uint) (*RequestDTO, error)
	ListTransactions(ctx context.Context, itemID uint, params pagination.Params) ([]TransactionDTO, error)
}

type service struct {
	db    *db.Client
	items *Repository
}

// ServiceParams bundles the dependencies required to build an inventory service.
type ServiceParams struct {
	DB *db.Client
}

// NewService constructs an inventory service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{
		db:    params.DB,
		items: NewRepository(params.DB.DB()),
	}, nil
}

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemDTO, error) {
	item, err := s.items.CreateItem(ctx, &models.InventoryItem{
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		QuantityAvailable: req.QuantityAvailable,
		Unit:              req.Unit,
		MinimumStock:      req.MinimumStock,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create item")
	}
	return itemFromModel(item), nil
}

func (s *service) ListItems(ctx context.Context, params pagination.Params) ([]ItemDTO, error) {
	items, err := s.items.ListItems(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list items")
	}
	return itemsFromModels(items), nil
}

func (s *service) GetItem(ctx context.Context, id uint) (*ItemDTO, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return itemFromModel(item), nil
}

func (s *service) Restock(ctx context.Context, itemID uint, req RestockRequest) (*ItemDTO, error) {
	if _, err := s.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reference := "restock"
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		if err := repo.AddStock(ctx, itemID, req.Quantity, now); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add stock")
		}
		if _, err := repo.AppendTransaction(ctx, &models.InventoryTransaction{
			ItemID:          itemID,
			Quantity:        req.Quantity,
			TransactionType: enums.TransactionTypeIn,
			Reference:       &reference,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "append transaction")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetItem(ctx, itemID)
}

func (s *service) RequestItem(ctx context.Context, requesterID, itemID uint, req RequestItemRequest) (*RequestDTO, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if req.QuantityRequested >= item.QuantityAvailable {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item is out of stock")
	}

	request, err := s.items.CreateRequest(ctx, &models.InventoryRequest{
		RequesterID:       requesterID,
		ItemID:            itemID,
		EventID:           req.EventID,
		QuantityRequested: req.QuantityRequested,
		Status:            enums.ApprovalStatusPending,
		ReturnDate:        req.ReturnDate,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create request")
	}
	return requestFromModel(request), nil
}

func (s *service) ListRequests(ctx context.Context, itemID uint, params pagination.Params) ([]RequestDTO, error) {
	if _, err := s.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	requests, err := s.items.ListRequestsByItem(ctx, itemID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list requests")
	}
	return requestsFromModels(requests), nil
}

func (s *service) ApproveRequest(ctx context.Context, itemID, requestID uint) (*RequestDTO, error) {
	return s.decideRequest(ctx, itemID, requestID, enums.ApprovalStatusApproved)
}

func (s *service) RejectRequest(ctx context.Context, itemID, requestID uint) (*RequestDTO, error) {
	return s.decideRequest(ctx, itemID, requestID, enums.ApprovalStatusRejected)
}

func (s *service) decideRequest(ctx context.Context, itemID, requestID uint, next enums.ApprovalStatus) (*RequestDTO, error) {
	request, err := s.findRequest(ctx, itemID, requestID)
	if err != nil {
		return nil, err
	}
	if !request.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("request is already %s", request.Status))
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		updated, err := repo.TransitionRequestStatus(ctx, requestID, enums.ApprovalStatusPending, next)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update request status")
		}
		if !updated {
			current, err := s.findRequest(ctx, itemID, requestID)
			if err != nil {
				return err
			}
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("request is already %s", current.Status))
		}

		if next == enums.ApprovalStatusApproved {
			reference := fmt.Sprintf("request:%d", requestID)
			if _, err := repo.AppendTransaction(ctx, &models.InventoryTransaction{
				ItemID:          itemID,
				Quantity:        request.QuantityRequested,
				TransactionType: enums.TransactionTypeOut,
				Reference:       &reference,
			}); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "append transaction")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	request.Status = next
	return requestFromModel(request), nil
}

func (s *service) ListTransactions(ctx context.Context, itemID uint, params pagination.Params) ([]TransactionDTO, error) {
	if _, err := s.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	transactions, err := s.items.ListTransactionsByItem(ctx, itemID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list transactions")
	}
	return transactionsFromModels(transactions), nil
}

func (s *service) findItem(ctx context.Context, id uint) (*models.InventoryItem, error) {
	item, err := s.items.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup item")
	}
	return item, nil
}

func (s *service) findRequest(ctx context.Context, itemID, requestID uint) (*models.InventoryRequest, error) {
	request, err := s.items.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup request")
	}
	if request.ItemID != itemID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "request not found")
	}
	return request, nil
}
