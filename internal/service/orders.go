package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/internal/repository"
	"agrilink/marketplace-backend/internal/validation"
	"agrilink/marketplace-backend/pkg/query"
)

// OrderService adds buyer/seller order listings over the generic envelope.
type OrderService struct {
	*Service[models.Order]
	items *repository.Repository[models.OrderItem]
}

func NewOrderService(repo *repository.Repository[models.Order], items *repository.Repository[models.OrderItem], validator validation.Validator, logger *zap.Logger) *OrderService {
	return &OrderService{
		Service: New(validation.EntityOrder, repo, validator, logger),
		items:   items,
	}
}

// ListByBuyer lists a buyer's orders, newest first.
func (s *OrderService) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ListResponse[models.Order] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{query.Eq("buyer_id", buyerID)},
		Sorts:   []query.Sort{{Column: "created_at", Ascending: false}},
	})
}

// ListBySeller lists a seller's orders, newest first.
func (s *OrderService) ListBySeller(ctx context.Context, sellerID uuid.UUID) ListResponse[models.Order] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{query.Eq("seller_id", sellerID)},
		Sorts:   []query.Sort{{Column: "created_at", Ascending: false}},
	})
}

// Items lists the line items of one order.
func (s *OrderService) Items(ctx context.Context, orderID uuid.UUID) ListResponse[models.OrderItem] {
	data, err := s.items.FindWhere(ctx, []query.Filter{query.Eq("order_id", orderID)})
	if err != nil {
		return ListResponse[models.OrderItem]{Error: handleRepositoryError(err)}
	}
	return ListResponse[models.OrderItem]{Data: data, Count: int64(len(data))}
}

// totalTolerance absorbs float accumulation across line items.
const totalTolerance = 0.01

// VerifyTotals checks that the order's total matches the sum of its item
// subtotals within a small tolerance. A mismatch comes back as a
// VALIDATION_ERROR with both figures in the details.
func (s *OrderService) VerifyTotals(ctx context.Context, orderID uuid.UUID) ServiceResponse[models.Order] {
	current := s.Get(ctx, orderID)
	if current.Error != nil {
		return current
	}

	items := s.Items(ctx, orderID)
	if items.Error != nil {
		return fail[models.Order](items.Error)
	}

	var sum float64
	for _, item := range items.Data {
		sum += item.Subtotal
	}
	if diff := current.Data.TotalAmount - sum; diff > totalTolerance || diff < -totalTolerance {
		return fail[models.Order](&ServiceError{
			Code:    ErrCodeValidation,
			Message: "order total does not match the sum of item subtotals",
			Details: map[string]float64{"total_amount": current.Data.TotalAmount, "items_sum": sum},
		})
	}
	return current
}
