package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/internal/repository"
	"agrilink/marketplace-backend/internal/validation"
	"agrilink/marketplace-backend/pkg/query"
)

// ShipmentService adds delivery operations over the generic envelope, plus
// cold-chain compliance checks for perishable cargo.
type ShipmentService struct {
	*Service[models.Shipment]
	coldChain *repository.Repository[models.ColdChainLog]
	items     *repository.Repository[models.OrderItem]
	listings  *repository.Repository[models.ProductListing]
	products  *repository.Repository[models.Product]
}

func NewShipmentService(
	repo *repository.Repository[models.Shipment],
	coldChain *repository.Repository[models.ColdChainLog],
	items *repository.Repository[models.OrderItem],
	listings *repository.Repository[models.ProductListing],
	products *repository.Repository[models.Product],
	validator validation.Validator,
	logger *zap.Logger,
) *ShipmentService {
	return &ShipmentService{
		Service:   New(validation.EntityShipment, repo, validator, logger),
		coldChain: coldChain,
		items:     items,
		listings:  listings,
		products:  products,
	}
}

// ListByOrder lists the shipments of one order.
func (s *ShipmentService) ListByOrder(ctx context.Context, orderID uuid.UUID) ListResponse[models.Shipment] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{query.Eq("order_id", orderID)},
		Sorts:   []query.Sort{{Column: "created_at", Ascending: false}},
	})
}

// MarkDelivered records the delivery timestamp and moves the shipment to
// delivered through the transition gate.
func (s *ShipmentService) MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time) ServiceResponse[models.Shipment] {
	current := s.Get(ctx, id)
	if current.Error != nil {
		return current
	}

	payload := map[string]interface{}{
		"status":               string(models.ShipmentStatusDelivered),
		"actual_delivery_date": deliveredAt,
	}
	if result := s.validator.ValidateUpdate(payload); !result.Valid {
		return fail[models.Shipment](validationError(result))
	}
	if result := s.validator.ValidateStatusTransition(string(current.Data.Status), string(models.ShipmentStatusDelivered)); !result.Valid {
		return fail[models.Shipment](transitionError(result))
	}

	updated, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return fail[models.Shipment](s.logRepoError("MarkDelivered", err))
	}
	return ok(updated)
}

// ColdChainBreaches lists the readings taken on a shipment that fell outside
// the transit temperature band declared on the products it carries. Caller
// overrides, when supplied, take precedence over the declared band.
func (s *ShipmentService) ColdChainBreaches(ctx context.Context, shipmentID uuid.UUID, minOverride, maxOverride *float64) ListResponse[models.ColdChainLog] {
	minTempC, maxTempC, serr := s.transitBand(ctx, shipmentID)
	if serr != nil {
		return ListResponse[models.ColdChainLog]{Error: serr}
	}
	if minOverride != nil {
		minTempC = minOverride
	}
	if maxOverride != nil {
		maxTempC = maxOverride
	}
	if minTempC == nil && maxTempC == nil {
		return ListResponse[models.ColdChainLog]{Error: &ServiceError{
			Code:    ErrCodeValidation,
			Message: "no transit temperature band declared for this shipment's products",
		}}
	}

	logs, err := s.coldChain.FindWhere(ctx, []query.Filter{query.Eq("shipment_id", shipmentID)})
	if err != nil {
		return ListResponse[models.ColdChainLog]{Error: handleRepositoryError(err)}
	}

	var breaches []models.ColdChainLog
	for _, reading := range logs {
		if (minTempC != nil && reading.TemperatureCelsius < *minTempC) ||
			(maxTempC != nil && reading.TemperatureCelsius > *maxTempC) {
			breaches = append(breaches, reading)
		}
	}
	return ListResponse[models.ColdChainLog]{Data: breaches, Count: int64(len(breaches))}
}

// transitBand intersects the transit bands of every perishable product in the
// shipment's order: the tightest bound wins when line items disagree.
func (s *ShipmentService) transitBand(ctx context.Context, shipmentID uuid.UUID) (*float64, *float64, *ServiceError) {
	shipment, err := s.repo.FindByID(ctx, shipmentID)
	if err != nil {
		return nil, nil, handleRepositoryError(err)
	}

	items, err := s.items.FindWhere(ctx, []query.Filter{query.Eq("order_id", shipment.OrderID)})
	if err != nil {
		return nil, nil, handleRepositoryError(err)
	}

	var minTempC, maxTempC *float64
	for _, item := range items {
		listing, err := s.listings.FindByID(ctx, item.ListingID)
		if err != nil {
			return nil, nil, handleRepositoryError(err)
		}
		product, err := s.products.FindByID(ctx, listing.ProductID)
		if err != nil {
			return nil, nil, handleRepositoryError(err)
		}
		if !product.Perishable {
			continue
		}
		if product.MinTransitTempC != nil && (minTempC == nil || *product.MinTransitTempC > *minTempC) {
			minTempC = product.MinTransitTempC
		}
		if product.MaxTransitTempC != nil && (maxTempC == nil || *product.MaxTransitTempC < *maxTempC) {
			maxTempC = product.MaxTransitTempC
		}
	}
	return minTempC, maxTempC, nil
}
