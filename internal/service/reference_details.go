package service

import (
	"context"
	"fmt"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"

	"github.com/sirupsen/logrus"
)

// DetailFetcher resolves human-readable details about the entity a request
// references, for use in notification bodies. Lookups are best effort: any
// failure logs and yields an empty map.
type DetailFetcher struct {
	orderDAO OrderStore
	assetDAO AssetStore
	logger   *logrus.Logger
}

// NewDetailFetcher creates a new DetailFetcher instance
func NewDetailFetcher(orderDAO OrderStore, assetDAO AssetStore, logger *logrus.Logger) *DetailFetcher {
	return &DetailFetcher{
		orderDAO: orderDAO,
		assetDAO: assetDAO,
		logger:   logger,
	}
}

// GetDetails returns placeholder data for the referenced entity. Unknown
// request types and nil reference IDs yield an empty map.
func (f *DetailFetcher) GetDetails(ctx context.Context, requestType string, referenceID *int64) map[string]string {
	details := map[string]string{}
	if referenceID == nil {
		return details
	}

	switch requestType {
	case models.RequestTypeOrderApproval:
		order, err := f.orderDAO.GetByID(ctx, *referenceID)
		if err != nil || order == nil {
			f.logger.WithError(err).WithField("orderID", *referenceID).
				Warn("Failed to fetch order details")
			return details
		}
		details["order_number"] = order.OrderNumber
		details["customer_name"] = order.CustomerName
		details["total_amount"] = fmt.Sprintf("%.2f", order.TotalAmount)

	case models.RequestTypeAssetMovementApproval:
		movement, err := f.assetDAO.GetMovementByID(ctx, *referenceID)
		if err != nil || movement == nil {
			f.logger.WithError(err).WithField("movementID", *referenceID).
				Warn("Failed to fetch movement details")
			return details
		}
		details["movement_number"] = movement.MovementNumber
		details["movement_type"] = movement.MovementType
		if movement.FromLocation != nil {
			details["from_location"] = *movement.FromLocation
		}
		if movement.ToLocation != nil {
			details["to_location"] = *movement.ToLocation
		}
	}

	return details
}
