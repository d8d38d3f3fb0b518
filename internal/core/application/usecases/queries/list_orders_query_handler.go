package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler serves a customer's own order list straight from
// the database, skipping aggregate rehydration for the heavy JSONB columns.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for customer order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Orders are sorted newest first with the id as a tiebreaker so pages stay
// stable when rows share a creation timestamp.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	ownerID := query.RequestedBy().ID().Bytes()

	var total int64
	if err := h.db.WithContext(ctx).
		Table("orders").
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requirements_website_name,
			plan,
			price,
			status,
			progress,
			payment_status,
			estimated_delivery_date,
			created_at
		FROM orders
		WHERE owner_id = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, ownerID, query.PageSize(), (query.Page()-1)*query.PageSize()).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID
		var price decimal.Decimal
		var estimatedDeliveryDate, createdAt time.Time

		if err = rows.Scan(
			&id,
			&summary.WebsiteName,
			&summary.Plan,
			&price,
			&summary.Status,
			&summary.Progress,
			&summary.PaymentStatus,
			&estimatedDeliveryDate,
			&createdAt,
		); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		summary.ID = id.String()
		summary.Price = price
		summary.EstimatedDeliveryDate = estimatedDeliveryDate
		summary.CreatedAt = createdAt
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders: orders,
		Total:  total,
		Page:   query.Page(),
	}, nil
}
