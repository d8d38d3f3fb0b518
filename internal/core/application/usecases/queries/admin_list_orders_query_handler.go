package queries

import (
	"context"
	"time"

	"sitebuilder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AdminListOrdersQueryHandler serves the admin order dashboard listing.
// Joins orders to customers so each row carries the customer's identity and
// the search filter can match on the customer's email.
type AdminListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewAdminListOrdersQueryHandler creates a handler for admin order listings.
func NewAdminListOrdersQueryHandler(db *gorm.DB) AdminListOrdersQueryHandler {
	return AdminListOrdersQueryHandler{db: db}
}

// Handle executes the admin listing query.
// Only admins may list all orders. Filters combine with AND; the free-text
// term matches customer email or website name, case-insensitive. Rows come
// newest first with the id as a tiebreaker.
func (h AdminListOrdersQueryHandler) Handle(
	ctx context.Context,
	query AdminListOrdersQuery,
) (AdminListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AdminListOrdersQueryResponse{}, err
	}

	if !query.RequestedBy().IsAdmin() {
		return AdminListOrdersQueryResponse{}, errs.NewPermissionDeniedError("list all orders")
	}

	base := h.db.WithContext(ctx).
		Table("orders").
		Joins("JOIN customers ON customers.id = orders.owner_id")

	filter := query.Filter()
	if filter.Status != nil {
		base = base.Where("orders.status = ?", filter.Status.String())
	}
	if filter.PaymentStatus != nil {
		base = base.Where("orders.payment_status = ?", filter.PaymentStatus.String())
	}
	if filter.Plan != nil {
		base = base.Where("orders.plan = ?", filter.Plan.String())
	}
	if filter.CreatedFrom != nil {
		base = base.Where("orders.created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		base = base.Where("orders.created_at <= ?", *filter.CreatedTo)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("customers.email ILIKE ? OR orders.requirements_website_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return AdminListOrdersQueryResponse{}, err
	}

	rows, err := base.Session(&gorm.Session{}).
		Select(`
			orders.id,
			customers.name,
			customers.email,
			orders.requirements_website_name,
			orders.plan,
			orders.price,
			orders.status,
			orders.progress,
			orders.payment_status,
			orders.estimated_delivery_date,
			orders.created_at`).
		Order("orders.created_at DESC, orders.id").
		Limit(query.PageSize()).
		Offset((query.Page() - 1) * query.PageSize()).
		Rows()
	if err != nil {
		return AdminListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]AdminOrderRowResponse, 0)
	for rows.Next() {
		var row AdminOrderRowResponse
		var id uuid.UUID
		var price decimal.Decimal
		var estimatedDeliveryDate, createdAt time.Time

		if err = rows.Scan(
			&id,
			&row.CustomerName,
			&row.CustomerEmail,
			&row.WebsiteName,
			&row.Plan,
			&price,
			&row.Status,
			&row.Progress,
			&row.PaymentStatus,
			&estimatedDeliveryDate,
			&createdAt,
		); err != nil {
			return AdminListOrdersQueryResponse{}, err
		}

		row.ID = id.String()
		row.Price = price
		row.EstimatedDeliveryDate = estimatedDeliveryDate
		row.CreatedAt = createdAt
		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return AdminListOrdersQueryResponse{}, err
	}

	return AdminListOrdersQueryResponse{
		Orders: orders,
		Total:  total,
		Page:   query.Page(),
	}, nil
}
