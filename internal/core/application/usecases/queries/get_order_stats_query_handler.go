package queries

import (
	"context"
	"time"

	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/pkg/errs"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes the admin dashboard counters in a
// single aggregate query.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for the dashboard counters.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the stats query. Only admins may read the counters.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	if !query.RequestedBy().IsAdmin() {
		return GetOrderStatsQueryResponse{}, errs.NewPermissionDeniedError("read order stats")
	}

	inProgress := lo.FilterMap(
		[]order.Status{
			order.StatusPending,
			order.StatusRequirements,
			order.StatusDesign,
			order.StatusDevelopment,
			order.StatusRevision,
			order.StatusCompleted,
			order.StatusCancelled,
		},
		func(s order.Status, _ int) (string, bool) {
			return s.String(), s.IsInProgress()
		},
	)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var response GetOrderStatsQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status IN ?),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(price) FILTER (WHERE payment_status = ?), 0),
			COALESCE(SUM(price) FILTER (WHERE payment_status = ? AND created_at >= ?), 0)
		FROM orders
	`,
		order.StatusPending.String(),
		inProgress,
		order.StatusCompleted.String(),
		order.PaymentPaid.String(),
		order.PaymentPaid.String(),
		monthStart,
	).Row()

	if err := row.Scan(
		&response.TotalOrders,
		&response.PendingOrders,
		&response.InProgressOrders,
		&response.CompletedOrders,
		&response.TotalRevenue,
		&response.MonthlyRevenue,
	); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return response, nil
}
