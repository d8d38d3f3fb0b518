package queries

import (
	"errors"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves the admin dashboard counters: order counts
// by phase plus total and current-month revenue across paid orders.
type GetOrderStatsQuery struct {
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for the dashboard counters.
func NewGetOrderStatsQuery(requestedBy actor.Actor) (GetOrderStatsQuery, error) {
	if err := requestedBy.Validate(); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return GetOrderStatsQuery{
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// RequestedBy returns the actor asking for the counters.
func (q GetOrderStatsQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}

// GetOrderStatsQueryResponse carries the dashboard counters.
// Revenue sums cover paid orders only; monthly revenue counts paid orders
// created since the first day of the current month.
type GetOrderStatsQueryResponse struct {
	TotalOrders      int64           `json:"totalOrders"`
	PendingOrders    int64           `json:"pendingOrders"`
	InProgressOrders int64           `json:"inProgressOrders"`
	CompletedOrders  int64           `json:"completedOrders"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	MonthlyRevenue   decimal.Decimal `json:"monthlyRevenue"`
}
