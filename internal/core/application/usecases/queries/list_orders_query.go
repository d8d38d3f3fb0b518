package queries

import (
	"errors"
	"time"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersQuery retrieves a page of the requesting customer's own orders,
// newest first.
type ListOrdersQuery struct {
	requestedBy actor.Actor
	page        int
	pageSize    int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a customer's order list.
// Page numbers below one snap to the first page; out-of-range page sizes
// snap to the defaults rather than failing.
func NewListOrdersQuery(requestedBy actor.Actor, page, pageSize int) (ListOrdersQuery, error) {
	if err := requestedBy.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return ListOrdersQuery{
		requestedBy: requestedBy,
		page:        page,
		pageSize:    pageSize,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// RequestedBy returns the actor whose orders are listed.
func (q ListOrdersQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// OrderSummaryResponse is one row of an order listing: enough for the
// dashboard card without the full timeline and file payloads.
type OrderSummaryResponse struct {
	ID                    string          `json:"id"`
	WebsiteName           string          `json:"websiteName"`
	Plan                  string          `json:"plan"`
	Price                 decimal.Decimal `json:"price"`
	Status                string          `json:"status"`
	Progress              int             `json:"progress"`
	PaymentStatus         string          `json:"paymentStatus"`
	EstimatedDeliveryDate time.Time       `json:"estimatedDeliveryDate"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// ListOrdersQueryResponse is a page of order summaries plus the total count
// for pagination.
type ListOrdersQueryResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
	Total  int64                  `json:"total"`
	Page   int                    `json:"page"`
}
