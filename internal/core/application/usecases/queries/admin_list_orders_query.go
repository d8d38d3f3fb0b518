package queries

import (
	"errors"
	"time"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAdminListOrdersQueryIsNotConstructed = errors.New(
	"AdminListOrdersQuery must be created via NewAdminListOrdersQuery constructor",
)

// AdminOrdersFilter narrows the admin order listing. Nil pointer fields and
// an empty search term mean no filtering on that field. The search term
// matches customer email or website name, case-insensitive. Filters combine
// with AND.
type AdminOrdersFilter struct {
	Status        *order.Status
	PaymentStatus *order.PaymentStatus
	Plan          *order.Plan
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	Search        string
}

// Validate checks that every set enum filter carries a known value.
func (f AdminOrdersFilter) Validate() error {
	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	if f.PaymentStatus != nil {
		if err := f.PaymentStatus.Validate(); err != nil {
			return err
		}
	}
	if f.Plan != nil {
		if err := f.Plan.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AdminListOrdersQuery retrieves a page of all orders for the admin
// dashboard, optionally narrowed by an AdminOrdersFilter.
type AdminListOrdersQuery struct {
	requestedBy actor.Actor
	filter      AdminOrdersFilter
	page        int
	pageSize    int

	guard guard.ConstructorGuard
}

// NewAdminListOrdersQuery creates a query for the admin order listing.
// Page numbers below one snap to the first page; out-of-range page sizes
// snap to the defaults.
func NewAdminListOrdersQuery(
	requestedBy actor.Actor,
	filter AdminOrdersFilter,
	page, pageSize int,
) (AdminListOrdersQuery, error) {
	if err := requestedBy.Validate(); err != nil {
		return AdminListOrdersQuery{}, err
	}
	if err := filter.Validate(); err != nil {
		return AdminListOrdersQuery{}, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return AdminListOrdersQuery{
		requestedBy: requestedBy,
		filter:      filter,
		page:        page,
		pageSize:    pageSize,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AdminListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrAdminListOrdersQueryIsNotConstructed)
}

// RequestedBy returns the actor asking for the listing.
func (q AdminListOrdersQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}

// Filter returns the listing filter.
func (q AdminListOrdersQuery) Filter() AdminOrdersFilter {
	return q.filter
}

// Page returns the 1-based page number.
func (q AdminListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q AdminListOrdersQuery) PageSize() int {
	return q.pageSize
}

// AdminOrderRowResponse is one row of the admin listing, joined with the
// ordering customer's identity.
type AdminOrderRowResponse struct {
	ID                    string          `json:"id"`
	CustomerName          string          `json:"customerName"`
	CustomerEmail         string          `json:"customerEmail"`
	WebsiteName           string          `json:"websiteName"`
	Plan                  string          `json:"plan"`
	Price                 decimal.Decimal `json:"price"`
	Status                string          `json:"status"`
	Progress              int             `json:"progress"`
	PaymentStatus         string          `json:"paymentStatus"`
	EstimatedDeliveryDate time.Time       `json:"estimatedDeliveryDate"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// AdminListOrdersQueryResponse is a page of admin order rows plus the total
// matching count.
type AdminListOrdersQueryResponse struct {
	Orders []AdminOrderRowResponse `json:"orders"`
	Total  int64                   `json:"total"`
	Page   int                     `json:"page"`
}
