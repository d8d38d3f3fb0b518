package queries

import (
	"context"

	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/core/ports"
	"sitebuilder/internal/pkg/errs"

	"github.com/samber/lo"
)

// GetOrderQueryHandler serves the single-order detail view.
// Reads through the order repository so the JSONB timeline and file columns
// are rehydrated in exactly one place.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for order detail reads.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle executes the detail query.
// Admins see any order; customers see only their own, and a foreign order id
// answers not found so the endpoint never confirms other customers' orders.
// Admin notes are stripped from customer responses.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	target, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	isAdmin := query.RequestedBy().IsAdmin()
	if !isAdmin && !target.OwnerID().IsEqual(query.RequestedBy().ID()) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}

	response := newOrderResponse(target)
	if !isAdmin {
		response.AdminNotes = ""
	}

	return response, nil
}

func newOrderResponse(target *order.Order) GetOrderQueryResponse {
	reqs := target.Requirements()
	contact := reqs.ContactInfo()

	return GetOrderQueryResponse{
		ID:            target.ID().String(),
		OwnerID:       target.OwnerID().String(),
		Plan:          target.Plan().String(),
		Price:         target.Price(),
		Status:        target.Status().String(),
		PaymentStatus: target.PaymentStatus().String(),
		PaymentMethod: target.PaymentMethod().String(),
		Requirements: RequirementsResponse{
			WebsiteName:     reqs.WebsiteName(),
			Description:     reqs.Description(),
			RequiredPages:   reqs.RequiredPages(),
			PreferredColors: reqs.PreferredColors(),
			References:      reqs.References(),
			ContactInfo: ContactInfoResponse{
				Name:  contact.Name,
				Email: contact.Email,
				Phone: contact.Phone,
			},
		},
		Progress: target.Progress(),
		Timeline: lo.Map(target.Timeline(), func(event order.TimelineEvent, _ int) TimelineEventResponse {
			return TimelineEventResponse{
				Status:  event.Status().String(),
				Date:    event.Date(),
				Message: event.Message(),
			}
		}),
		EstimatedDeliveryDate: target.EstimatedDeliveryDate(),
		AdminNotes:            target.AdminNotes(),
		DeliveredFiles: lo.Map(target.DeliveredFiles(), func(file order.DeliveredFile, _ int) DeliveredFileResponse {
			return DeliveredFileResponse{
				Name:        file.Name(),
				URL:         file.URL(),
				FileType:    file.FileType().String(),
				Description: file.Description(),
				UploadedAt:  file.UploadedAt(),
			}
		}),
		CreatedAt: target.CreatedAt(),
		UpdatedAt: target.UpdatedAt(),
	}
}
