// Package http exposes the order service over a JSON REST surface.
package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sitebuilder/internal/core/application/usecases/commands"
	"sitebuilder/internal/core/application/usecases/queries"
	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/core/ports"
	"sitebuilder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Server wires the HTTP surface to the application use cases. Every route
// except the health check requires a bearer token; authorization beyond
// authentication is the handlers' concern.
type Server struct {
	authenticator ports.Authenticator

	createOrderHandler        commands.CreateOrderCommandHandler
	changeStatusHandler       commands.ChangeStatusCommandHandler
	updateRequirementsHandler commands.UpdateRequirementsCommandHandler
	updateAdminDetailsHandler commands.UpdateAdminDetailsCommandHandler
	setPaymentStatusHandler   commands.SetPaymentStatusCommandHandler
	addDeliveredFileHandler   commands.AddDeliveredFileCommandHandler

	getOrderHandler        queries.GetOrderQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	adminListOrdersHandler queries.AdminListOrdersQueryHandler
	getOrderStatsHandler   queries.GetOrderStatsQueryHandler
}

// NewServer creates an HTTP server over the given authenticator and handlers.
func NewServer(
	authenticator ports.Authenticator,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeStatusCommandHandler,
	updateRequirementsHandler commands.UpdateRequirementsCommandHandler,
	updateAdminDetailsHandler commands.UpdateAdminDetailsCommandHandler,
	setPaymentStatusHandler commands.SetPaymentStatusCommandHandler,
	addDeliveredFileHandler commands.AddDeliveredFileCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	adminListOrdersHandler queries.AdminListOrdersQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
) *Server {
	return &Server{
		authenticator:             authenticator,
		createOrderHandler:        createOrderHandler,
		changeStatusHandler:       changeStatusHandler,
		updateRequirementsHandler: updateRequirementsHandler,
		updateAdminDetailsHandler: updateAdminDetailsHandler,
		setPaymentStatusHandler:   setPaymentStatusHandler,
		addDeliveredFileHandler:   addDeliveredFileHandler,
		getOrderHandler:           getOrderHandler,
		listOrdersHandler:         listOrdersHandler,
		adminListOrdersHandler:    adminListOrdersHandler,
		getOrderStatsHandler:      getOrderStatsHandler,
	}
}

// RegisterRoutes attaches the API surface to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", s.requireActor)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.POST("/admin/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/admin/orders/:id/payment", s.SetOrderPaymentStatus)
	api.POST("/admin/orders/:id/files", s.AddDeliveredFile)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requireActor resolves the bearer token to an actor and stores it on the
// request context.
func (s *Server) requireActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return ctx.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "missing bearer token"))
		}

		act, err := s.authenticator.Authenticate(ctx.Request().Context(), token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "invalid token"))
		}

		ctx.Set(actorContextKey, act)
		return next(ctx)
	}
}

func requestActor(ctx echo.Context) (actor.Actor, bool) {
	act, ok := ctx.Get(actorContextKey).(actor.Actor)
	return act, ok
}

// ContactInfoRequest carries the customer's contact preferences at checkout.
type ContactInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	Plan            string             `json:"plan"`
	WebsiteName     string             `json:"websiteName"`
	Description     string             `json:"description"`
	RequiredPages   string             `json:"requiredPages"`
	PreferredColors string             `json:"preferredColors"`
	References      string             `json:"references"`
	ContactInfo     ContactInfoRequest `json:"contactInfo"`
	PaymentMethod   string             `json:"paymentMethod"`
}

// CreateOrderResponse returns the new order id and the payment client secret
// the browser needs to complete the charge.
type CreateOrderResponse struct {
	OrderID      string `json:"orderId"`
	ClientSecret string `json:"clientSecret"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	act, ok := requestActor(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "unauthenticated"))
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "invalid request body"))
	}

	plan, err := order.PlanFromString(request.Plan)
	if err != nil {
		return respondError(ctx, err)
	}

	if request.PaymentMethod == "" {
		request.PaymentMethod = order.MethodCard.String()
	}
	paymentMethod, err := order.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	requirements, err := order.NewRequirements(
		request.WebsiteName,
		request.Description,
		request.RequiredPages,
		request.PreferredColors,
		request.References,
		order.ContactInfo{
			Name:  request.ContactInfo.Name,
			Email: request.ContactInfo.Email,
			Phone: request.ContactInfo.Phone,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		act.ID(),
		request.CustomerName,
		request.CustomerEmail,
		plan,
		requirements,
		paymentMethod,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:      orderID.String(),
		ClientSecret: result.ClientSecret,
	})
}

// OwnerOrdersPageResponse is a page of the owner's orders.
type OwnerOrdersPageResponse struct {
	Orders []queries.OrderSummaryResponse `json:"orders"`
	Total  int64                          `json:"total"`
	Page   int                            `json:"page"`
	Pages  int64                          `json:"pages"`
}

// AdminOrdersPageResponse is a page of all orders plus the dashboard stats.
type AdminOrdersPageResponse struct {
	Orders []queries.AdminOrderRowResponse    `json:"orders"`
	Total  int64                              `json:"total"`
	Page   int                                `json:"page"`
	Pages  int64                              `json:"pages"`
	Stats  queries.GetOrderStatsQueryResponse `json:"stats"`
}

// ListOrders handles GET /api/v1/orders. Customers get their own orders;
// admins get the full listing with filters and the dashboard stats alongside.
func (s *Server) ListOrders(ctx echo.Context) error {
	act, ok := requestActor(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "unauthenticated"))
	}

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))

	if act.IsAdmin() {
		return s.listOrdersForAdmin(ctx, act, page, pageSize)
	}
	return s.listOrdersForOwner(ctx, act, page, pageSize)
}

func (s *Server) listOrdersForOwner(ctx echo.Context, act actor.Actor, page, pageSize int) error {
	query, err := queries.NewListOrdersQuery(act, page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OwnerOrdersPageResponse{
		Orders: response.Orders,
		Total:  response.Total,
		Page:   response.Page,
		Pages:  pageCount(response.Total, query.PageSize()),
	})
}

func (s *Server) listOrdersForAdmin(ctx echo.Context, act actor.Actor, page, pageSize int) error {
	filter, err := adminFilterFromParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewAdminListOrdersQuery(act, filter, page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	listing, err := s.adminListOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	statsQuery, err := queries.NewGetOrderStatsQuery(act)
	if err != nil {
		return respondError(ctx, err)
	}
	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), statsQuery)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdminOrdersPageResponse{
		Orders: listing.Orders,
		Total:  listing.Total,
		Page:   listing.Page,
		Pages:  pageCount(listing.Total, query.PageSize()),
		Stats:  stats,
	})
}

func adminFilterFromParams(ctx echo.Context) (queries.AdminOrdersFilter, error) {
	filter := queries.AdminOrdersFilter{Search: ctx.QueryParam("search")}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return queries.AdminOrdersFilter{}, err
		}
		filter.Status = &status
	}
	if raw := ctx.QueryParam("paymentStatus"); raw != "" {
		paymentStatus, err := order.PaymentStatusFromString(raw)
		if err != nil {
			return queries.AdminOrdersFilter{}, err
		}
		filter.PaymentStatus = &paymentStatus
	}
	if raw := ctx.QueryParam("plan"); raw != "" {
		plan, err := order.PlanFromString(raw)
		if err != nil {
			return queries.AdminOrdersFilter{}, err
		}
		filter.Plan = &plan
	}
	if raw := ctx.QueryParam("createdFrom"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return queries.AdminOrdersFilter{}, errs.NewValueIsInvalidErrorWithCause("createdFrom", err)
		}
		filter.CreatedFrom = &from
	}
	if raw := ctx.QueryParam("createdTo"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return queries.AdminOrdersFilter{}, errs.NewValueIsInvalidErrorWithCause("createdTo", err)
		}
		filter.CreatedTo = &to
	}

	return filter, nil
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	act, ok := requestActor(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "unauthenticated"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(act, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TimelineAppendRequest is a free-form timeline annotation.
type TimelineAppendRequest struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UpdateOrderRequest covers both sides of PUT /api/v1/orders/:id. Customers
// send the requirements fields; admins send notes, delivery date, or a
// timeline annotation.
type UpdateOrderRequest struct {
	WebsiteName     string             `json:"websiteName"`
	Description     string             `json:"description"`
	RequiredPages   string             `json:"requiredPages"`
	PreferredColors string             `json:"preferredColors"`
	References      string             `json:"references"`
	ContactInfo     ContactInfoRequest `json:"contactInfo"`

	AdminNotes            *string                `json:"adminNotes"`
	EstimatedDeliveryDate *time.Time             `json:"estimatedDeliveryDate"`
	TimelineAppend        *TimelineAppendRequest `json:"timelineAppend"`
}

// UpdateOrder handles PUT /api/v1/orders/:id. The authenticated role picks
// the operation: owners reshape requirements, admins edit the back-office
// details.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	act, ok := requestActor(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "unauthenticated"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "invalid request body"))
	}

	if act.IsAdmin() {
		return s.updateAdminDetails(ctx, act, orderID, request)
	}
	return s.updateRequirements(ctx, act, orderID, request)
}

func (s *Server) updateRequirements(
	ctx echo.Context, act actor.Actor, orderID kernel.UUID, request UpdateOrderRequest,
) error {
	requirements, err := order.NewRequirements(
		request.WebsiteName,
		request.Description,
		request.RequiredPages,
		request.PreferredColors,
		request.References,
		order.ContactInfo{
			Name:  request.ContactInfo.Name,
			Email: request.ContactInfo.Email,
			Phone: request.ContactInfo.Phone,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateRequirementsCommand(act, orderID, requirements)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateRequirementsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) updateAdminDetails(
	ctx echo.Context, act actor.Actor, orderID kernel.UUID, request UpdateOrderRequest,
) error {
	var timelineAppend *commands.TimelineAppend
	if request.TimelineAppend != nil {
		status, err := order.StatusFromString(request.TimelineAppend.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		timelineAppend = &commands.TimelineAppend{
			Status:  status,
			Message: request.TimelineAppend.Message,
		}
	}

	cmd, err := commands.NewUpdateAdminDetailsCommand(
		act, orderID, request.AdminNotes, request.EstimatedDeliveryDate, timelineAppend,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateAdminDetailsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeStatusRequest drives a workflow transition. The estimated delivery
// date is optional and applied alongside the status change.
type ChangeStatusRequest struct {
	Status                string     `json:"status"`
	Message               string     `json:"message"`
	NotifyCustomer        bool       `json:"notifyCustomer"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate"`
}

// ChangeOrderStatus handles POST /api/v1/admin/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	act, ok := requestActor(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "unauthenticated"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "invalid request body"))
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	if request.EstimatedDeliveryDate != nil {
		detailsCmd, detailsErr := commands.NewUpdateAdminDetailsCommand(
			act, orderID, nil, request.EstimatedDeliveryDate, nil,
		)
		if detailsErr != nil {
			return respondError(ctx, detailsErr)
		}
		if detailsErr = s.updateAdminDetailsHandler.Handle(ctx.Request().Context(), detailsCmd); detailsErr != nil {
			return respondError(ctx, detailsErr)
		}
	}

	cmd, err := commands.NewChangeStatusCommand(act, orderID, status, request.Message, request.NotifyCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetPaymentStatusRequest records the payment processor's verdict.
type SetPaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// SetOrderPaymentStatus handles POST /api/v1/admin/orders/:id/payment.
func (s *Server) SetOrderPaymentStatus(ctx echo.Context) error {
	act, ok := requestActor(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "unauthenticated"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request SetPaymentStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "invalid request body"))
	}

	paymentStatus, err := order.PaymentStatusFromString(request.PaymentStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetPaymentStatusCommand(act, orderID, paymentStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setPaymentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddDeliveredFile handles POST /api/v1/admin/orders/:id/files (multipart).
// Expects a "file" part plus optional "fileType" and "description" fields.
func (s *Server) AddDeliveredFile(ctx echo.Context) error {
	act, ok := requestActor(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "unauthenticated"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "missing file part"))
	}

	fileTypeName := ctx.FormValue("fileType")
	if fileTypeName == "" {
		fileTypeName = order.FileTypeOther.String()
	}
	fileType, err := order.FileTypeFromString(fileTypeName)
	if err != nil {
		return respondError(ctx, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "unreadable file part"))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "unreadable file part"))
	}

	cmd, err := commands.NewAddDeliveredFileCommand(
		act, orderID, fileHeader.Filename, fileType, ctx.FormValue("description"), data,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addDeliveredFileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorBody(code int, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}

// respondError maps the error taxonomy onto HTTP statuses. Unclassified
// errors become 500 with a generic message so internals never leak.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody(http.StatusNotFound, err.Error()))
	case errors.Is(err, errs.ErrPermissionDenied):
		return ctx.JSON(http.StatusForbidden, errorBody(http.StatusForbidden, err.Error()))
	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusConflict, errorBody(http.StatusConflict, err.Error()))
	case errors.Is(err, errs.ErrUpstreamFailure):
		return ctx.JSON(http.StatusBadGateway, errorBody(http.StatusBadGateway, "upstream service failed"))
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, err.Error()))
	default:
		return ctx.JSON(http.StatusInternalServerError, errorBody(http.StatusInternalServerError, "internal error"))
	}
}

func pageCount(total int64, pageSize int) int64 {
	if pageSize < 1 {
		return 0
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}
