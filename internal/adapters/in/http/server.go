// Package http exposes the order lifecycle over a REST API.
// It translates HTTP requests into commands and queries, resolves bearer
// tokens into actors for staff operations, and maps domain errors onto
// HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"tableorder/internal/adapters/in/http/auth"
	"tableorder/internal/core/application/usecases/commands"
	"tableorder/internal/core/application/usecases/queries"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned for all failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest is a single line item in an order create or edit request.
type ItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderRequest is the body of the customer order placement call.
type CreateOrderRequest struct {
	Items        []ItemRequest `json:"items"`
	Note         string        `json:"note"`
	CustomerName string        `json:"customer_name"`
}

// UpdateOrderRequest is the body of the staff order mutation call.
// All fields are optional; absent fields leave the order untouched.
// A nil Items means no item edit, while an empty array is rejected.
type UpdateOrderRequest struct {
	Status        *string       `json:"status"`
	PaymentMethod *string       `json:"payment_method"`
	Items         []ItemRequest `json:"items"`
	Note          *string       `json:"note"`
}

// ItemResponse is a line item as returned to clients.
type ItemResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

// OrderResponse is an order as returned to clients.
type OrderResponse struct {
	ID              string         `json:"id"`
	TableCode       string         `json:"table_code"`
	Items           []ItemResponse `json:"items"`
	TotalAmount     int64          `json:"total_amount"`
	Status          string         `json:"status"`
	PaymentMethod   string         `json:"payment_method,omitempty"`
	Note            string         `json:"note,omitempty"`
	CustomerName    string         `json:"customer_name,omitempty"`
	UpdatedByName   string         `json:"updated_by_name,omitempty"`
	ConfirmedByName string         `json:"confirmed_by_name,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Server implements the HTTP handlers for the order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	resolver *auth.Resolver

	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler

	// Query handlers
	getOrdersForTableHandler      queries.GetOrdersForTableQueryHandler
	getOrdersForRestaurantHandler queries.GetOrdersForRestaurantQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	resolver *auth.Resolver,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	getOrdersForTableHandler queries.GetOrdersForTableQueryHandler,
	getOrdersForRestaurantHandler queries.GetOrdersForRestaurantQueryHandler,
) *Server {
	return &Server{
		resolver:                      resolver,
		createOrderHandler:            createOrderHandler,
		updateOrderHandler:            updateOrderHandler,
		getOrdersForTableHandler:      getOrdersForTableHandler,
		getOrdersForRestaurantHandler: getOrdersForRestaurantHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/restaurants/:restaurantId/tables/:tableCode/orders", s.CreateOrder)
	api.GET("/restaurants/:restaurantId/tables/:tableCode/orders", s.GetOrdersForTable)
	api.GET("/restaurants/:restaurantId/orders", s.GetOrdersForRestaurant)
	api.PATCH("/orders/:orderId", s.UpdateOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/restaurants/:restaurantId/tables/:tableCode/orders.
// Customers place orders anonymously; no token is required.
func (s *Server) CreateOrder(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid restaurant id")
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	items, err := itemsFromRequest(request.Items)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		restaurantID,
		ctx.Param("tableCode"),
		items,
		request.Note,
		request.CustomerName,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrdersForTable handles GET /api/v1/restaurants/:restaurantId/tables/:tableCode/orders.
// This is the customer-facing poll for the state of their own table.
func (s *Server) GetOrdersForTable(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid restaurant id")
	}

	query, err := queries.NewGetOrdersForTableQuery(restaurantID, ctx.Param("tableCode"))
	if err != nil {
		return domainError(ctx, err)
	}

	orders, err := s.getOrdersForTableHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queryResponsesToJSON(orders))
}

// GetOrdersForRestaurant handles GET /api/v1/restaurants/:restaurantId/orders.
// Staff-facing; requires a token scoped to the restaurant in the path.
func (s *Server) GetOrdersForRestaurant(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid restaurant id")
	}

	by, err := s.resolver.Resolve(ctx.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return domainError(ctx, err)
	}
	if !by.WorksFor(restaurantID) {
		return errorJSON(ctx, http.StatusForbidden, "token is not scoped to this restaurant")
	}

	query, err := queries.NewGetOrdersForRestaurantQuery(restaurantID)
	if err != nil {
		return domainError(ctx, err)
	}

	orders, err := s.getOrdersForRestaurantHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queryResponsesToJSON(orders))
}

// UpdateOrder handles PATCH /api/v1/orders/:orderId.
// Staff-facing; applies a status transition, an item edit, or both.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	by, err := s.resolver.Resolve(ctx.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return domainError(ctx, err)
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	var targetStatus *order.Status
	if request.Status != nil {
		status, statusErr := order.StatusFromString(*request.Status)
		if statusErr != nil {
			return domainError(ctx, statusErr)
		}
		targetStatus = &status
	}

	var paymentMethod *order.PaymentMethod
	if request.PaymentMethod != nil {
		method, methodErr := order.PaymentMethodFromString(*request.PaymentMethod)
		if methodErr != nil {
			return domainError(ctx, methodErr)
		}
		paymentMethod = &method
	}

	var items []order.Item
	if request.Items != nil {
		items, err = itemsFromRequest(request.Items)
		if err != nil {
			return domainError(ctx, err)
		}
		if items == nil {
			items = []order.Item{}
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, by, targetStatus, paymentMethod, items, request.Note)
	if err != nil {
		return domainError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// itemsFromRequest converts request items into validated domain items.
func itemsFromRequest(requestItems []ItemRequest) ([]order.Item, error) {
	if len(requestItems) == 0 {
		return nil, nil
	}

	items := make([]order.Item, 0, len(requestItems))
	for _, ri := range requestItems {
		item, err := order.NewItem(ri.MenuItemID, ri.Name, ri.Price, ri.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// orderToResponse maps an order aggregate to its API representation.
func orderToResponse(o *order.Order) OrderResponse {
	items := o.Items()
	responseItems := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responseItems = append(responseItems, ItemResponse{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Price:      item.Price(),
			Quantity:   item.Quantity(),
		})
	}

	response := OrderResponse{
		ID:              o.ID().String(),
		TableCode:       o.TableCode(),
		Items:           responseItems,
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status().String(),
		Note:            o.Note(),
		CustomerName:    o.CustomerName(),
		UpdatedByName:   o.UpdatedByName(),
		ConfirmedByName: o.ConfirmedByName(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}

	if method := o.PaymentMethod(); method.Validate() == nil {
		response.PaymentMethod = method.String()
	}

	return response
}

// queryResponsesToJSON maps read-model rows to the API representation.
func queryResponsesToJSON(orders []queries.OrderResponse) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		items := make([]ItemResponse, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, ItemResponse{
				MenuItemID: item.MenuItemID,
				Name:       item.Name,
				Price:      item.Price,
				Quantity:   item.Quantity,
			})
		}

		response[i] = OrderResponse{
			ID:              o.ID.String(),
			TableCode:       o.TableCode,
			Items:           items,
			TotalAmount:     o.TotalAmount,
			Status:          o.Status,
			PaymentMethod:   o.PaymentMethod,
			Note:            o.Note,
			CustomerName:    o.CustomerName,
			UpdatedByName:   o.UpdatedByName,
			ConfirmedByName: o.ConfirmedByName,
			CreatedAt:       o.CreatedAt,
			UpdatedAt:       o.UpdatedAt,
		}
	}
	return response
}

// domainError maps domain errors onto HTTP status codes.
// Validation failures are client mistakes (400), authorization failures 403,
// unknown objects 404, and lost races or occupied tables 409.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotAuthorized):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "internal error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
