// Package http exposes the role-scoped REST surface of the service.
// Routes are grouped by role (admin, waiter, cook, cashier, customer); the
// handlers translate between HTTP payloads and application commands/queries
// and map domain errors onto status codes.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createMenuItemHandler    commands.CreateMenuItemCommandHandler
	updateMenuItemHandler    commands.UpdateMenuItemCommandHandler
	deleteMenuItemHandler    commands.DeleteMenuItemCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	payOrderHandler          commands.PayOrderCommandHandler

	// Query handlers
	getMenuHandler          queries.GetMenuQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getCashierOrdersHandler queries.GetCashierOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createMenuItemHandler commands.CreateMenuItemCommandHandler,
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler,
	deleteMenuItemHandler commands.DeleteMenuItemCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getCashierOrdersHandler queries.GetCashierOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createMenuItemHandler:    createMenuItemHandler,
		updateMenuItemHandler:    updateMenuItemHandler,
		deleteMenuItemHandler:    deleteMenuItemHandler,
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		payOrderHandler:          payOrderHandler,
		getMenuHandler:           getMenuHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getCashierOrdersHandler:  getCashierOrdersHandler,
		getOrderHandler:          getOrderHandler,
	}
}

// RegisterRoutes attaches every role-scoped route to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/admin/menu", s.GetAdminMenu)
	e.POST("/admin/menu", s.CreateMenuItem)
	e.PUT("/admin/menu/:id", s.UpdateMenuItem)
	e.DELETE("/admin/menu/:id", s.DeleteMenuItem)

	e.GET("/waiter/menu", s.GetWaiterMenu)
	e.POST("/waiter/orders", s.CreateOrder)

	e.GET("/cook/orders", s.GetCookOrders)
	e.PATCH("/cook/orders/:id", s.UpdateOrderStatus)

	e.GET("/cashier/orders", s.GetCashierOrders)
	e.GET("/cashier/orders/:id", s.GetCashierOrder)
	e.PATCH("/cashier/orders/:id", s.PayOrder)

	e.GET("/customer/menu", s.GetCustomerMenu)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// menuItemRequest carries catalog item fields for create and update.
// Pointers distinguish absent fields from zero values so updates can be
// partial. The image reference is an opaque URI obtained from the file store.
type menuItemRequest struct {
	Name     *string  `json:"name" form:"name"`
	Price    *float64 `json:"price" form:"price"`
	ImageURL *string  `json:"image_url" form:"image_url"`
}

type orderItemRequest struct {
	MenuID   string `json:"menu_id"`
	Quantity *int   `json:"quantity"`
}

type createOrderRequest struct {
	SeatNumber string             `json:"seat_number"`
	Items      []orderItemRequest `json:"items"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type cashierActionRequest struct {
	Action string `json:"action"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (s *Server) listMenu(ctx echo.Context) error {
	menus, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return storeFailure(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"menus": menus})
}

// GetAdminMenu handles GET /admin/menu - lists the catalog for the admin view.
func (s *Server) GetAdminMenu(ctx echo.Context) error {
	return s.listMenu(ctx)
}

// GetWaiterMenu handles GET /waiter/menu - lists the catalog for the waiter view.
func (s *Server) GetWaiterMenu(ctx echo.Context) error {
	return s.listMenu(ctx)
}

// GetCustomerMenu handles GET /customer/menu - lists the catalog for the customer view.
func (s *Server) GetCustomerMenu(ctx echo.Context) error {
	return s.listMenu(ctx)
}

// CreateMenuItem handles POST /admin/menu - adds a catalog item.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req menuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Price must be a number")
	}

	if req.Name == nil || req.Price == nil {
		return badRequest(ctx, "Missing required fields: name and price")
	}

	imageURL := ""
	if req.ImageURL != nil {
		imageURL = *req.ImageURL
	}

	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), *req.Name, *req.Price, imageURL)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	item, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeMenuError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message": "Admin added new menu item",
		"menu":    item,
	})
}

// UpdateMenuItem handles PUT /admin/menu/:id - partially updates a catalog item.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Menu item not found"})
	}

	var req menuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Price must be a number")
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, req.Name, req.Price, req.ImageURL)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	item, err := s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeMenuError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Admin - Menu item %s updated", id),
		"menu":    item,
	})
}

// DeleteMenuItem handles DELETE /admin/menu/:id - removes a catalog item that
// no order references.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Menu item not found"})
	}

	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeMenuError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Admin - Menu item %s deleted", id),
	})
}

// CreateOrder handles POST /waiter/orders - opens an order, optionally tied to
// a seat.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "items is required and must be a list of {menu_id, quantity}")
	}

	if len(req.Items) == 0 {
		return badRequest(ctx, "items is required and must be a list of {menu_id, quantity}")
	}

	items := make([]commands.OrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		if item.MenuID == "" {
			return badRequest(ctx, "Each item requires menu_id")
		}

		menuItemID, err := kernel.UUIDFromString(item.MenuID)
		if err != nil {
			return ctx.JSON(http.StatusNotFound, errorResponse{
				Error: fmt.Sprintf("Menu id %s not found", item.MenuID),
			})
		}

		// Unspecified quantity defaults to a single unit.
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}

		items = append(items, commands.OrderItemRequest{MenuItemID: menuItemID, Quantity: quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.SeatNumber, items)
	if err != nil {
		if errors.Is(err, commands.ErrQuantityIsInvalid) {
			return badRequest(ctx, "quantity must be > 0")
		}
		return badRequest(ctx, err.Error())
	}

	orderResp, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, errorResponse{
				Error: fmt.Sprintf("Menu id %v not found", notFound.ID),
			})
		}
		return s.writeOrderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message": "Order created",
		"order":   orderResp,
	})
}

// GetCookOrders handles GET /cook/orders - lists every unsettled order.
func (s *Server) GetCookOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return storeFailure(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"orders": orders})
}

// UpdateOrderStatus handles PATCH /cook/orders/:id - moves an order to a new
// kitchen status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "status is required")
	}

	if req.Status == "" {
		return badRequest(ctx, "status is required")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil || status == order.Paid {
		return badRequest(ctx, "status must be one of Pending, Preparing, Ready, Cancelled")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderResp, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeOrderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("order %s status updated", id),
		"order":   orderResp,
	})
}

// GetCashierOrders handles GET /cashier/orders - lists register orders with
// optional seat_number and status filters.
func (s *Server) GetCashierOrders(ctx echo.Context) error {
	var seatNumber *string
	if seat := ctx.QueryParam("seat_number"); seat != "" {
		seatNumber = &seat
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		statusFilter = &status
	}

	query, err := queries.NewGetCashierOrdersQuery(seatNumber, statusFilter)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getCashierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return storeFailure(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"orders": orders})
}

// GetCashierOrder handles GET /cashier/orders/:id - single order detail.
func (s *Server) GetCashierOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderResp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeOrderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"order": orderResp})
}

// PayOrder handles PATCH /cashier/orders/:id - settles a Ready order.
func (s *Server) PayOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
	}

	var req cashierActionRequest
	if err = ctx.Bind(&req); err != nil || req.Action != "pay" {
		return badRequest(ctx, "action must be 'pay'")
	}

	cmd, err := commands.NewPayOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderResp, err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeOrderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":    fmt.Sprintf("Order %s paid successfully", id),
		"order":      orderResp,
		"total_paid": orderResp.TotalAmount,
	})
}

func (s *Server) writeMenuError(ctx echo.Context, err error) error {
	return writeDomainError(ctx, err, "Menu item not found")
}

func (s *Server) writeOrderError(ctx echo.Context, err error) error {
	return writeDomainError(ctx, err, "Order not found")
}

// writeDomainError maps a use case error onto the HTTP taxonomy: 404 for
// missing entities, 409 for state conflicts, 400 for rejected values and 500
// for store failures.
func writeDomainError(ctx echo.Context, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: notFoundMsg})
	case errors.Is(err, errs.ErrObjectInUse):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Error: "Cannot delete menu item referenced by existing orders",
		})
	case errors.Is(err, errs.ErrStateIsInvalid):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: conflictMessage(err)})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return storeFailure(ctx, err)
	}
}

func conflictMessage(err error) string {
	var state *errs.StateIsInvalidError
	if errors.As(err, &state) {
		return state.ParamName
	}
	return err.Error()
}

func badRequest(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func storeFailure(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Error:   "Database error",
		Details: err.Error(),
	})
}
