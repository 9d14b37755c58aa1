// Package http exposes the management API for delivery records: manual
// record creation, listing, assignment triggering, completion and deletion.
// Event intake normally happens through the messaging adapter; the POST
// endpoint exists for operators and for environments without a broker.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	ingestHandler        commands.IngestDeliveryCommandHandler
	assignHandler        *commands.AssignDriverCommandHandler
	updateHandler        *commands.UpdateDeliveryCommandHandler
	markDeliveredHandler *commands.MarkDeliveredCommandHandler
	deleteHandler        *commands.DeleteDeliveryCommandHandler

	// Query handlers
	getAllHandler        queries.GetAllDeliveriesQueryHandler
	getByOrderIDHandler  queries.GetDeliveryByOrderIDQueryHandler
	getUnassignedHandler queries.GetUnassignedDeliveriesQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	ingestHandler commands.IngestDeliveryCommandHandler,
	assignHandler *commands.AssignDriverCommandHandler,
	updateHandler *commands.UpdateDeliveryCommandHandler,
	markDeliveredHandler *commands.MarkDeliveredCommandHandler,
	deleteHandler *commands.DeleteDeliveryCommandHandler,
	getAllHandler queries.GetAllDeliveriesQueryHandler,
	getByOrderIDHandler queries.GetDeliveryByOrderIDQueryHandler,
	getUnassignedHandler queries.GetUnassignedDeliveriesQueryHandler,
) *Server {
	return &Server{
		ingestHandler:        ingestHandler,
		assignHandler:        assignHandler,
		updateHandler:        updateHandler,
		markDeliveredHandler: markDeliveredHandler,
		deleteHandler:        deleteHandler,
		getAllHandler:        getAllHandler,
		getByOrderIDHandler:  getByOrderIDHandler,
		getUnassignedHandler: getUnassignedHandler,
	}
}

// RegisterRoutes mounts the management API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1/deliveries")
	api.POST("", s.CreateDelivery)
	api.GET("", s.GetDeliveries)
	api.GET("/unassigned", s.GetUnassignedDeliveries)
	api.GET("/:orderId", s.GetDelivery)
	api.PUT("/:orderId", s.UpdateDelivery)
	api.POST("/:orderId/assign", s.AssignDelivery)
	api.PUT("/:orderId/delivered", s.MarkDelivered)
	api.DELETE("/:orderId", s.DeleteDelivery)
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := kernel.NewAddress(req.Street, req.City, req.State, req.PostalCode)
	if err != nil {
		return badRequest(ctx, "Invalid delivery address: "+err.Error())
	}

	items := make([]commands.OrderLine, 0, len(req.OrderItems))
	for _, line := range req.OrderItems {
		items = append(items, commands.OrderLine{Name: line.Name, Quantity: line.Quantity})
	}

	cmd, err := commands.NewIngestDeliveryCommand(
		req.OrderID, req.UserID, req.UserName, req.UserPhone, req.RestaurantID,
		address, items, req.Price,
	)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err := s.ingestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, ports.ErrDuplicateOrder) {
			return conflict(ctx, "Delivery record already exists")
		}
		return internalError(ctx, "Failed to create delivery record")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetDeliveries handles GET /api/v1/deliveries.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	query := queries.NewGetAllDeliveriesQuery()

	deliveries, err := s.getAllHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve deliveries")
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponses(deliveries))
}

// GetUnassignedDeliveries handles GET /api/v1/deliveries/unassigned.
func (s *Server) GetUnassignedDeliveries(ctx echo.Context) error {
	query := queries.NewGetUnassignedDeliveriesQuery()

	deliveries, err := s.getUnassignedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve unassigned deliveries")
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponses(deliveries))
}

// GetDelivery handles GET /api/v1/deliveries/:orderId.
func (s *Server) GetDelivery(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryByOrderIDQuery(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	record, err := s.getByOrderIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Delivery record not found")
		}
		return internalError(ctx, "Failed to retrieve delivery record")
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(record))
}

// UpdateDelivery handles PUT /api/v1/deliveries/:orderId.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	var req UpdateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewUpdateDeliveryCommand(commands.UpdateDeliveryParams{
		OrderID:         ctx.Param("orderId"),
		UserID:          req.UserID,
		UserName:        req.UserName,
		UserPhone:       req.UserPhone,
		RestaurantID:    req.RestaurantID,
		DeliveryAddress: req.DeliveryAddress,
		OrderItems:      req.OrderItems,
		Price:           req.Price,
		OrderDate:       req.OrderDate,
		OrderTime:       req.OrderTime,
		Status:          status,
		DriverID:        req.DriverID,
		DriverName:      req.DriverName,
		DriverPhone:     req.DriverPhone,
		DriverRemark:    req.DriverRemark,
		UserRemark:      req.UserRemark,
	})
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err := s.updateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Delivery record not found")
		case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
			return badRequest(ctx, "Invalid delivery data: "+err.Error())
		default:
			return internalError(ctx, "Failed to update delivery record")
		}
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignDelivery handles POST /api/v1/deliveries/:orderId/assign.
// Triggers one assignment attempt outside the sweep schedule.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	cmd, err := commands.NewAssignDriverCommand(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	if err := s.assignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Delivery record not found")
		case errors.Is(err, ports.ErrAlreadyAssigned):
			return conflict(ctx, "Delivery is already assigned")
		case errors.Is(err, services.ErrNoDriverAvailable):
			return conflict(ctx, "No driver available for this city")
		case errors.Is(err, services.ErrAllDriversAtCapacity):
			return conflict(ctx, "All drivers are at capacity")
		default:
			return internalError(ctx, "Assignment attempt failed")
		}
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkDelivered handles PUT /api/v1/deliveries/:orderId/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	var req MarkDeliveredRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkDeliveredCommand(ctx.Param("orderId"), req.DriverRemark, req.UserRemark)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Delivery record not found")
		case errors.Is(err, errs.ErrValueIsInvalid):
			return conflict(ctx, "Delivery cannot be completed: "+err.Error())
		default:
			return internalError(ctx, "Failed to complete delivery record")
		}
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteDelivery handles DELETE /api/v1/deliveries/:orderId.
func (s *Server) DeleteDelivery(ctx echo.Context) error {
	cmd, err := commands.NewDeleteDeliveryCommand(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	if err := s.deleteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Delivery record not found")
		}
		return internalError(ctx, "Failed to delete delivery record")
	}

	return ctx.NoContent(http.StatusOK)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
