// Package http exposes the application's commands and queries as a JSON API
// on echo. Handlers translate request bodies into guarded commands, hand them
// to the application layer, and map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/application/usecases/queries"
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultTopRatedLimit = 10

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerCourierHandler  commands.RegisterCourierCommandHandler
	registerCustomerHandler commands.RegisterCustomerCommandHandler
	registerStoreHandler    commands.RegisterStoreCommandHandler
	loginHandler            commands.LoginCommandHandler
	createDeliveryHandler   commands.CreateDeliveryCommandHandler
	assignCourierHandler    commands.AssignCourierCommandHandler
	updateStatusHandler     commands.UpdateDeliveryStatusCommandHandler
	submitRatingHandler     commands.SubmitRatingCommandHandler
	setAvailabilityHandler  commands.SetCourierAvailabilityCommandHandler
	regenerateBadgeHandler  commands.RegenerateCourierBadgeCommandHandler

	// Query handlers
	pendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler
	deliveryHistoryHandler   queries.GetDeliveryHistoryQueryHandler
	availableCouriersHandler queries.GetAvailableCouriersQueryHandler
	topRatedCouriersHandler  queries.GetTopRatedCouriersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The assign-courier handler must be the same instance used
// everywhere assignments happen, so its per-courier locking covers all paths.
func NewServer(
	registerCourierHandler commands.RegisterCourierCommandHandler,
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	registerStoreHandler commands.RegisterStoreCommandHandler,
	loginHandler commands.LoginCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	submitRatingHandler commands.SubmitRatingCommandHandler,
	setAvailabilityHandler commands.SetCourierAvailabilityCommandHandler,
	regenerateBadgeHandler commands.RegenerateCourierBadgeCommandHandler,
	pendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler,
	deliveryHistoryHandler queries.GetDeliveryHistoryQueryHandler,
	availableCouriersHandler queries.GetAvailableCouriersQueryHandler,
	topRatedCouriersHandler queries.GetTopRatedCouriersQueryHandler,
) *Server {
	return &Server{
		registerCourierHandler:   registerCourierHandler,
		registerCustomerHandler:  registerCustomerHandler,
		registerStoreHandler:     registerStoreHandler,
		loginHandler:             loginHandler,
		createDeliveryHandler:    createDeliveryHandler,
		assignCourierHandler:     assignCourierHandler,
		updateStatusHandler:      updateStatusHandler,
		submitRatingHandler:      submitRatingHandler,
		setAvailabilityHandler:   setAvailabilityHandler,
		regenerateBadgeHandler:   regenerateBadgeHandler,
		pendingDeliveriesHandler: pendingDeliveriesHandler,
		deliveryHistoryHandler:   deliveryHistoryHandler,
		availableCouriersHandler: availableCouriersHandler,
		topRatedCouriersHandler:  topRatedCouriersHandler,
	}
}

// RegisterRoutes binds every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/couriers", s.RegisterCourier)
	api.POST("/customers", s.RegisterCustomer)
	api.POST("/stores", s.RegisterStore)
	api.POST("/login", s.Login)

	api.POST("/deliveries", s.CreateDelivery)
	api.POST("/deliveries/:deliveryId/assign", s.AssignCourier)
	api.PUT("/deliveries/:deliveryId/status", s.UpdateDeliveryStatus)
	api.GET("/deliveries/pending", s.GetPendingDeliveries)
	api.GET("/deliveries/history", s.GetDeliveryHistory)

	api.POST("/couriers/:courierId/ratings", s.SubmitRating)
	api.PUT("/couriers/:courierId/availability", s.SetCourierAvailability)
	api.POST("/couriers/:courierId/badge", s.RegenerateCourierBadge)
	api.GET("/couriers/available", s.GetAvailableCouriers)
	api.GET("/couriers/top", s.GetTopRatedCouriers)
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var req RegisterCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCourierCommand(
		courierID,
		req.Name, req.Email, req.Phone, req.Password, req.Document, req.LicenseID,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.registerCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: courierID.String()})
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req RegisterCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(
		customerID,
		req.Name, req.Email, req.Phone, req.Password,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: customerID.String()})
}

// RegisterStore handles POST /api/v1/stores.
func (s *Server) RegisterStore(ctx echo.Context) error {
	var req RegisterStoreRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	storeID := kernel.NewUUID()
	cmd, err := commands.NewRegisterStoreCommand(
		storeID,
		req.Name, req.Email, req.Phone, req.Password, req.Address,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.registerStoreHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: storeID.String()})
}

// Login handles POST /api/v1/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return domainError(ctx, err)
	}

	token, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	storeID, err := kernel.UUIDFromString(req.StoreID)
	if err != nil {
		return badRequest(ctx, "Invalid store id")
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, storeID, customerID,
		req.Origin, req.Destination, req.ProductDescription,
		req.Fee, req.Tip,
		req.EstimatedMinutes,
		req.Notes,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: deliveryID.String()})
}

// AssignCourier handles POST /api/v1/deliveries/:deliveryId/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewAssignCourierCommand(deliveryID, courierID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PUT /api/v1/deliveries/:deliveryId/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req UpdateDeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, status, req.Note)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitRating handles POST /api/v1/couriers/:courierId/ratings.
func (s *Server) SubmitRating(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	var req SubmitRatingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitRatingCommand(courierID, req.Score)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.submitRatingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetCourierAvailability handles PUT /api/v1/couriers/:courierId/availability.
func (s *Server) SetCourierAvailability(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	var req SetAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	availability, err := courier.AvailabilityFromString(req.Availability)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewSetCourierAvailabilityCommand(courierID, availability)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegenerateCourierBadge handles POST /api/v1/couriers/:courierId/badge.
func (s *Server) RegenerateCourierBadge(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewRegenerateCourierBadgeCommand(courierID)
	if err != nil {
		return domainError(ctx, err)
	}

	badgeID, err := s.regenerateBadgeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BadgeResponse{BadgeID: badgeID.String()})
}

// GetPendingDeliveries handles GET /api/v1/deliveries/pending.
func (s *Server) GetPendingDeliveries(ctx echo.Context) error {
	query := queries.NewGetPendingDeliveriesQuery()

	pending, err := s.pendingDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]PendingDelivery, len(pending))
	for i, d := range pending {
		response[i] = PendingDelivery{
			ID:                 d.ID.String(),
			StoreID:            d.StoreID.String(),
			CustomerID:         d.CustomerID.String(),
			Origin:             d.Origin,
			Destination:        d.Destination,
			ProductDescription: d.ProductDescription,
			Fee:                d.Fee,
			Tip:                d.Tip,
			CreatedAt:          d.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryHistory handles GET /api/v1/deliveries/history. Exactly one of
// the courier_id, store_id, and customer_id query parameters must be set.
func (s *Server) GetDeliveryHistory(ctx echo.Context) error {
	courierID, err := optionalUUIDParam(ctx, "courier_id")
	if err != nil {
		return badRequest(ctx, "Invalid courier_id")
	}
	storeID, err := optionalUUIDParam(ctx, "store_id")
	if err != nil {
		return badRequest(ctx, "Invalid store_id")
	}
	customerID, err := optionalUUIDParam(ctx, "customer_id")
	if err != nil {
		return badRequest(ctx, "Invalid customer_id")
	}

	query, err := queries.NewGetDeliveryHistoryQuery(courierID, storeID, customerID)
	if err != nil {
		return domainError(ctx, err)
	}

	history, err := s.deliveryHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]HistoryEntry, len(history))
	for i, h := range history {
		var entryCourierID *string
		if h.CourierID != nil {
			id := h.CourierID.String()
			entryCourierID = &id
		}

		response[i] = HistoryEntry{
			ID:          h.ID.String(),
			CourierID:   entryCourierID,
			Status:      h.Status,
			Destination: h.Destination,
			Fee:         h.Fee,
			Tip:         h.Tip,
			CreatedAt:   h.CreatedAt,
			CompletedAt: h.CompletedAt,
			CancelledAt: h.CancelledAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableCouriers handles GET /api/v1/couriers/available.
func (s *Server) GetAvailableCouriers(ctx echo.Context) error {
	query := queries.NewGetAvailableCouriersQuery()

	couriers, err := s.availableCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]AvailableCourier, len(couriers))
	for i, c := range couriers {
		response[i] = AvailableCourier{
			ID:                  c.ID.String(),
			Name:                c.Name,
			Rating:              c.Rating,
			CompletedDeliveries: c.CompletedDeliveries,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTopRatedCouriers handles GET /api/v1/couriers/top.
func (s *Server) GetTopRatedCouriers(ctx echo.Context) error {
	limit := defaultTopRatedLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewGetTopRatedCouriersQuery(limit)
	if err != nil {
		return domainError(ctx, err)
	}

	couriers, err := s.topRatedCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]TopRatedCourier, len(couriers))
	for i, c := range couriers {
		response[i] = TopRatedCourier{
			ID:                  c.ID.String(),
			Name:                c.Name,
			Rating:              c.Rating,
			RatingCount:         c.RatingCount,
			CompletedDeliveries: c.CompletedDeliveries,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// optionalUUIDParam parses a UUID query parameter, returning nil when absent.
func optionalUUIDParam(ctx echo.Context, name string) (*kernel.UUID, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil //nolint:nilnil //absent parameter is not an error
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// badRequest answers with a 400 and the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application and domain errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	code := statusCode(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
