// Package http exposes the trip order use cases over an echo HTTP API.
// It coordinates between HTTP handlers and application use cases: parsing and
// authentication happen here, every business decision happens in the handlers
// it wraps.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"tripmanager/internal/core/application/usecases/commands"
	"tripmanager/internal/core/application/usecases/queries"
	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// Server handles HTTP requests for the trip order API.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderDetailsHandler commands.UpdateOrderDetailsCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	listOrdersHandler       queries.ListOrdersQueryHandler
	loginHandler            queries.LoginQueryHandler
	authedUserHandler       queries.AuthedUserQueryHandler
	listDestinationsHandler queries.ListDestinationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderDetailsHandler commands.UpdateOrderDetailsCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	loginHandler queries.LoginQueryHandler,
	authedUserHandler queries.AuthedUserQueryHandler,
	listDestinationsHandler queries.ListDestinationsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderDetailsHandler: updateOrderDetailsHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		getOrderHandler:           getOrderHandler,
		listOrdersHandler:         listOrdersHandler,
		loginHandler:              loginHandler,
		authedUserHandler:         authedUserHandler,
		listDestinationsHandler:   listDestinationsHandler,
	}
}

// RegisterRoutes wires the API endpoints onto the echo instance.
// Login and the destination catalog are public; everything else sits behind
// bearer token authentication.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/login", s.Login)
	api.GET("/destinations", s.ListDestinations)

	authed := api.Group("", s.requireAuth)
	authed.GET("/auth/user", s.AuthedUser)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.ListOrders)
	authed.GET("/orders/:id", s.GetOrder)
	authed.PUT("/orders/:id", s.UpdateOrderDetails)
	authed.PATCH("/orders/:id", s.UpdateOrderStatus)
}

type errorBody struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type userBody struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type destinationBody struct {
	ID       string `json:"id"`
	City     string `json:"city"`
	IataCode string `json:"iata_code"`
	Country  string `json:"country"`
}

type orderBody struct {
	ID            string          `json:"id"`
	Owner         userBody        `json:"owner"`
	Destination   destinationBody `json:"destination"`
	DepartureDate string          `json:"departure_date"`
	ReturnDate    string          `json:"return_date"`
	ApprovedAt    *string         `json:"approved_at"`
	Status        string          `json:"status"`
}

type createOrderRequest struct {
	DestinationID string `json:"destination_id"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

const currentUserKey = "currentUser"

// requireAuth resolves the bearer token to a user and stores the result in
// the request context. Requests without a verifiable token get 401.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return ctx.JSON(http.StatusUnauthorized, errorBody{Message: "missing bearer token"})
		}

		query, err := queries.NewAuthedUserQuery(token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorBody{Message: "invalid token"})
		}

		current, err := s.authedUserHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorBody{Message: "invalid token"})
		}

		ctx.Set(currentUserKey, current)
		return next(ctx)
	}
}

func currentUser(ctx echo.Context) (queries.UserResponse, kernel.UUID, error) {
	current, ok := ctx.Get(currentUserKey).(queries.UserResponse)
	if !ok {
		return queries.UserResponse{}, kernel.UUID{}, errors.New("no authenticated user in context")
	}

	id, err := kernel.UUIDFromString(current.ID)
	if err != nil {
		return queries.UserResponse{}, kernel.UUID{}, err
	}

	return current, id, nil
}

// Login handles POST /api/login - exchanges credentials for a token.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "invalid request body"})
	}

	query, err := queries.NewLoginQuery(req.Email, req.Password)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: err.Error()})
	}

	resp, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, queries.ErrInvalidCredentials) {
		return ctx.JSON(http.StatusUnauthorized, errorBody{Message: "invalid credentials"})
	}
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, loginResponse{Token: resp.Token})
}

// AuthedUser handles GET /api/auth/user - returns the authenticated user.
func (s *Server) AuthedUser(ctx echo.Context) error {
	current, _, err := currentUser(ctx)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, userBody(current))
}

// ListDestinations handles GET /api/destinations - returns the catalog.
func (s *Server) ListDestinations(ctx echo.Context) error {
	destinations, err := s.listDestinationsHandler.Handle(ctx.Request().Context(), queries.NewListDestinationsQuery())
	if err != nil {
		return internalError(ctx)
	}

	response := make([]destinationBody, len(destinations))
	for i, d := range destinations {
		response[i] = destinationBody(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders - raises a new trip order for the
// authenticated user.
func (s *Server) CreateOrder(ctx echo.Context) error {
	_, userID, err := currentUser(ctx)
	if err != nil {
		return internalError(ctx)
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "invalid request body"})
	}

	destinationID, err := kernel.UUIDFromString(req.DestinationID)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: "invalid destination_id"})
	}

	departure, returnDate, err := parseDates(req.DepartureDate, req.ReturnDate)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: err.Error()})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, userID, destinationID, departure, returnDate)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: err.Error()})
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

// ListOrders handles GET /api/orders - lists the orders visible to the
// authenticated user, optionally filtered by status, period and destination.
func (s *Server) ListOrders(ctx echo.Context) error {
	_, userID, err := currentUser(ctx)
	if err != nil {
		return internalError(ctx)
	}

	filter, err := parseFilter(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: err.Error()})
	}

	query, err := queries.NewListOrdersQuery(userID, filter)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: err.Error()})
	}

	found, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapQueryError(ctx, err)
	}

	response := make([]orderBody, len(found))
	for i, o := range found {
		response[i] = toOrderBody(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id - returns one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	_, userID, err := currentUser(ctx)
	if err != nil {
		return internalError(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorBody{Message: "order not found"})
	}

	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: err.Error()})
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapQueryError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderBody(found))
}

// UpdateOrderDetails handles PUT /api/orders/:id - rewrites destination and
// dates of an order owned by the authenticated user.
func (s *Server) UpdateOrderDetails(ctx echo.Context) error {
	_, userID, err := currentUser(ctx)
	if err != nil {
		return internalError(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorBody{Message: "order not found"})
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "invalid request body"})
	}

	destinationID, err := kernel.UUIDFromString(req.DestinationID)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: "invalid destination_id"})
	}

	departure, returnDate, err := parseDates(req.DepartureDate, req.ReturnDate)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: err.Error()})
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(orderID, userID, destinationID, departure, returnDate)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: err.Error()})
	}

	if err = s.updateOrderDetailsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PATCH /api/orders/:id - approves or cancels an
// order on behalf of the authenticated manager.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	_, userID, err := currentUser(ctx)
	if err != nil {
		return internalError(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorBody{Message: "order not found"})
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{Message: "invalid request body"})
	}

	targetStatus, err := order.StatusFromString(strings.ToUpper(req.Status))
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: "invalid status"})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, userID, targetStatus)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: err.Error()})
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toOrderBody(o queries.OrderResponse) orderBody {
	var approvedAt *string
	if o.ApprovedAt != nil {
		formatted := o.ApprovedAt.Format(time.RFC3339)
		approvedAt = &formatted
	}

	return orderBody{
		ID:            o.ID,
		Owner:         userBody(o.Owner),
		Destination:   destinationBody(o.Destination),
		DepartureDate: o.DepartureDate.Format(dateLayout),
		ReturnDate:    o.ReturnDate.Format(dateLayout),
		ApprovedAt:    approvedAt,
		Status:        o.Status,
	}
}

func parseDates(departure, returnDate string) (time.Time, time.Time, error) {
	dep, err := time.Parse(dateLayout, departure)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid departure_date")
	}

	ret, err := time.Parse(dateLayout, returnDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid return_date")
	}

	return dep, ret, nil
}

func parseFilter(ctx echo.Context) (order.Filter, error) {
	var filter order.Filter

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(strings.ToUpper(raw))
		if err != nil {
			return order.Filter{}, errors.New("invalid status")
		}
		filter.Status = &status
	}

	if raw := ctx.QueryParam("start_date"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			return order.Filter{}, errors.New("invalid start_date")
		}
		filter.StartDate = &start
	}

	if raw := ctx.QueryParam("end_date"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			return order.Filter{}, errors.New("invalid end_date")
		}
		filter.EndDate = &end
	}

	if raw := ctx.QueryParam("destination_id"); raw != "" {
		destinationID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return order.Filter{}, errors.New("invalid destination_id")
		}
		filter.DestinationID = &destinationID
	}

	return filter, nil
}

// mapCommandError translates command handler failures to HTTP responses.
// Approval rejections deliberately answer 204: a failed approval is treated
// as a no-op rather than an error.
func mapCommandError(ctx echo.Context, err error) error {
	var approveErr *order.ApproveError
	if errors.As(err, &approveErr) {
		return ctx.NoContent(http.StatusNoContent)
	}

	var cancelErr *order.CancelError
	if errors.As(err, &cancelErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: cancelErr.Reason})
	}

	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody{Message: "order not found"})
	case errors.Is(err, commands.ErrUserNotAuthorized):
		return ctx.JSON(http.StatusForbidden, errorBody{Message: "forbidden"})
	case errors.Is(err, commands.ErrUserNotFound):
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: "user not found"})
	case errors.Is(err, commands.ErrDestinationNotFound):
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: "destination not found"})
	case errors.Is(err, order.ErrInvalidDates):
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: "invalid_date"})
	default:
		return internalError(ctx)
	}
}

// mapQueryError translates query handler failures to HTTP responses.
func mapQueryError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, queries.ErrOrderNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody{Message: "order not found"})
	case errors.Is(err, queries.ErrUserNotAuthorized):
		return ctx.JSON(http.StatusForbidden, errorBody{Message: "forbidden"})
	case errors.Is(err, queries.ErrUserNotFound):
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{Message: "user not found"})
	default:
		return internalError(ctx)
	}
}

func internalError(ctx echo.Context) error {
	return ctx.JSON(http.StatusInternalServerError, errorBody{Message: "internal server error"})
}
