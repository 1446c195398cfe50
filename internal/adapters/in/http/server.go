// Package http exposes the application over a JSON API. Handlers translate
// requests into commands and queries; they hold no business logic of their
// own.
//
// The acting back-office user is identified by the X-User-ID header.
// Lifecycle handlers pass it along so the audit trail can attribute changes;
// user management requires it and enforces the admin role.
package http

import (
	"fmt"
	"net/http"
	"strconv"

	"parcels/internal/adapters/out/label"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const actorHeader = "X-User-ID"

// CommandHandlers groups the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateParcel       commands.CreateParcelCommandHandler
	UpdateParcel       commands.UpdateParcelCommandHandler
	UpdateParcelStatus commands.UpdateParcelStatusCommandHandler
	AssignCourier      commands.AssignCourierCommandHandler
	DeleteParcel       commands.DeleteParcelCommandHandler
	CreateCustomer     commands.CreateCustomerCommandHandler
	UpdateCustomer     commands.UpdateCustomerCommandHandler
	DeleteCustomer     commands.DeleteCustomerCommandHandler
	CreateUser         commands.CreateUserCommandHandler
	UpdateUser         commands.UpdateUserCommandHandler
	UpdateUserRole     commands.UpdateUserRoleCommandHandler
	DeleteUser         commands.DeleteUserCommandHandler
}

// QueryHandlers groups the read-side handlers.
type QueryHandlers struct {
	GetParcels          queries.GetParcelsQueryHandler
	GetParcel           queries.GetParcelQueryHandler
	TrackParcel         queries.TrackParcelQueryHandler
	GetCustomers        queries.GetCustomersQueryHandler
	GetCustomer         queries.GetCustomerQueryHandler
	GetUsers            queries.GetUsersQueryHandler
	GetCouriers         queries.GetCouriersQueryHandler
	CountPendingParcels queries.CountPendingParcelsQueryHandler
}

// Server wires HTTP routes to the application layer.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	labels   label.Generator
}

// NewServer creates the HTTP server facade.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, labels label.Generator) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		labels:   labels,
	}
}

// RegisterRoutes attaches every route to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/track/:tracking_number", s.TrackParcel)

	api := e.Group("/api/v1")

	api.GET("/parcels", s.GetParcels)
	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels/:id", s.GetParcel)
	api.PUT("/parcels/:id", s.UpdateParcel)
	api.DELETE("/parcels/:id", s.DeleteParcel)
	api.PUT("/parcels/:id/status", s.UpdateParcelStatus)
	api.PUT("/parcels/:id/courier", s.AssignCourier)
	api.GET("/parcels/:id/label", s.GetParcelLabel)

	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.GET("/users", s.GetUsers)
	api.POST("/users", s.CreateUser)
	api.PUT("/users/:id", s.UpdateUser)
	api.PUT("/users/:id/role", s.UpdateUserRole)
	api.DELETE("/users/:id", s.DeleteUser)

	api.GET("/couriers", s.GetCouriers)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetParcels handles GET /api/v1/parcels?page=N.
func (s *Server) GetParcels(ctx echo.Context) error {
	page, err := pageParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid page parameter")
	}

	query, err := queries.NewGetParcelsQuery(page)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ParcelListResponse{
		Parcels: parcelSummariesFromQuery(result.Parcels),
		Total:   result.Total,
		Page:    result.Page,
	})
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req ParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	details, err := parcel.NewDetails(
		req.SenderName, req.SenderAddress,
		req.RecipientName, req.RecipientAddress, req.RecipientPhone,
		req.Weight, req.Dimensions, req.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	status := parcel.UnknownStatus
	if req.Status != nil {
		if status, err = parcel.ParseStatus(*req.Status); err != nil {
			return respondError(ctx, err)
		}
	}

	courierID, err := optionalUUID(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier_id")
	}
	customerID, err := optionalUUID(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer_id")
	}

	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), details, status, courierID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.commands.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedParcelResponse{
		ID:             created.ID().String(),
		TrackingNumber: created.TrackingNumber().String(),
		Status:         created.Status().String(),
	})
}

// GetParcel handles GET /api/v1/parcels/:id.
func (s *Server) GetParcel(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelDetailFromQuery(result))
}

// UpdateParcel handles PUT /api/v1/parcels/:id. The body carries the full
// replacement state including status; a status change is recorded in the
// audit trail.
func (s *Server) UpdateParcel(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var req ParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if req.Status == nil {
		return badRequest(ctx, "status is required")
	}

	details, err := parcel.NewDetails(
		req.SenderName, req.SenderAddress,
		req.RecipientName, req.RecipientAddress, req.RecipientPhone,
		req.Weight, req.Dimensions, req.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := parcel.ParseStatus(*req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	courierID, err := optionalUUID(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier_id")
	}
	customerID, err := optionalUUID(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer_id")
	}

	actor, err := actorFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, "invalid "+actorHeader+" header")
	}

	cmd, err := commands.NewUpdateParcelCommand(
		parcelID, details, status, courierID, customerID, actor, req.HistoryNote,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateParcelStatus handles PUT /api/v1/parcels/:id/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var req StatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := parcel.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	actor, err := actorFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, "invalid "+actorHeader+" header")
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, status, actor, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	changed, err := s.commands.UpdateParcelStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ChangedResponse{Changed: changed})
}

// AssignCourier handles PUT /api/v1/parcels/:id/courier.
func (s *Server) AssignCourier(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var req CourierAssignmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := optionalUUID(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier_id")
	}

	actor, err := actorFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, "invalid "+actorHeader+" header")
	}

	cmd, err := commands.NewAssignCourierCommand(parcelID, courierID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	changed, err := s.commands.AssignCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ChangedResponse{Changed: changed})
}

// DeleteParcel handles DELETE /api/v1/parcels/:id.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetParcelLabel handles GET /api/v1/parcels/:id/label. The response is the
// printable PDF, offered as a download.
func (s *Server) GetParcelLabel(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.queries.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	pdf, err := s.labels.Generate(label.Data{
		TrackingNumber:   detail.TrackingNumber,
		SenderName:       detail.SenderName,
		SenderAddress:    detail.SenderAddress,
		RecipientName:    detail.RecipientName,
		RecipientAddress: detail.RecipientAddress,
		Weight:           detail.Weight,
		Dimensions:       detail.Dimensions,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", detail.TrackingNumber+".pdf"))
	return ctx.Blob(http.StatusOK, "application/pdf", pdf)
}

// TrackParcel handles GET /track/:tracking_number, the public lookup.
func (s *Server) TrackParcel(ctx echo.Context) error {
	query, err := queries.NewTrackParcelQuery(ctx.Param("tracking_number"))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.TrackParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		TrackingNumber: result.TrackingNumber,
		Status:         result.Status,
		Weight:         result.Weight,
		Dimensions:     result.Dimensions,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	})
}

// GetCustomers handles GET /api/v1/customers?page=N.
func (s *Server) GetCustomers(ctx echo.Context) error {
	page, err := pageParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid page parameter")
	}

	query, err := queries.NewGetCustomersQuery(page)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	customers := make([]CustomerSummary, len(result.Customers))
	for i, c := range result.Customers {
		customers[i] = CustomerSummary{
			ID:          c.ID.String(),
			Name:        c.Name,
			Address:     c.Address,
			Phone:       c.Phone,
			ParcelCount: c.ParcelCount,
			CreatedAt:   c.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, CustomerListResponse{
		Customers: customers,
		Total:     result.Total,
		Page:      result.Page,
	})
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, req.Name, req.Address, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": customerID.String()})
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CustomerDetailResponse{
		ID:        result.ID.String(),
		Name:      result.Name,
		Address:   result.Address,
		Phone:     result.Phone,
		Parcels:   parcelSummariesFromQuery(result.Parcels),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	})
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	var req CustomerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, req.Name, req.Address, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUsers handles GET /api/v1/users. Like every user-management operation it
// is admin-only; the fetched list already carries the actor's role, so the
// gate reuses it instead of a second query.
func (s *Server) GetUsers(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return badRequest(ctx, actorHeader+" header is required")
	}

	result, err := s.queries.GetUsers.Handle(ctx.Request().Context(), queries.NewGetUsersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	isAdmin := false
	for _, u := range result {
		if u.ID.IsEqual(actor) && u.Role == user.Admin.String() {
			isAdmin = true
			break
		}
	}
	if !isAdmin {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "admin role required",
		})
	}

	return ctx.JSON(http.StatusOK, usersFromQuery(result))
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return badRequest(ctx, actorHeader+" header is required")
	}

	var req CreateUserRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(actor, userID, req.Name, req.Email, req.Password, role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": userID.String()})
}

// UpdateUser handles PUT /api/v1/users/:id.
func (s *Server) UpdateUser(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return badRequest(ctx, actorHeader+" header is required")
	}

	userID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	var req UpdateUserRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateUserCommand(actor, userID, req.Name, req.Email, role, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateUserRole handles PUT /api/v1/users/:id/role.
func (s *Server) UpdateUserRole(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return badRequest(ctx, actorHeader+" header is required")
	}

	userID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	var req RoleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateUserRoleCommand(actor, userID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateUserRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return badRequest(ctx, actorHeader+" header is required")
	}

	userID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewDeleteUserCommand(actor, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	result, err := s.queries.GetCouriers.Handle(ctx.Request().Context(), queries.NewGetCouriersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, usersFromQuery(result))
}

func parcelDetailFromQuery(detail queries.GetParcelQueryResponse) ParcelDetailResponse {
	resp := ParcelDetailResponse{
		ID:               detail.ID.String(),
		TrackingNumber:   detail.TrackingNumber,
		SenderName:       detail.SenderName,
		SenderAddress:    detail.SenderAddress,
		RecipientName:    detail.RecipientName,
		RecipientAddress: detail.RecipientAddress,
		RecipientPhone:   detail.RecipientPhone,
		Status:           detail.Status,
		Weight:           detail.Weight,
		Dimensions:       detail.Dimensions,
		Notes:            detail.Notes,
		History:          make([]HistoryEntry, len(detail.History)),
		CreatedAt:        detail.CreatedAt,
		UpdatedAt:        detail.UpdatedAt,
	}

	if detail.Courier != nil {
		resp.Courier = &EntityRef{ID: detail.Courier.ID.String(), Name: detail.Courier.Name}
	}
	if detail.Customer != nil {
		resp.Customer = &EntityRef{ID: detail.Customer.ID.String(), Name: detail.Customer.Name}
	}

	for i, entry := range detail.History {
		resp.History[i] = HistoryEntry{
			ID:        entry.ID.String(),
			OldStatus: entry.OldStatus,
			NewStatus: entry.NewStatus,
			UserName:  entry.UserName,
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		}
	}

	return resp
}

func pageParam(ctx echo.Context) (int, error) {
	raw := ctx.QueryParam("page")
	if raw == "" {
		return 1, nil
	}
	return strconv.Atoi(raw)
}

// optionalUUID parses an optional request field into a kernel UUID.
// A nil input stays nil.
func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	parsed, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(parsed[:])
}

// actorFromHeader reads the optional X-User-ID header. Absence is fine for
// lifecycle operations; the audit entry then carries no user.
func actorFromHeader(ctx echo.Context) (*kernel.UUID, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return nil, nil
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(parsed[:])
	if err != nil {
		return nil, err
	}
	return &actorID, nil
}

// requireActor reads the X-User-ID header and fails when it is missing.
func requireActor(ctx echo.Context) (kernel.UUID, error) {
	actor, err := actorFromHeader(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}
	if actor == nil {
		return kernel.UUID{}, echo.ErrBadRequest
	}
	return *actor, nil
}
