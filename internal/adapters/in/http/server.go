// Package http exposes the application's use cases over an echo HTTP API.
//
// Customers create and track orders, partners work the claimable feed and
// their wallet, and administrators manage partners, refunds and the coin
// table. All routes except order creation require a session token.
package http

import (
	"errors"
	"net/http"

	"buyback/internal/core/application/usecases/commands"
	"buyback/internal/core/application/usecases/queries"
	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/order"
	"buyback/internal/core/domain/model/partner"
	"buyback/internal/core/domain/model/refund"
	"buyback/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	acceptOrderHandler       commands.AcceptOrderCommandHandler
	assignPartnerHandler     commands.AssignPartnerCommandHandler
	assignAgentHandler       commands.AssignAgentCommandHandler
	deassignAgentHandler     commands.DeassignAgentCommandHandler
	deassignPartnerHandler   commands.DeassignPartnerCommandHandler
	requoteOrderHandler      commands.RequoteOrderCommandHandler
	rescheduleOrderHandler   commands.RescheduleOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	completeOrderHandler     commands.CompleteOrderCommandHandler
	createPartnerHandler     commands.CreatePartnerCommandHandler
	addPickupAgentHandler    commands.AddPickupAgentCommandHandler
	removePickupAgentHandler commands.RemovePickupAgentCommandHandler
	topUpWalletHandler       commands.TopUpWalletCommandHandler
	adjustWalletHandler      commands.AdjustWalletCommandHandler
	settleRefundHandler      commands.SettleRefundCommandHandler
	addCoinRangeHandler      commands.AddCoinRangeCommandHandler
	registerSessionHandler   commands.RegisterSessionCommandHandler
	setPartnerStatusHandler  commands.SetPartnerStatusCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getClaimableOrdersHandler  queries.GetClaimableOrdersQueryHandler
	getPartnerOrdersHandler    queries.GetPartnerOrdersQueryHandler
	getWalletStatementHandler  queries.GetWalletStatementQueryHandler
	getRefundsHandler          queries.GetRefundsQueryHandler
	auditWalletsHandler        queries.AuditWalletsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	assignPartnerHandler commands.AssignPartnerCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	deassignAgentHandler commands.DeassignAgentCommandHandler,
	deassignPartnerHandler commands.DeassignPartnerCommandHandler,
	requoteOrderHandler commands.RequoteOrderCommandHandler,
	rescheduleOrderHandler commands.RescheduleOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	createPartnerHandler commands.CreatePartnerCommandHandler,
	addPickupAgentHandler commands.AddPickupAgentCommandHandler,
	removePickupAgentHandler commands.RemovePickupAgentCommandHandler,
	topUpWalletHandler commands.TopUpWalletCommandHandler,
	adjustWalletHandler commands.AdjustWalletCommandHandler,
	settleRefundHandler commands.SettleRefundCommandHandler,
	addCoinRangeHandler commands.AddCoinRangeCommandHandler,
	registerSessionHandler commands.RegisterSessionCommandHandler,
	setPartnerStatusHandler commands.SetPartnerStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getClaimableOrdersHandler queries.GetClaimableOrdersQueryHandler,
	getPartnerOrdersHandler queries.GetPartnerOrdersQueryHandler,
	getWalletStatementHandler queries.GetWalletStatementQueryHandler,
	getRefundsHandler queries.GetRefundsQueryHandler,
	auditWalletsHandler queries.AuditWalletsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		acceptOrderHandler:        acceptOrderHandler,
		assignPartnerHandler:      assignPartnerHandler,
		assignAgentHandler:        assignAgentHandler,
		deassignAgentHandler:      deassignAgentHandler,
		deassignPartnerHandler:    deassignPartnerHandler,
		requoteOrderHandler:       requoteOrderHandler,
		rescheduleOrderHandler:    rescheduleOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		completeOrderHandler:      completeOrderHandler,
		createPartnerHandler:      createPartnerHandler,
		addPickupAgentHandler:     addPickupAgentHandler,
		removePickupAgentHandler:  removePickupAgentHandler,
		topUpWalletHandler:        topUpWalletHandler,
		adjustWalletHandler:       adjustWalletHandler,
		settleRefundHandler:       settleRefundHandler,
		addCoinRangeHandler:       addCoinRangeHandler,
		registerSessionHandler:    registerSessionHandler,
		setPartnerStatusHandler:   setPartnerStatusHandler,
		getOrderHandler:           getOrderHandler,
		getClaimableOrdersHandler: getClaimableOrdersHandler,
		getPartnerOrdersHandler:   getPartnerOrdersHandler,
		getWalletStatementHandler: getWalletStatementHandler,
		getRefundsHandler:         getRefundsHandler,
		auditWalletsHandler:       auditWalletsHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
// Order creation is open to the storefront; everything else requires a
// valid session token.
func (s *Server) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	e.POST("/api/v1/orders", s.CreateOrder)

	api := e.Group("/api/v1", session)

	// Session
	api.POST("/session", s.RegisterSession)

	// Order lifecycle
	api.GET("/orders/claimable", s.GetClaimableOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/accept", s.AcceptOrder)
	api.POST("/orders/:orderID/assign-partner", s.AssignPartner)
	api.POST("/orders/:orderID/assign-agent", s.AssignAgent)
	api.POST("/orders/:orderID/deassign-agent", s.DeassignAgent)
	api.POST("/orders/:orderID/deassign-partner", s.DeassignPartner)
	api.POST("/orders/:orderID/requote", s.RequoteOrder)
	api.POST("/orders/:orderID/reschedule", s.RescheduleOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/complete", s.CompleteOrder)
	api.GET("/partner/orders", s.GetPartnerOrders)

	// Partner management
	api.POST("/partners", s.CreatePartner)
	api.POST("/partners/:phone/status", s.SetPartnerStatus)
	api.POST("/partner/agents", s.AddPickupAgent)
	api.DELETE("/partner/agents/:phone", s.RemovePickupAgent)

	// Wallet
	api.GET("/wallet", s.GetWalletStatement)
	api.POST("/wallet/topup", s.TopUpWallet)
	api.POST("/wallet/adjust", s.AdjustWallet)
	api.GET("/wallets/audit", s.AuditWallets)

	// Refunds
	api.GET("/refunds", s.GetRefunds)
	api.POST("/refunds/:refundID/settle", s.SettleRefund)

	// Coin table
	api.POST("/coin-ranges", s.AddCoinRange)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// respondError maps application and domain errors onto HTTP responses.
// Repeated terminal transitions report the state that already holds
// instead of failing.
func respondError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	switch {
	case errors.Is(err, order.ErrAlreadyCancelled):
		return ctx.JSON(http.StatusOK, statusResponse{Status: "order is already cancelled"})
	case errors.Is(err, order.ErrAlreadyCompleted):
		return ctx.JSON(http.StatusOK, statusResponse{Status: "order is already completed"})
	case errors.Is(err, refund.ErrAlreadyRefunded):
		return ctx.JSON(http.StatusOK, statusResponse{Status: "refund is already settled"})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Code: http.StatusNotFound, Message: err.Error()})

	case errors.Is(err, partner.ErrSessionSuperseded):
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Code: http.StatusUnauthorized, Message: err.Error()})

	case errors.Is(err, partner.ErrPartnerBlocked),
		errors.Is(err, order.ErrActorNotAssigned):
		return ctx.JSON(http.StatusForbidden, errorResponse{Code: http.StatusForbidden, Message: err.Error()})

	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, order.ErrAlreadyAssigned),
		errors.Is(err, order.ErrAgentAlreadyAssigned),
		errors.Is(err, partner.ErrInsufficientBalance),
		errors.Is(err, partner.ErrAgentAlreadyExists):
		return ctx.JSON(http.StatusConflict, errorResponse{Code: http.StatusConflict, Message: err.Error()})

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, partner.ErrAgentNotFound):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: err.Error()})

	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

// RegisterSession handles POST /api/v1/session - binds the caller's live
// session to the device in their token, superseding any earlier login.
func (s *Server) RegisterSession(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterSessionCommand(principal.Role, principal.Phone, principal.Device)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type createOrderRequest struct {
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	CustomerEmail string            `json:"customer_email"`
	Address       string            `json:"address"`
	ScheduleDate  string            `json:"schedule_date"`
	ScheduleTime  string            `json:"schedule_time"`
	ProductName   string            `json:"product_name"`
	ProductSlug   string            `json:"product_slug"`
	ProductImage  string            `json:"product_image"`
	Price         int               `json:"price"`
	Options       map[string]string `json:"options"`
	Platform      string            `json:"platform"`
}

// CreateOrder handles POST /api/v1/orders - places a new buy-back order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerName, req.CustomerPhone, req.CustomerEmail, req.Address,
		req.ScheduleDate, req.ScheduleTime,
		req.ProductName, req.ProductSlug, req.ProductImage,
		req.Price, req.Options, req.Platform,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"order_id": orderID})
}

// GetOrder handles GET /api/v1/orders/:orderID - full order details with logs.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetClaimableOrders handles GET /api/v1/orders/claimable - the unclaimed
// order feed for the calling partner. Scoped to the pincodes on the
// partner's stored profile, not to anything the request supplies.
func (s *Server) GetClaimableOrders(ctx echo.Context) error {
	principal, err := requirePartner(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetClaimableOrdersQuery(principal.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getClaimableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles POST /api/v1/orders/:orderID/accept - a partner claims
// the order and pays its coin reward.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	principal, err := requirePartner(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderCommand(ctx.Param("orderID"), principal.Phone, principal.Device)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type assignPartnerRequest struct {
	PartnerPhone string `json:"partner_phone"`
}

// AssignPartner handles POST /api/v1/orders/:orderID/assign-partner - an
// administrator forces the order onto a partner. The claim guards still
// apply: the order must be unclaimed and the partner's wallet must cover
// the coin reward.
func (s *Server) AssignPartner(ctx echo.Context) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	var req assignPartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewAssignPartnerCommand(ctx.Param("orderID"), req.PartnerPhone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type assignAgentRequest struct {
	AgentPhone string `json:"agent_phone"`
}

// AssignAgent handles POST /api/v1/orders/:orderID/assign-agent - the
// claiming partner delegates the pickup to one of its agents.
func (s *Server) AssignAgent(ctx echo.Context) error {
	principal, err := requirePartner(ctx)
	if err != nil {
		return err
	}

	var req assignAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewAssignAgentCommand(ctx.Param("orderID"), principal.Phone, principal.Device, req.AgentPhone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeassignAgent handles POST /api/v1/orders/:orderID/deassign-agent.
func (s *Server) DeassignAgent(ctx echo.Context) error {
	principal, err := requirePartner(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeassignAgentCommand(ctx.Param("orderID"), principal.Phone, principal.Device)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deassignAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type deassignPartnerRequest struct {
	Reason string `json:"reason"`
}

// DeassignPartner handles POST /api/v1/orders/:orderID/deassign-partner - an
// administrator releases the order back into the claimable pool. The coins
// the partner paid come back through a refund record, not directly.
func (s *Server) DeassignPartner(ctx echo.Context) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	var req deassignPartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewDeassignPartnerCommand(ctx.Param("orderID"), req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deassignPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type requoteOrderRequest struct {
	Price   int               `json:"price"`
	Options map[string]string `json:"options"`
}

// RequoteOrder handles POST /api/v1/orders/:orderID/requote - the quoted
// price is corrected after inspection. The frozen coin reward is unchanged.
func (s *Server) RequoteOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var req requoteOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewRequoteOrderCommand(
		ctx.Param("orderID"), req.Price, req.Options, principal.Role, principal.Phone, principal.Device)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.requoteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type rescheduleOrderRequest struct {
	ScheduleDate string `json:"schedule_date"`
	ScheduleTime string `json:"schedule_time"`
	Reason       string `json:"reason"`
}

// RescheduleOrder handles POST /api/v1/orders/:orderID/reschedule.
func (s *Server) RescheduleOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var req rescheduleOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewRescheduleOrderCommand(
		ctx.Param("orderID"), req.ScheduleDate, req.ScheduleTime, req.Reason,
		principal.Role, principal.Phone, principal.Device)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.rescheduleOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var req cancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewCancelOrderCommand(
		ctx.Param("orderID"), req.Reason, principal.Role, principal.Phone, principal.Device)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type completeOrderRequest struct {
	FinalPrice   int      `json:"final_price"`
	IMEINumber   string   `json:"imei_number"`
	IMEIImage    string   `json:"imei_image"`
	DeviceBill   string   `json:"device_bill"`
	IDCard       string   `json:"id_card"`
	DeviceImages []string `json:"device_images"`
}

// CompleteOrder handles POST /api/v1/orders/:orderID/complete - the pickup
// is done and the device evidence recorded.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var req completeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewCompleteOrderCommand(
		ctx.Param("orderID"),
		order.DeviceEvidence{
			FinalPrice:   req.FinalPrice,
			IMEINumber:   req.IMEINumber,
			IMEIImage:    req.IMEIImage,
			DeviceBill:   req.DeviceBill,
			IDCard:       req.IDCard,
			DeviceImages: req.DeviceImages,
		},
		principal.Role, principal.Phone, principal.Device)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPartnerOrders handles GET /api/v1/partner/orders - the calling
// partner's claimed orders, optionally filtered by pickup agent.
func (s *Server) GetPartnerOrders(ctx echo.Context) error {
	principal, err := requirePartner(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPartnerOrdersQuery(principal.Phone, ctx.QueryParam("agent_phone"))
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getPartnerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type createPartnerRequest struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Pincodes []string `json:"pincodes"`
}

// CreatePartner handles POST /api/v1/partners - an administrator onboards a
// regional partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	var req createPartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewCreatePartnerCommand(req.Name, req.Phone, req.Email, req.Pincodes)
	if err != nil {
		return respondError(ctx, err)
	}

	partnerID, err := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"partner_id": partnerID.String()})
}

type setPartnerStatusRequest struct {
	Blocked bool `json:"blocked"`
}

// SetPartnerStatus handles POST /api/v1/partners/:phone/status - an
// administrator blocks or unblocks a partner. Blocked partners keep their
// wallet and agents but fail every authorization check.
func (s *Server) SetPartnerStatus(ctx echo.Context) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	var req setPartnerStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewSetPartnerStatusCommand(ctx.Param("phone"), req.Blocked)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setPartnerStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type addPickupAgentRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AddPickupAgent handles POST /api/v1/partner/agents - the calling partner
// enrolls a pickup agent.
func (s *Server) AddPickupAgent(ctx echo.Context) error {
	principal, err := requirePartner(ctx)
	if err != nil {
		return err
	}

	var req addPickupAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewAddPickupAgentCommand(principal.Phone, principal.Device, req.Name, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addPickupAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemovePickupAgent handles DELETE /api/v1/partner/agents/:phone.
func (s *Server) RemovePickupAgent(ctx echo.Context) error {
	principal, err := requirePartner(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemovePickupAgentCommand(principal.Phone, principal.Device, ctx.Param("phone"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removePickupAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWalletStatement handles GET /api/v1/wallet - balance and ledger for the
// calling partner. Administrators may inspect any wallet via the phone
// query parameter.
func (s *Server) GetWalletStatement(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	phone := principal.Phone
	if principal.Role == commands.RoleAdmin {
		phone = ctx.QueryParam("phone")
	}

	query, err := queries.NewGetWalletStatementQuery(phone, ctx.QueryParam("type"))
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getWalletStatementHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type topUpWalletRequest struct {
	Coins     int    `json:"coins"`
	PaymentID string `json:"payment_id"`
}

// TopUpWallet handles POST /api/v1/wallet/topup - the calling partner
// credits purchased coins against a completed payment.
func (s *Server) TopUpWallet(ctx echo.Context) error {
	principal, err := requirePartner(ctx)
	if err != nil {
		return err
	}

	var req topUpWalletRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewTopUpWalletCommand(principal.Phone, principal.Device, req.Coins, req.PaymentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.topUpWalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type adjustWalletRequest struct {
	Phone   string `json:"phone"`
	Coins   int    `json:"coins"`
	Message string `json:"message"`
}

// AdjustWallet handles POST /api/v1/wallet/adjust - an administrator applies
// a signed manual correction to a partner's wallet.
func (s *Server) AdjustWallet(ctx echo.Context) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	var req adjustWalletRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewAdjustWalletCommand(req.Phone, req.Coins, req.Message)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.adjustWalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AuditWallets handles GET /api/v1/wallets/audit - partners whose balance
// disagrees with their transaction ledger.
func (s *Server) AuditWallets(ctx echo.Context) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	response, err := s.auditWalletsHandler.Handle(ctx.Request().Context(), queries.NewAuditWalletsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRefunds handles GET /api/v1/refunds - the refund worklist, optionally
// filtered by status and partner phone.
func (s *Server) GetRefunds(ctx echo.Context) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	query, err := queries.NewGetRefundsQuery(ctx.QueryParam("status"), ctx.QueryParam("phone"))
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getRefundsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SettleRefund handles POST /api/v1/refunds/:refundID/settle - an
// administrator pays a pending refund back into the partner's wallet.
func (s *Server) SettleRefund(ctx echo.Context) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	refundID, err := kernel.UUIDFromString(ctx.Param("refundID"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSettleRefundCommand(refundID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.settleRefundHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type addCoinRangeRequest struct {
	StartPrice int `json:"start_price"`
	EndPrice   int `json:"end_price"`
	Coins      int `json:"coins"`
}

// AddCoinRange handles POST /api/v1/coin-ranges - an administrator extends
// the price-to-coin table. Existing orders keep their frozen reward.
func (s *Server) AddCoinRange(ctx echo.Context) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	var req addCoinRangeRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewAddCoinRangeCommand(req.StartPrice, req.EndPrice, req.Coins)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addCoinRangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}
