package order

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/order/model/dto"
	"innkeep/internal/domains/order/service"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	gDto "innkeep/shared/dto"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/mine", handler.ListMine)
	})
}

// Create places a booking order
// @Summary Create an order
// @Description Price and persist a booking for a hotel room type.
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOrderRequest true "Order Request"
// @Success 201 {object} dto.OrderResponse "Order created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		err := failure.Unauthorized("missing user identity")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// ListMine lists the authenticated user's orders
// @Summary List my orders
// @Description List orders placed by the authenticated user, newest first.
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetOrdersResponse "Orders"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/mine [get]
func (handler *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListMyOrders")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		err := failure.Unauthorized("missing user identity")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.ListMine(ctx, userID, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
