package hotel

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/hotel/model/dto"
	"innkeep/internal/domains/hotel/service"
	roomDto "innkeep/internal/domains/room/model/dto"
	roomService "innkeep/internal/domains/room/service"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	gDto "innkeep/shared/dto"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.Hotel
	roomService roomService.Room
	otel        otel.Otel
}

func New(service service.Hotel, roomService roomService.Room, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		roomService: roomService,
		otel:        otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/hotels", func(r chi.Router) {
		r.Get("/", handler.Search)
		r.Get("/mine", handler.ListMine)
		r.Get("/{id}", handler.Detail)
		r.Get("/{id}/room-types", handler.ListRoomTypes)
	})
	r.Route("/admin/hotels", func(r chi.Router) {
		r.Get("/", handler.AdminList)
		r.Put("/{id}", handler.AdminUpdate)
		r.Post("/{id}/room-types", handler.CreateRoomType)
	})
}

// Search handles the public hotel catalog search
// @Summary Search hotels
// @Description Search active hotels by keyword, star rating, availability date and price range.
// @Tags Hotel
// @Produce json
// @Param keyword query string false "Keyword over names and address"
// @Param star query int false "Minimum star rating"
// @Param check_in query string false "Availability date (YYYY-MM-DD)"
// @Param min_price query string false "Minimum room price"
// @Param max_price query string false "Maximum room price"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetHotelsResponse "Hotels"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchHotels")
	defer scope.End()

	req := dto.SearchHotelsRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Detail returns a single hotel with its room types
// @Summary Get hotel detail
// @Description Return an active hotel with its room types, cheapest first.
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.HotelDetailResponse "Hotel detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [get]
func (handler *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelDetail")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Detail(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel detail")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListRoomTypes lists the room types of a hotel
// @Summary List room types
// @Description List the room types of a hotel, cheapest first.
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} roomDto.GetRoomTypesResponse "Room types"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/room-types [get]
func (handler *Handler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRoomTypes")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.roomService.ListByHotel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list room types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListMine lists hotels owned by the authenticated user
// @Summary List my hotels
// @Description List published hotels owned by the authenticated user.
// @Tags Hotel
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetHotelsResponse "Hotels"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/mine [get]
func (handler *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListMyHotels")
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
		log.Error().Err(err).Msg("failed to list hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AdminList lists all hotels for administration
// @Summary List hotels (admin)
// @Description List all hotels regardless of active flag, ordered by id.
// @Tags Hotel
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetHotelsResponse "Hotels"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/hotels [get]
func (handler *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminListHotels")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.AdminList(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AdminUpdate updates a hotel's listing data
// @Summary Update a hotel (admin)
// @Description Update a hotel's listing fields, including the active flag.
// @Tags Hotel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Update Request"
// @Success 200 {object} response.Message "Hotel updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/hotels/{id} [put]
func (handler *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminUpdateHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateHotelRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AdminUpdate(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel updated successfully")

	response.WithMessage(w, http.StatusOK, "Hotel updated successfully")
}

// CreateRoomType adds a room type to a hotel
// @Summary Create a room type (admin)
// @Description Add a room type to an existing hotel.
// @Tags Hotel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body roomDto.CreateRoomTypeRequest true "Room Type Request"
// @Success 201 {object} roomDto.RoomTypeResponse "Room type created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/hotels/{id}/room-types [post]
func (handler *Handler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := roomDto.CreateRoomTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.roomService.Create(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
