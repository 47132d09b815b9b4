package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"innkeep/infras/otel"
	"innkeep/internal/domains/order/model"
	"innkeep/internal/domains/order/model/dto"
	"innkeep/internal/domains/order/repository"
	roomModel "innkeep/internal/domains/room/model"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Order interface {
	Create(ctx context.Context, userID string, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	ListMine(ctx context.Context, userID string, params gDto.QueryParams) (dto.GetOrdersResponse, error)
}

type serviceImpl struct {
	repo     repository.Order
	roomRepo roomRepo.Room
	otel     otel.Otel
}

func New(repo repository.Order, roomRepo roomRepo.Room, otel otel.Otel) Order {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		otel:     otel,
	}
}

// Create prices and persists a booking. The checks run strictly in order so
// each bad input gets its own answer: missing fields, unparseable dates, an
// empty or inverted stay, then a room type that does not belong to the
// hotel. Price is base_price x rooms x nights, rounded to two decimals.
func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.HotelID == constant.Empty || req.RoomTypeID == constant.Empty ||
		req.CheckInDate == constant.Empty || req.CheckOutDate == constant.Empty || req.NumRooms < 1 {
		return res, failure.BadRequestFromString("missing or invalid field")
	}

	checkIn, err := timezone.Parse(constant.DateOnlyFormat, req.CheckInDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date")
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, req.CheckOutDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date")
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out must be after check-in")
	}

	roomType, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomTypeID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty || roomType.HotelID != req.HotelID {
		return res, failure.NotFound("room type not found")
	}

	nights := nightsBetween(checkIn, checkOut)
	totalPrice := roomType.BasePrice.
		Mul(decimal.NewFromInt(int64(req.NumRooms))).
		Mul(decimal.NewFromInt(int64(nights))).
		Round(2)

	order := model.Order{
		ID:           uuid.NewString(),
		UserID:       userID,
		HotelID:      req.HotelID,
		RoomTypeID:   req.RoomTypeID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumRooms:     req.NumRooms,
		TotalPrice:   totalPrice,
		Status:       model.StatusPendingPayment,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}

	if err = s.repo.Insert(ctx, order); err != nil {
		log.Error().Err(err).Msg("failed to create order")

		return res, fmt.Errorf("failed to create order: %w", err)
	}

	persisted, err := s.repo.Get(ctx, shared.FilterByID(order.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to read back order")

		return res, fmt.Errorf("failed to read back order: %w", err)
	}

	res.FromModel(persisted)

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context, userID string, params gDto.QueryParams) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMyOrders")
	defer scope.End()
	defer scope.TraceIfError(err)

	if params.SortBy == "" {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	orders, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list orders")

		return res, fmt.Errorf("failed to list orders: %w", err)
	}

	res.FromModels(orders, total, params.Page, params.Limit)

	return res, nil
}

// nightsBetween counts billable nights for a stay, rounding partial days up.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
