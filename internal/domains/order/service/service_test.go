package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/infras/otel/mocks"
	orderMocks "innkeep/internal/domains/order/mocks"
	"innkeep/internal/domains/order/model"
	"innkeep/internal/domains/order/model/dto"
	"innkeep/internal/domains/order/service"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
)

func standardRoomType() roomModel.RoomType {
	return roomModel.RoomType{
		ID:        "room-type-1",
		HotelID:   "hotel-id-1",
		Name:      "Standard Twin",
		BasePrice: decimal.RequireFromString("100.00"),
	}
}

func newOrderService(t *testing.T) (service.Order, *orderMocks.MockOrder, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)

	svc := service.New(mockRepo, mockRoomRepo, mocks.NewOtel())

	return svc, mockRepo, mockRoomRepo
}

// expectPersist wires Insert followed by the read-back Get, echoing the
// inserted row with the joined display columns filled in.
func expectPersist(mockRepo *orderMocks.MockOrder) {
	var inserted model.Order

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order model.Order) error {
			inserted = order
			return nil
		})

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.FilterGroup, _ ...string) (model.Order, error) {
			persisted := inserted
			persisted.HotelNameZH = "云端酒店"
			persisted.HotelNameEN = "Cloud Hotel"
			persisted.RoomTypeName = "Standard Twin"
			persisted.RoomBasePrice = decimal.RequireFromString("100.00")
			return persisted, nil
		})
}

func TestOrderService_Create(t *testing.T) {
	validReq := dto.CreateOrderRequest{
		HotelID:      "hotel-id-1",
		RoomTypeID:   "room-type-1",
		CheckInDate:  "2026-06-01",
		CheckOutDate: "2026-06-03",
		NumRooms:     2,
	}

	t.Run("two rooms for two nights at 100.00 totals 400.00", func(t *testing.T) {
		svc, mockRepo, mockRoomRepo := newOrderService(t)

		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(standardRoomType(), nil)

		expectPersist(mockRepo)

		res, err := svc.Create(context.Background(), "guest-id-1", validReq)

		assert.NoError(t, err)
		assert.Equal(t, "400.00", res.TotalPrice)
		assert.Equal(t, model.StatusPendingPayment, res.Status)
		assert.Equal(t, "Cloud Hotel", res.HotelNameEN)
	})

	t.Run("single night is the minimum stay", func(t *testing.T) {
		svc, mockRepo, mockRoomRepo := newOrderService(t)

		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(standardRoomType(), nil)

		expectPersist(mockRepo)

		req := validReq
		req.CheckOutDate = "2026-06-02"
		req.NumRooms = 1

		res, err := svc.Create(context.Background(), "guest-id-1", req)

		assert.NoError(t, err)
		assert.Equal(t, "100.00", res.TotalPrice)
	})

	t.Run("missing fields fail before any lookup", func(t *testing.T) {
		svc, _, _ := newOrderService(t)

		req := validReq
		req.RoomTypeID = ""

		_, err := svc.Create(context.Background(), "guest-id-1", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("zero rooms is invalid", func(t *testing.T) {
		svc, _, _ := newOrderService(t)

		req := validReq
		req.NumRooms = 0

		_, err := svc.Create(context.Background(), "guest-id-1", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unparseable date is invalid", func(t *testing.T) {
		svc, _, _ := newOrderService(t)

		req := validReq
		req.CheckInDate = "06/01/2026"

		_, err := svc.Create(context.Background(), "guest-id-1", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("same-day stay is an invalid range", func(t *testing.T) {
		svc, _, _ := newOrderService(t)

		req := validReq
		req.CheckOutDate = req.CheckInDate

		_, err := svc.Create(context.Background(), "guest-id-1", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("inverted range is invalid", func(t *testing.T) {
		svc, _, _ := newOrderService(t)

		req := validReq
		req.CheckInDate = "2026-06-03"
		req.CheckOutDate = "2026-06-01"

		_, err := svc.Create(context.Background(), "guest-id-1", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("room type of another hotel is not found", func(t *testing.T) {
		svc, _, mockRoomRepo := newOrderService(t)

		foreign := standardRoomType()
		foreign.HotelID = "other-hotel-id"

		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(foreign, nil)

		_, err := svc.Create(context.Background(), "guest-id-1", validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("unknown room type is not found", func(t *testing.T) {
		svc, _, mockRoomRepo := newOrderService(t)

		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.RoomType{}, nil)

		_, err := svc.Create(context.Background(), "guest-id-1", validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("fractional price rounds to two decimals", func(t *testing.T) {
		svc, mockRepo, mockRoomRepo := newOrderService(t)

		roomType := standardRoomType()
		roomType.BasePrice = decimal.RequireFromString("99.995")

		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomType, nil)

		expectPersist(mockRepo)

		req := validReq
		req.CheckOutDate = "2026-06-02"
		req.NumRooms = 1

		res, err := svc.Create(context.Background(), "guest-id-1", req)

		assert.NoError(t, err)
		assert.Equal(t, "100.00", res.TotalPrice)
	})
}

func TestOrderService_ListMine(t *testing.T) {
	svc, mockRepo, _ := newOrderService(t)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Order, error) {
			assert.Equal(t, "created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			order := model.Order{
				ID:           "order-id-1",
				UserID:       "guest-id-1",
				HotelID:      "hotel-id-1",
				RoomTypeID:   "room-type-1",
				NumRooms:     1,
				TotalPrice:   decimal.RequireFromString("100.00"),
				Status:       model.StatusPendingPayment,
				HotelNameZH:  "云端酒店",
				HotelNameEN:  "Cloud Hotel",
				RoomTypeName: "Standard Twin",
			}
			return []model.Order{order}, nil
		})

	res, err := svc.ListMine(context.Background(), "guest-id-1", gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, res.Orders, 1)
	assert.Equal(t, "Standard Twin", res.Orders[0].RoomTypeName)
	assert.Equal(t, 1, res.Pagination.Total)
}
