package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	hotelMocks "innkeep/internal/domains/hotel/mocks"
	roomMocks "innkeep/internal/domains/room/mocks"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/service"
	cacheMocks "innkeep/shared/cache/mocks"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
)

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom, *hotelMocks.MockHotel, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, mockHotelRepo, &config.Config{}, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockHotelRepo, mockCache
}

func expectCatalogInvalidation(mockCache *cacheMocks.MockRedisCache) chan struct{} {
	cleared := make(chan struct{}, 1)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) error {
			cleared <- struct{}{}
			return nil
		})

	return cleared
}

func TestRoomService_ListByHotel(t *testing.T) {
	svc, mockRepo, _, _ := newRoomService(t)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.RoomType, error) {
			assert.Equal(t, model.FieldBasePrice, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			return []model.RoomType{
				{
					ID:        "room-type-1",
					HotelID:   "hotel-id-1",
					Name:      "Standard Twin",
					BasePrice: decimal.RequireFromString("199.00"),
				},
			}, nil
		})

	res, err := svc.ListByHotel(context.Background(), "hotel-id-1")

	assert.NoError(t, err)
	assert.Len(t, res.RoomTypes, 1)
	assert.Equal(t, "199.00", res.RoomTypes[0].BasePrice)
}

func TestRoomService_Create(t *testing.T) {
	validReq := dto.CreateRoomTypeRequest{
		Name:      "Deluxe King",
		BasePrice: decimal.RequireFromString("288.00"),
	}

	t.Run("creates room type with defaults and clears catalog cache", func(t *testing.T) {
		svc, mockRepo, mockHotelRepo, mockCache := newRoomService(t)

		mockHotelRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
				assert.Equal(t, "hotel-id-1", roomType.HotelID)
				assert.Equal(t, model.DefaultCapacity, roomType.Capacity)
				assert.Equal(t, model.DefaultTotalInventory, roomType.TotalInventory)
				return nil
			})

		cleared := expectCatalogInvalidation(mockCache)

		res, err := svc.Create(context.Background(), "hotel-id-1", validReq)

		assert.NoError(t, err)
		assert.Equal(t, "288.00", res.BasePrice)

		<-cleared
	})

	t.Run("unknown hotel is not found", func(t *testing.T) {
		svc, _, mockHotelRepo, _ := newRoomService(t)

		mockHotelRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Create(context.Background(), "gone-id", validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("negative price is invalid", func(t *testing.T) {
		svc, _, _, _ := newRoomService(t)

		req := validReq
		req.BasePrice = decimal.RequireFromString("-1.00")

		_, err := svc.Create(context.Background(), "hotel-id-1", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestRoomService_Update(t *testing.T) {
	t.Run("updates existing room type and clears catalog cache", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newRoomService(t)

		newPrice := decimal.RequireFromString("150.00")

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldBasePrice)
				return nil
			})

		cleared := expectCatalogInvalidation(mockCache)

		err := svc.Update(context.Background(), "room-type-1", dto.UpdateRoomTypeRequest{BasePrice: &newPrice})

		assert.NoError(t, err)

		<-cleared
	})

	t.Run("missing room type is not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newRoomService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), "gone-id", dto.UpdateRoomTypeRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("deletes existing room type and clears catalog cache", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newRoomService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		cleared := expectCatalogInvalidation(mockCache)

		err := svc.Delete(context.Background(), "room-type-1")

		assert.NoError(t, err)

		<-cleared
	})

	t.Run("missing room type is not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newRoomService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "gone-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
