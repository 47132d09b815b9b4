package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	hotelMocks "innkeep/internal/domains/hotel/mocks"
	"innkeep/internal/domains/hotel/model"
	"innkeep/internal/domains/hotel/model/dto"
	"innkeep/internal/domains/hotel/service"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	cacheMocks "innkeep/shared/cache/mocks"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	gModel "innkeep/shared/model"
)

func intPtr(v int) *int { return &v }

func activeHotel() model.Hotel {
	return model.Hotel{
		ID:              "hotel-id-1",
		UserID:          "merchant-id-1",
		NameZH:          "云端酒店",
		NameEN:          "Cloud Hotel",
		Address:         "1 Harbor Road",
		StarRating:      intPtr(4),
		OperatingPeriod: "[2026-01-01,2027-01-01)",
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func newHotelService(t *testing.T) (service.Hotel, *hotelMocks.MockHotel, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, mockRoomRepo, &config.Config{}, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockRoomRepo, mockCache
}

func TestHotelService_Search(t *testing.T) {
	t.Run("cache miss hits repository and caches the page", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newHotelService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, criteria model.SearchCriteria) ([]model.Hotel, int, error) {
				assert.Equal(t, "harbor", criteria.Keyword)
				assert.Equal(t, 4, criteria.MinStar)
				assert.Equal(t, "2026-06-01", criteria.CheckIn)
				return []model.Hotel{activeHotel()}, 1, nil
			})

		saved := make(chan struct{}, 1)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string, any, int) error {
				saved <- struct{}{}
				return nil
			})

		req := dto.SearchHotelsRequest{
			Keyword: "harbor",
			Star:    4,
			CheckIn: "2026-06-01",
		}
		req.Page = 1
		req.Limit = 10

		res, err := svc.Search(context.Background(), req)

		assert.NoError(t, err)
		assert.Len(t, res.Hotels, 1)
		assert.Equal(t, 1, res.Pagination.Total)

		<-saved
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, _, mockCache := newHotelService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		req := dto.SearchHotelsRequest{}
		req.Page = 1
		req.Limit = 10

		_, err := svc.Search(context.Background(), req)

		assert.NoError(t, err)
	})
}

func TestHotelService_Detail(t *testing.T) {
	t.Run("returns hotel with room types", func(t *testing.T) {
		svc, mockRepo, mockRoomRepo, mockCache := newHotelService(t)

		hotel := activeHotel()

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hotel, nil)

		mockRoomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomModel.RoomType{
				{
					ID:        "room-type-1",
					HotelID:   hotel.ID,
					Name:      "Standard Twin",
					BasePrice: decimal.RequireFromString("199.00"),
				},
			}, nil)

		saved := make(chan struct{}, 1)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string, any, int) error {
				saved <- struct{}{}
				return nil
			})

		res, err := svc.Detail(context.Background(), hotel.ID)

		assert.NoError(t, err)
		assert.Equal(t, hotel.NameEN, res.NameEN)
		assert.Len(t, res.RoomTypes, 1)
		assert.Equal(t, "199.00", res.RoomTypes[0].BasePrice)

		<-saved
	})

	t.Run("inactive hotel is not public", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newHotelService(t)

		hotel := activeHotel()
		hotel.Active = false

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hotel, nil)

		_, err := svc.Detail(context.Background(), hotel.ID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestHotelService_AdminUpdate(t *testing.T) {
	validReq := dto.UpdateHotelRequest{
		NameZH:          "云端酒店",
		NameEN:          "Cloud Hotel",
		Address:         "1 Harbor Road",
		StarRating:      5,
		OperatingPeriod: "[2026-01-01,2027-01-01)",
	}

	t.Run("updates existing hotel and invalidates cache", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newHotelService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 5, fields[model.FieldStarRating])
				return nil
			})

		cleared := make(chan struct{}, 1)
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string) error {
				cleared <- struct{}{}
				return nil
			})

		err := svc.AdminUpdate(context.Background(), "hotel-id-1", validReq)

		assert.NoError(t, err)

		<-cleared
	})

	t.Run("missing hotel is not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newHotelService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.AdminUpdate(context.Background(), "gone-id", validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		svc, mockRepo, _, _ := newHotelService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})

		err := svc.AdminUpdate(context.Background(), "hotel-id-1", validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestHotelService_ListMine(t *testing.T) {
	svc, mockRepo, _, _ := newHotelService(t)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Hotel, error) {
			assert.Equal(t, "created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			return []model.Hotel{activeHotel()}, nil
		})

	res, err := svc.ListMine(context.Background(), "merchant-id-1", gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, res.Hotels, 1)
}
