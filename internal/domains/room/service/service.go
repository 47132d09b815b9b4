package service

import (
	"context"
	"fmt"

	"innkeep/config"
	"innkeep/infras/otel"
	hotelModel "innkeep/internal/domains/hotel/model"
	hotelRepo "innkeep/internal/domains/hotel/repository"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"

	"github.com/rs/zerolog/log"
)

// Room type changes invalidate the whole cached hotel catalog: detail pages
// embed room types and search filters on base_price.
const cacheHotelPrefix = "hotel"

type Room interface {
	ListByHotel(ctx context.Context, hotelID string) (dto.GetRoomTypesResponse, error)
	Create(ctx context.Context, hotelID string, req dto.CreateRoomTypeRequest) (dto.RoomTypeResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomTypeRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Room
	hotelRepo hotelRepo.Hotel
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Room, hotelRepo hotelRepo.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) ListByHotel(ctx context.Context, hotelID string) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRoomTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(hotelID, model.FieldHotelID, model.TableName)

	params := gDto.QueryParams{
		SortBy:  model.FieldBasePrice,
		SortDir: gDto.SortDirAsc,
	}

	roomTypes, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list room types")

		return res, fmt.Errorf("failed to list room types: %w", err)
	}

	res.FromModels(roomTypes)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, hotelID string, req dto.CreateRoomTypeRequest) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.BasePrice.IsNegative() {
		return res, failure.BadRequestFromString("base_price must not be negative")
	}

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel existence")

		return res, fmt.Errorf("failed to check hotel existence: %w", err)
	}

	if !hotelExists {
		return res, failure.NotFound("hotel not found")
	}

	roomType := req.ToModel(hotelID)

	if err = s.repo.Insert(ctx, roomType); err != nil {
		log.Error().Err(err).Msg("failed to create room type")

		return res, fmt.Errorf("failed to create room type: %w", err)
	}

	s.invalidateCatalog(ctx)

	res.FromModel(roomType)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomTypeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.BasePrice != nil && req.BasePrice.IsNegative() {
		return failure.BadRequestFromString("base_price must not be negative")
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type existence")

		return fmt.Errorf("failed to check room type existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room type not found")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room type")

		return fmt.Errorf("failed to update room type: %w", err)
	}

	s.invalidateCatalog(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type existence")

		return fmt.Errorf("failed to check room type existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room type not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room type")

		return fmt.Errorf("failed to delete room type: %w", err)
	}

	s.invalidateCatalog(ctx)

	return nil
}

func (s *serviceImpl) invalidateCatalog(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheHotelPrefix)
	}()
}
