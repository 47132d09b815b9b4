package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/internal/domains/hotel/model"
	"innkeep/internal/domains/hotel/model/dto"
	"innkeep/internal/domains/hotel/repository"
	roomModel "innkeep/internal/domains/room/model"
	roomDto "innkeep/internal/domains/room/model/dto"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheSearchHotels = "hotel:search"
	cacheGetHotel     = "hotel:get"
	cacheHotelPrefix  = "hotel"
)

type Hotel interface {
	Search(ctx context.Context, req dto.SearchHotelsRequest) (dto.GetHotelsResponse, error)
	Detail(ctx context.Context, id string) (dto.HotelDetailResponse, error)
	AdminList(ctx context.Context, params gDto.QueryParams) (dto.GetHotelsResponse, error)
	AdminUpdate(ctx context.Context, id string, req dto.UpdateHotelRequest) error
	ListMine(ctx context.Context, userID string, params gDto.QueryParams) (dto.GetHotelsResponse, error)
}

type serviceImpl struct {
	repo     repository.Hotel
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Hotel, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchHotelsRequest) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchHotels")
	defer scope.End()
	defer scope.TraceIfError(err)

	criteria := req.ToCriteria()

	cacheKey := shared.BuildCacheKey(
		cacheSearchHotels,
		criteria.Keyword,
		strconv.Itoa(criteria.MinStar),
		criteria.CheckIn,
		criteria.MinPrice,
		criteria.MaxPrice,
		strconv.Itoa(criteria.Page),
		strconv.Itoa(criteria.Limit),
	)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel search")

		return res, nil
	}

	hotels, total, err := s.repo.Search(ctx, criteria)
	if err != nil {
		log.Error().Err(err).Msg("failed to search hotels")

		return res, fmt.Errorf("failed to search hotels: %w", err)
	}

	res.FromModels(hotels, total, criteria.Page, criteria.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel search to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Detail(ctx context.Context, id string) (res dto.HotelDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HotelDetail")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel detail")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty || !hotel.Active {
		return res, failure.NotFound("hotel not found")
	}

	roomFilter := shared.FilterByID(id, roomModel.FieldHotelID, roomModel.TableName)
	roomParams := gDto.QueryParams{SortBy: roomModel.FieldBasePrice, SortDir: gDto.SortDirAsc}

	roomTypes, err := s.roomRepo.GetAll(ctx, roomParams, roomFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list hotel room types")

		return res, fmt.Errorf("failed to list hotel room types: %w", err)
	}

	res.HotelResponse.FromModel(hotel)

	res.RoomTypes = make([]roomDto.RoomTypeResponse, len(roomTypes))
	for i, roomType := range roomTypes {
		res.RoomTypes[i].FromModel(roomType)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel detail to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) AdminList(ctx context.Context, params gDto.QueryParams) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminListHotels")
	defer scope.End()
	defer scope.TraceIfError(err)

	if params.SortBy == "" {
		params.SortBy = model.FieldID
		params.SortDir = gDto.SortDirAsc
	}

	return s.list(ctx, params, gDto.FilterGroup{})
}

func (s *serviceImpl) ListMine(ctx context.Context, userID string, params gDto.QueryParams) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMyHotels")
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

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	hotels, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list hotels")

		return res, fmt.Errorf("failed to list hotels: %w", err)
	}

	res.FromModels(hotels, total, params.Page, params.Limit)

	return res, nil
}

func (s *serviceImpl) AdminUpdate(ctx context.Context, id string, req dto.UpdateHotelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminUpdateHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel existence")

		return fmt.Errorf("failed to check hotel existence: %w", err)
	}

	if !exist {
		return failure.NotFound("hotel not found")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req), filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("hotel name already in use")
		}

		log.Error().Err(err).Msg("failed to update hotel")

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheHotelPrefix)
	}()

	return nil
}
