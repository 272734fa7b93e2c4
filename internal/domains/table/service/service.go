package service

import (
	"context"
	"fmt"

	"dinoreserve/config"
	"dinoreserve/infras/otel"
	reservationModel "dinoreserve/internal/domains/reservation/model"
	reservationRepo "dinoreserve/internal/domains/reservation/repository"
	restaurantModel "dinoreserve/internal/domains/restaurant/model"
	restaurantRepo "dinoreserve/internal/domains/restaurant/repository"
	"dinoreserve/internal/domains/table/model"
	"dinoreserve/internal/domains/table/model/dto"
	"dinoreserve/internal/domains/table/repository"
	"dinoreserve/shared"
	"dinoreserve/shared/cache"
	"dinoreserve/shared/constant"
	gDto "dinoreserve/shared/dto"
	"dinoreserve/shared/failure"

	"github.com/rs/zerolog/log"
)

// CacheGetAllTables is exported so writes in the reservation domain can
// invalidate table listings, which embed reservation status.
const CacheGetAllTables = "table:gets"

type Table interface {
	GetAllByRestaurant(ctx context.Context, restaurantID string) (dto.GetTablesResponse, error)
}

type serviceImpl struct {
	repo            repository.Table
	restaurantRepo  restaurantRepo.Restaurant
	reservationRepo reservationRepo.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	repo repository.Table,
	restaurantRepo restaurantRepo.Restaurant,
	reservationRepo reservationRepo.Reservation,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Table {
	return &serviceImpl{
		repo:            repo,
		restaurantRepo:  restaurantRepo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) GetAllByRestaurant(ctx context.Context, restaurantID string) (res dto.GetTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByRestaurant")
	defer scope.End()
	defer scope.TraceIfError(err)

	restaurantExists, err := s.restaurantRepo.Exist(ctx, shared.FilterByID(restaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if restaurant exists")

		return res, fmt.Errorf("failed to check if restaurant exists: %w", err)
	}

	if !restaurantExists {
		return res, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(CacheGetAllTables, restaurantID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tables")

		return res, nil
	}

	tables, err := s.repo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.TableName + "." + model.FieldTableNumber, SortDir: "ASC"},
		shared.FilterByID(restaurantID, model.FieldRestaurantID, model.TableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	activeFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    reservationModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    reservationModel.StatusReserved,
				Table:    reservationModel.TableName,
			},
		},
	}

	active, err := s.reservationRepo.GetAll(ctx, gDto.QueryParams{}, activeFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active reservations")

		return res, fmt.Errorf("failed to get active reservations: %w", err)
	}

	res.FromModels(tables, active)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tables to cache")
		}
	}()

	return res, nil
}
