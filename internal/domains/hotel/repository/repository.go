package repository

import (
	"context"
	"fmt"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/hotel/model"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/logger"
	gRepo "innkeep/shared/repository"
	"strings"

	"github.com/jmoiron/sqlx"
)

const searchColumns = `id, user_id, name_zh, name_en, address, star_rating,
	operating_period, description, active, created_at, updated_at`

type Hotel interface {
	Insert(ctx context.Context, model model.Hotel) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Hotel) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotel, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Search(ctx context.Context, criteria model.SearchCriteria) ([]model.Hotel, int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Search filters the public catalog. The operating-period containment and
// the room-price range are pushed down to Postgres: `@>` on the daterange
// column and an EXISTS over room_types.
func (r *repositoryImpl) Search(ctx context.Context, criteria model.SearchCriteria) ([]model.Hotel, int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.Search")
	defer scope.End()

	conditions := []string{"active IS DISTINCT FROM false"}
	args := map[string]any{}

	if criteria.Keyword != "" {
		conditions = append(conditions, "(name_zh ILIKE :keyword OR name_en ILIKE :keyword OR address ILIKE :keyword)")
		args["keyword"] = fmt.Sprintf("%%%s%%", criteria.Keyword)
	}

	if criteria.MinStar > 0 {
		conditions = append(conditions, "star_rating >= :min_star")
		args["min_star"] = criteria.MinStar
	}

	if criteria.CheckIn != "" {
		conditions = append(conditions, "operating_period @> CAST(:check_in AS date)")
		args["check_in"] = criteria.CheckIn
	}

	priceConditions := []string{"room_types.hotel_id = hotels.id"}

	if criteria.MinPrice != "" {
		priceConditions = append(priceConditions, "room_types.base_price >= CAST(:min_price AS numeric)")
		args["min_price"] = criteria.MinPrice
	}

	if criteria.MaxPrice != "" {
		priceConditions = append(priceConditions, "room_types.base_price <= CAST(:max_price AS numeric)")
		args["max_price"] = criteria.MaxPrice
	}

	if len(priceConditions) > 1 {
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM room_types WHERE %s)", strings.Join(priceConditions, " AND ")))
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(id) FROM hotels %s", where)

	total, err := r.namedGetInt(ctx, countQuery, args)
	if err != nil {
		scope.TraceError(err)

		return nil, 0, err
	}

	args["limit"] = criteria.Limit
	args["offset"] = (criteria.Page - 1) * criteria.Limit

	query := fmt.Sprintf(
		"SELECT %s FROM hotels %s ORDER BY created_at DESC LIMIT :limit OFFSET :offset",
		searchColumns, where,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var hotels []model.Hotel

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, 0, fmt.Errorf("failed to prepare hotel search: %w", err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &hotels, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, 0, fmt.Errorf("failed to search hotels: %w", err)
	}

	return hotels, total, nil
}

func (r *repositoryImpl) namedGetInt(ctx context.Context, query string, args map[string]any) (int, error) {
	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prepare hotel count: %w", err)
	}
	defer prepare.Close()

	var value int
	if err := prepare.GetContext(ctx, &value, args); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count hotels: %w", err)
	}

	return value, nil
}
