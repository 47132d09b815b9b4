package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/application/model"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/logger"
	gRepo "innkeep/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Matches the status='pending' guard of lockPendingQuery: zero rows means
// the application is unknown or already decided, and the caller must not
// write anything.
var ErrNotFoundOrProcessed = errors.New("application not found or already processed")

const lockPendingQuery = `
	SELECT id, user_id, name_zh, name_en, address, star_rating,
	       operating_period, description, status, admin_remark, processed_at,
	       created_at, updated_at
	FROM hotel_applications
	WHERE id = $1 AND status = 'pending'
	FOR UPDATE`

type Application interface {
	Insert(ctx context.Context, model model.Application) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Application, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Application, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	LockPendingTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Application, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Application]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Application {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Application](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LockPendingTx acquires a row lock on a still-pending application inside
// the caller's transaction. Exactly one of two concurrent decisions can get
// the row; the other sees ErrNotFoundOrProcessed.
func (r *repositoryImpl) LockPendingTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Application, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".application.LockPendingTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockPendingQuery)

	var application model.Application

	err := sqltx.GetContext(ctx, &application, lockPendingQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return application, ErrNotFoundOrProcessed
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return application, fmt.Errorf("failed to lock pending application: %w", err)
	}

	return application, nil
}
