package service

import (
	"context"
	"errors"
	"fmt"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/application/model"
	"innkeep/internal/domains/application/model/dto"
	"innkeep/internal/domains/application/repository"
	hotelModel "innkeep/internal/domains/hotel/model"
	hotelRepo "innkeep/internal/domains/hotel/repository"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Application interface {
	Submit(ctx context.Context, userID string, req dto.SubmitApplicationRequest) (dto.SubmitApplicationResponse, error)
	ListPending(ctx context.Context, params gDto.QueryParams) (dto.GetApplicationsResponse, error)
	ListMine(ctx context.Context, userID string, params gDto.QueryParams) (dto.GetApplicationsResponse, error)
	Decide(ctx context.Context, applicationID string, req dto.DecideApplicationRequest) (dto.DecideApplicationResponse, error)
}

type serviceImpl struct {
	applicationRepo repository.Application
	hotelRepo       hotelRepo.Hotel
	transactor      postgres.Transactor
	otel            otel.Otel
}

func New(applicationRepo repository.Application, hotelRepo hotelRepo.Hotel, transactor postgres.Transactor, otel otel.Otel) Application {
	return &serviceImpl{
		applicationRepo: applicationRepo,
		hotelRepo:       hotelRepo,
		transactor:      transactor,
		otel:            otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, userID string, req dto.SubmitApplicationRequest) (res dto.SubmitApplicationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitApplication")
	defer scope.End()
	defer scope.TraceIfError(err)

	application := req.ToModel(userID)

	if err = s.applicationRepo.Insert(ctx, application); err != nil {
		log.Error().Err(err).Msg("failed to submit application")

		return res, fmt.Errorf("failed to submit application: %w", err)
	}

	res.ApplicationID = application.ID

	return res, nil
}

func (s *serviceImpl) ListPending(ctx context.Context, params gDto.QueryParams) (res dto.GetApplicationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPendingApplications")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
		},
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) ListMine(ctx context.Context, userID string, params gDto.QueryParams) (res dto.GetApplicationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMyApplications")
	defer scope.End()
	defer scope.TraceIfError(err)

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

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetApplicationsResponse, err error) {
	if params.SortBy == "" {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	total, err := s.applicationRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count applications")

		return res, fmt.Errorf("failed to count applications: %w", err)
	}

	applications, err := s.applicationRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list applications")

		return res, fmt.Errorf("failed to list applications: %w", err)
	}

	res.FromModels(applications, total, params.Page, params.Limit)

	return res, nil
}

// Decide settles a pending application inside one transaction. The pending
// row is locked first; approval promotes it into the hotels catalog before
// the terminal status update, rejection only updates. A row that is missing
// or already decided aborts with a conflict and leaves no writes behind.
func (s *serviceImpl) Decide(ctx context.Context, applicationID string, req dto.DecideApplicationRequest) (res dto.DecideApplicationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DecideApplication")
	defer scope.End()
	defer scope.TraceIfError(err)

	status := model.StatusRejected
	if req.Action == model.ActionApprove {
		status = model.StatusApproved
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		application, lockErr := s.applicationRepo.LockPendingTx(ctx, tx, applicationID)
		if lockErr != nil {
			if errors.Is(lockErr, repository.ErrNotFoundOrProcessed) {
				return failure.Conflict("application not found or already processed")
			}

			return fmt.Errorf("failed to lock application: %w", lockErr)
		}

		if req.Action == model.ActionApprove {
			if insertErr := s.hotelRepo.InsertTx(ctx, tx, hotelModel.FromApplication(application)); insertErr != nil {
				return fmt.Errorf("failed to promote application into catalog: %w", insertErr)
			}
		}

		now := timezone.Now()
		fields := map[string]any{
			model.FieldStatus:       status,
			model.FieldAdminRemark:  req.AdminRemark,
			model.FieldProcessedAt:  now,
			constant.FieldUpdatedAt: now,
		}

		idFilter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldID,
					Operator: gDto.FilterOperatorEq,
					Value:    applicationID,
					Table:    model.TableName,
				},
			},
		}

		if updateErr := s.applicationRepo.UpdateTx(ctx, tx, fields, idFilter); updateErr != nil {
			return fmt.Errorf("failed to update application status: %w", updateErr)
		}

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("application_id", applicationID).Str("action", req.Action).Msg("application decision failed")

		return res, err
	}

	res.Outcome = status

	return res, nil
}
