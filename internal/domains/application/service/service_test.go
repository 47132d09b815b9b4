package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/infras/otel/mocks"
	applicationMocks "innkeep/internal/domains/application/mocks"
	"innkeep/internal/domains/application/model"
	"innkeep/internal/domains/application/model/dto"
	"innkeep/internal/domains/application/repository"
	"innkeep/internal/domains/application/service"
	hotelMocks "innkeep/internal/domains/hotel/mocks"
	hotelModel "innkeep/internal/domains/hotel/model"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

// fakeTransactor runs the callback without a live database so repository
// mocks observe the same call shapes the real transaction would.
type fakeTransactor struct {
	beginErr error
}

func (f *fakeTransactor) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	if f.beginErr != nil {
		return f.beginErr
	}

	return fn(nil)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func pendingApplication() model.Application {
	return model.Application{
		ID:              "app-id-1",
		UserID:          "merchant-id-1",
		NameZH:          "云端酒店",
		NameEN:          "Cloud Hotel",
		Address:         "1 Harbor Road",
		StarRating:      intPtr(4),
		OperatingPeriod: "[2026-01-01,2027-01-01)",
		Description:     strPtr("seaside"),
		Status:          model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

func TestApplicationService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockApplicationRepo := applicationMocks.NewMockApplication(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockApplicationRepo, mockHotelRepo, &fakeTransactor{}, mockOtel)

	req := dto.SubmitApplicationRequest{
		NameZH:          "云端酒店",
		NameEN:          "Cloud Hotel",
		Address:         "1 Harbor Road",
		StarRating:      intPtr(4),
		OperatingPeriod: "[2026-01-01,2027-01-01)",
	}

	t.Run("inserts pending application for caller", func(t *testing.T) {
		mockApplicationRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, application model.Application) error {
				assert.Equal(t, "merchant-id-1", application.UserID)
				assert.Equal(t, model.StatusPending, application.Status)
				assert.NotEmpty(t, application.ID)
				return nil
			})

		res, err := svc.Submit(context.Background(), "merchant-id-1", req)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ApplicationID)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		mockApplicationRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		_, err := svc.Submit(context.Background(), "merchant-id-1", req)

		assert.Error(t, err)
	})
}

func TestApplicationService_ListPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockApplicationRepo := applicationMocks.NewMockApplication(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockApplicationRepo, mockHotelRepo, &fakeTransactor{}, mockOtel)

	t.Run("defaults to created_at descending", func(t *testing.T) {
		mockApplicationRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockApplicationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Application, error) {
				assert.Equal(t, "created_at", params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)
				return []model.Application{pendingApplication()}, nil
			})

		res, err := svc.ListPending(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Len(t, res.Applications, 1)
		assert.Equal(t, 1, res.Pagination.Total)
		assert.Equal(t, 1, res.Pagination.TotalPages)
	})
}

func TestApplicationService_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockApplicationRepo := applicationMocks.NewMockApplication(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockApplicationRepo, mockHotelRepo, &fakeTransactor{}, mockOtel)

	t.Run("approve copies locked row into hotels then closes application", func(t *testing.T) {
		locked := pendingApplication()

		mockApplicationRepo.EXPECT().
			LockPendingTx(gomock.Any(), gomock.Any(), locked.ID).
			Return(locked, nil)

		mockHotelRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, hotel hotelModel.Hotel) error {
				assert.Equal(t, locked.UserID, hotel.UserID)
				assert.Equal(t, locked.NameZH, hotel.NameZH)
				assert.Equal(t, locked.NameEN, hotel.NameEN)
				assert.Equal(t, locked.Address, hotel.Address)
				assert.Equal(t, locked.StarRating, hotel.StarRating)
				assert.Equal(t, locked.OperatingPeriod, hotel.OperatingPeriod)
				assert.Equal(t, locked.Description, hotel.Description)
				assert.True(t, hotel.Active)
				return nil
			})

		mockApplicationRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusApproved, fields[model.FieldStatus])
				assert.NotNil(t, fields[model.FieldProcessedAt])
				return nil
			})

		res, err := svc.Decide(context.Background(), locked.ID, dto.DecideApplicationRequest{
			Action:      model.ActionApprove,
			AdminRemark: strPtr("looks good"),
		})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusApproved, res.Outcome)
	})

	t.Run("reject only updates the application", func(t *testing.T) {
		locked := pendingApplication()

		mockApplicationRepo.EXPECT().
			LockPendingTx(gomock.Any(), gomock.Any(), locked.ID).
			Return(locked, nil)

		mockApplicationRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusRejected, fields[model.FieldStatus])
				return nil
			})

		res, err := svc.Decide(context.Background(), locked.ID, dto.DecideApplicationRequest{
			Action:      model.ActionReject,
			AdminRemark: strPtr("incomplete address"),
		})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusRejected, res.Outcome)
	})

	t.Run("missing or already decided row is a conflict with no writes", func(t *testing.T) {
		mockApplicationRepo.EXPECT().
			LockPendingTx(gomock.Any(), gomock.Any(), "gone-id").
			Return(model.Application{}, repository.ErrNotFoundOrProcessed)

		_, err := svc.Decide(context.Background(), "gone-id", dto.DecideApplicationRequest{
			Action: model.ActionApprove,
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("catalog insert failure aborts before status update", func(t *testing.T) {
		locked := pendingApplication()

		mockApplicationRepo.EXPECT().
			LockPendingTx(gomock.Any(), gomock.Any(), locked.ID).
			Return(locked, nil)

		mockHotelRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		_, err := svc.Decide(context.Background(), locked.ID, dto.DecideApplicationRequest{
			Action: model.ActionApprove,
		})

		assert.Error(t, err)
	})

	t.Run("transaction begin failure surfaces", func(t *testing.T) {
		failing := service.New(mockApplicationRepo, mockHotelRepo, &fakeTransactor{beginErr: errors.New("begin failed")}, mockOtel)

		_, err := failing.Decide(context.Background(), "app-id-1", dto.DecideApplicationRequest{
			Action: model.ActionReject,
		})

		assert.Error(t, err)
	})
}
