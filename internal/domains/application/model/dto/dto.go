package dto

import (
	"innkeep/internal/domains/application/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

type SubmitApplicationRequest struct {
	NameZH          string  `json:"name_zh"               validate:"required,max=128"`
	NameEN          string  `json:"name_en"               validate:"required,max=128"`
	Address         string  `json:"address"               validate:"required,max=256"`
	StarRating      *int    `json:"star_rating,omitempty" validate:"omitempty,min=1,max=5"`
	OperatingPeriod string  `json:"operating_period"      validate:"required,daterange"`
	Description     *string `json:"description,omitempty"`
}

func (r *SubmitApplicationRequest) ToModel(userID string) model.Application {
	return model.Application{
		ID:              uuid.NewString(),
		UserID:          userID,
		NameZH:          r.NameZH,
		NameEN:          r.NameEN,
		Address:         r.Address,
		StarRating:      r.StarRating,
		OperatingPeriod: r.OperatingPeriod,
		Description:     r.Description,
		Status:          model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type SubmitApplicationResponse struct {
	ApplicationID string `json:"application_id"`
}

type DecideApplicationRequest struct {
	Action      string  `json:"action"                 validate:"required,oneof=approve reject"`
	AdminRemark *string `json:"admin_remark,omitempty" validate:"omitempty,max=512"`
}

type DecideApplicationResponse struct {
	Outcome string `json:"outcome"`
}

type ApplicationResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	NameZH          string  `json:"name_zh"`
	NameEN          string  `json:"name_en"`
	Address         string  `json:"address"`
	StarRating      *int    `json:"star_rating,omitempty"`
	OperatingPeriod string  `json:"operating_period"`
	Description     *string `json:"description,omitempty"`
	Status          string  `json:"status"`
	AdminRemark     *string `json:"admin_remark,omitempty"`
	ProcessedAt     *string `json:"processed_at,omitempty"`
	gDto.Metadata
}

func (r *ApplicationResponse) FromModel(mod model.Application) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.NameZH = mod.NameZH
	r.NameEN = mod.NameEN
	r.Address = mod.Address
	r.StarRating = mod.StarRating
	r.OperatingPeriod = mod.OperatingPeriod
	r.Description = mod.Description
	r.Status = mod.Status
	r.AdminRemark = mod.AdminRemark

	if mod.ProcessedAt != nil {
		processedAt := timezone.Format(*mod.ProcessedAt, constant.DateFormat)
		r.ProcessedAt = &processedAt
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Pagination   gDto.Pagination       `json:"pagination"`
}

func (r *GetApplicationsResponse) FromModels(models []model.Application, total, page, limit int) {
	r.Pagination = gDto.Pagination{
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: shared.CalculateTotalPage(total, limit),
	}

	r.Applications = make([]ApplicationResponse, len(models))
	for i, mod := range models {
		r.Applications[i].FromModel(mod)
	}
}
