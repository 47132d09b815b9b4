package model

import (
	applicationModel "innkeep/internal/domains/application/model"
	"innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldNameZH          = "name_zh"
	FieldNameEN          = "name_en"
	FieldAddress         = "address"
	FieldStarRating      = "star_rating"
	FieldOperatingPeriod = "operating_period"
	FieldDescription     = "description"
	FieldActive          = "active"
)

type Hotel struct {
	ID              string  `db:"id"`
	UserID          string  `db:"user_id"`
	NameZH          string  `db:"name_zh"`
	NameEN          string  `db:"name_en"`
	Address         string  `db:"address"`
	StarRating      *int    `db:"star_rating"`
	OperatingPeriod string  `db:"operating_period"`
	Description     *string `db:"description"`
	Active          bool    `db:"active"`
	model.Metadata
}

// FromApplication builds the catalog row promoted from an approved
// application. Fields are copied from the locked application row, never
// from the admin's request payload.
func FromApplication(application applicationModel.Application) Hotel {
	return Hotel{
		ID:              uuid.NewString(),
		UserID:          application.UserID,
		NameZH:          application.NameZH,
		NameEN:          application.NameEN,
		Address:         application.Address,
		StarRating:      application.StarRating,
		OperatingPeriod: application.OperatingPeriod,
		Description:     application.Description,
		Active:          true,
		Metadata: model.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}
