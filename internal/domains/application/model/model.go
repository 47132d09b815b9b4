package model

import (
	"time"

	"innkeep/shared/model"
)

const (
	TableName  = "hotel_applications"
	EntityName = "application"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldNameZH          = "name_zh"
	FieldNameEN          = "name_en"
	FieldAddress         = "address"
	FieldStarRating      = "star_rating"
	FieldOperatingPeriod = "operating_period"
	FieldDescription     = "description"
	FieldStatus          = "status"
	FieldAdminRemark     = "admin_remark"
	FieldProcessedAt     = "processed_at"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	ActionApprove = "approve"
	ActionReject  = "reject"
)

type Application struct {
	ID              string     `db:"id"`
	UserID          string     `db:"user_id"`
	NameZH          string     `db:"name_zh"`
	NameEN          string     `db:"name_en"`
	Address         string     `db:"address"`
	StarRating      *int       `db:"star_rating"`
	OperatingPeriod string     `db:"operating_period"`
	Description     *string    `db:"description"`
	Status          string     `db:"status"`
	AdminRemark     *string    `db:"admin_remark"`
	ProcessedAt     *time.Time `db:"processed_at"`
	model.Metadata
}
