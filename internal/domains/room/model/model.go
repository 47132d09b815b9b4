package model

import (
	"innkeep/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID             = "id"
	FieldHotelID        = "hotel_id"
	FieldName           = "name"
	FieldBasePrice      = "base_price"
	FieldCapacity       = "capacity"
	FieldTotalInventory = "total_inventory"

	DefaultCapacity       = 2
	DefaultTotalInventory = 10
)

type RoomType struct {
	ID             string          `db:"id"`
	HotelID        string          `db:"hotel_id"`
	Name           string          `db:"name"`
	BasePrice      decimal.Decimal `db:"base_price"`
	Capacity       int             `db:"capacity"`
	TotalInventory int             `db:"total_inventory"`
	model.Metadata
}
