package model

import (
	"time"

	"innkeep/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldHotelID      = "hotel_id"
	FieldRoomTypeID   = "room_type_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldNumRooms     = "num_rooms"
	FieldTotalPrice   = "total_price"
	FieldStatus       = "status"

	StatusPendingPayment = "pending_payment"
)

type Order struct {
	ID           string          `db:"id"`
	UserID       string          `db:"user_id"`
	HotelID      string          `db:"hotel_id"`
	RoomTypeID   string          `db:"room_type_id"`
	CheckInDate  time.Time       `db:"check_in_date"`
	CheckOutDate time.Time       `db:"check_out_date"`
	NumRooms     int             `db:"num_rooms"`
	TotalPrice   decimal.Decimal `db:"total_price"`
	Status       string          `db:"status"`
	model.Metadata

	// Display columns joined from the catalog for list views.
	HotelNameZH   string          `db:"hotel_name_zh"   table:"hotels"     column:"name_zh"`
	HotelNameEN   string          `db:"hotel_name_en"   table:"hotels"     column:"name_en"`
	RoomTypeName  string          `db:"room_type_name"  table:"room_types" column:"name"`
	RoomBasePrice decimal.Decimal `db:"room_base_price" table:"room_types" column:"base_price"`
}

func (Order) GetJoinQuery() string {
	return `JOIN hotels ON hotels.id = orders.hotel_id
		JOIN room_types ON room_types.id = orders.room_type_id`
}
