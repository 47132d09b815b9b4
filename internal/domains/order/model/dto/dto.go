package dto

import (
	"innkeep/internal/domains/order/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/timezone"
)

type CreateOrderRequest struct {
	HotelID      string `json:"hotel_id"       validate:"required"`
	RoomTypeID   string `json:"room_type_id"   validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
	NumRooms     int    `json:"num_rooms"      validate:"required"`
}

type OrderResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	HotelID       string `json:"hotel_id"`
	RoomTypeID    string `json:"room_type_id"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	NumRooms      int    `json:"num_rooms"`
	TotalPrice    string `json:"total_price"`
	Status        string `json:"status"`
	HotelNameZH   string `json:"hotel_name_zh,omitempty"`
	HotelNameEN   string `json:"hotel_name_en,omitempty"`
	RoomTypeName  string `json:"room_type_name,omitempty"`
	RoomBasePrice string `json:"room_base_price,omitempty"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(mod model.Order) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.HotelID = mod.HotelID
	r.RoomTypeID = mod.RoomTypeID
	r.CheckInDate = timezone.Format(mod.CheckInDate, constant.DateOnlyFormat)
	r.CheckOutDate = timezone.Format(mod.CheckOutDate, constant.DateOnlyFormat)
	r.NumRooms = mod.NumRooms
	r.TotalPrice = mod.TotalPrice.StringFixed(2)
	r.Status = mod.Status
	r.HotelNameZH = mod.HotelNameZH
	r.HotelNameEN = mod.HotelNameEN
	r.RoomTypeName = mod.RoomTypeName

	if !mod.RoomBasePrice.IsZero() {
		r.RoomBasePrice = mod.RoomBasePrice.StringFixed(2)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetOrdersResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination gDto.Pagination `json:"pagination"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, total, page, limit int) {
	r.Pagination = gDto.Pagination{
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: shared.CalculateTotalPage(total, limit),
	}

	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}
