package dto

import (
	"innkeep/internal/domains/room/model"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomTypeRequest struct {
	Name           string          `json:"name"                      validate:"required,max=128"`
	BasePrice      decimal.Decimal `json:"base_price"                validate:"required"`
	Capacity       *int            `json:"capacity,omitempty"        validate:"omitempty,min=1"`
	TotalInventory *int            `json:"total_inventory,omitempty" validate:"omitempty,min=0"`
}

func (r *CreateRoomTypeRequest) ToModel(hotelID string) model.RoomType {
	capacity := model.DefaultCapacity
	if r.Capacity != nil {
		capacity = *r.Capacity
	}

	totalInventory := model.DefaultTotalInventory
	if r.TotalInventory != nil {
		totalInventory = *r.TotalInventory
	}

	return model.RoomType{
		ID:             uuid.NewString(),
		HotelID:        hotelID,
		Name:           r.Name,
		BasePrice:      r.BasePrice,
		Capacity:       capacity,
		TotalInventory: totalInventory,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name           *string          `db:"name"            json:"name,omitempty"            validate:"omitempty,max=128"`
	BasePrice      *decimal.Decimal `db:"base_price"      json:"base_price,omitempty"`
	Capacity       *int             `db:"capacity"        json:"capacity,omitempty"        validate:"omitempty,min=1"`
	TotalInventory *int             `db:"total_inventory" json:"total_inventory,omitempty" validate:"omitempty,min=0"`
}

type RoomTypeResponse struct {
	ID             string `json:"id"`
	HotelID        string `json:"hotel_id"`
	Name           string `json:"name"`
	BasePrice      string `json:"base_price"`
	Capacity       int    `json:"capacity"`
	TotalInventory int    `json:"total_inventory"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(mod model.RoomType) {
	r.ID = mod.ID
	r.HotelID = mod.HotelID
	r.Name = mod.Name
	r.BasePrice = mod.BasePrice.StringFixed(2)
	r.Capacity = mod.Capacity
	r.TotalInventory = mod.TotalInventory
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType) {
	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
