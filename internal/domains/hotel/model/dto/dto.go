package dto

import (
	"net/http"
	"strconv"

	"innkeep/internal/domains/hotel/model"
	roomDto "innkeep/internal/domains/room/model/dto"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
)

type SearchHotelsRequest struct {
	Keyword  string `json:"keyword"`
	Star     int    `json:"star"      validate:"omitempty,min=1,max=5"`
	CheckIn  string `json:"check_in"  validate:"omitempty,datetime=2006-01-02"`
	MinPrice string `json:"min_price" validate:"omitempty,numeric"`
	MaxPrice string `json:"max_price" validate:"omitempty,numeric"`
	gDto.QueryParams
}

func (r *SearchHotelsRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	r.Keyword = query.Get(constant.RequestParamKeyword)
	r.CheckIn = query.Get(constant.RequestParamCheckIn)
	r.MinPrice = query.Get(constant.RequestParamMinPrice)
	r.MaxPrice = query.Get(constant.RequestParamMaxPrice)

	if star := query.Get(constant.RequestParamStar); star != "" {
		if starInt, err := strconv.Atoi(star); err == nil {
			r.Star = starInt
		}
	}

	r.QueryParams.FromRequest(req, true)
}

func (r *SearchHotelsRequest) ToCriteria() model.SearchCriteria {
	return model.SearchCriteria{
		Keyword:  r.Keyword,
		MinStar:  r.Star,
		CheckIn:  r.CheckIn,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}

type UpdateHotelRequest struct {
	NameZH          string  `db:"name_zh"          json:"name_zh"               validate:"required,max=128"`
	NameEN          string  `db:"name_en"          json:"name_en"               validate:"required,max=128"`
	Address         string  `db:"address"          json:"address"               validate:"required,max=256"`
	StarRating      int     `db:"star_rating"      json:"star_rating"           validate:"required,min=1,max=5"`
	OperatingPeriod string  `db:"operating_period" json:"operating_period"      validate:"required,daterange"`
	Description     *string `db:"description"      json:"description,omitempty"`
	Active          *bool   `db:"active"           json:"active,omitempty"`
}

type HotelResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	NameZH          string  `json:"name_zh"`
	NameEN          string  `json:"name_en"`
	Address         string  `json:"address"`
	StarRating      *int    `json:"star_rating,omitempty"`
	OperatingPeriod string  `json:"operating_period"`
	Description     *string `json:"description,omitempty"`
	Active          bool    `json:"active"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(mod model.Hotel) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.NameZH = mod.NameZH
	r.NameEN = mod.NameEN
	r.Address = mod.Address
	r.StarRating = mod.StarRating
	r.OperatingPeriod = mod.OperatingPeriod
	r.Description = mod.Description
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type HotelDetailResponse struct {
	HotelResponse
	RoomTypes []roomDto.RoomTypeResponse `json:"room_types"`
}

type GetHotelsResponse struct {
	Hotels     []HotelResponse `json:"hotels"`
	Pagination gDto.Pagination `json:"pagination"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, total, page, limit int) {
	r.Pagination = gDto.Pagination{
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: shared.CalculateTotalPage(total, limit),
	}

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
