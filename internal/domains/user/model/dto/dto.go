package dto

import (
	"innkeep/internal/domains/user/model"
	gDto "innkeep/shared/dto"
)

type UserResponse struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.UserName = model.UserName
	r.Email = model.Email
	r.IsAdmin = model.IsAdmin
	r.Metadata.FromModel(model.Metadata)
}
