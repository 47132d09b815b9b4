package dto

import (
	"innkeep/infras/jwt"
	userModel "innkeep/internal/domains/user/model"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	UserName  string `json:"user_name"            validate:"required,min=3,max=32"`
	Password  string `json:"password"             validate:"required,min=8"`
	Email     string `json:"email"                validate:"required,email"`
	AdminCode string `json:"admin_code,omitempty"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string, isAdmin bool) userModel.User {
	return userModel.User{
		ID:       uuid.NewString(),
		UserName: r.UserName,
		Password: hashedPassword,
		Email:    r.Email,
		IsAdmin:  isAdmin,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password"  validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	IsAdmin      bool   `json:"is_admin"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair, isAdmin bool) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
	l.IsAdmin = isAdmin
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}
