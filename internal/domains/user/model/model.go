package model

import "innkeep/shared/model"

const (
	TableName  = "user_info"
	EntityName = "user"

	FieldID       = "id"
	FieldUserName = "user_name"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldIsAdmin  = "is_admin"
)

type User struct {
	ID       string `db:"id"`
	UserName string `db:"user_name"`
	Password string `db:"password"`
	Email    string `db:"email"`
	IsAdmin  bool   `db:"is_admin"`
	model.Metadata
}
