package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultUserName   = "Jacques-Yves Cousteau"
	DefaultUserAbout  = "Explorer"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User represents the users collection in the database.
// Password holds the bcrypt hash and is never serialized to clients.
type User struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	About    string             `json:"about" bson:"about"`
	Avatar   string             `json:"avatar" bson:"avatar"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password,omitempty"`
}

// UserUpdate carries the fields a user may change on their own record.
// Nil fields are left untouched.
type UserUpdate struct {
	Name   *string
	About  *string
	Avatar *string
}

type SignupRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=30"`
	About    string `json:"about" validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" validate:"omitempty,weburl"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

type AvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,weburl"`
}

// SignupResponse is the only view of a freshly created user.
type SignupResponse struct {
	ID    primitive.ObjectID `json:"_id"`
	Email string             `json:"email"`
}
