package model

import (
	"time"

	"github.com/muhammadheryan/ads-board/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64        `db:"id" json:"id"`
	Username     string        `db:"username" json:"username"`
	Email        string        `db:"email" json:"email"`
	PasswordHash string        `db:"password_hash" json:"-"`
	FirstName    string        `db:"first_name" json:"firstName"`
	LastName     string        `db:"last_name" json:"lastName"`
	Phone        string        `db:"phone" json:"phone"`
	Role         constant.Role `db:"role" json:"role"`
	Image        *string       `db:"image" json:"image,omitempty"`
	CreatedAt    time.Time     `db:"created_at" json:"-"`
	UpdatedAt    *time.Time    `db:"updated_at" json:"-"`
}

func (u *UserEntity) IsAdmin() bool {
	return u.Role == constant.RoleAdmin
}

func (u *UserEntity) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      u.Role,
		Image:     StringValue(u.Image),
	}
}

// UserFilter for querying users
type UserFilter struct {
	ID       uint64
	Email    string
	Username string
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	ID    uint64
	Email string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Username  string        `json:"username" validate:"required,min=4,max=32"`
	Email     string        `json:"email" validate:"required,email,max=255"`
	Password  string        `json:"password" validate:"required,min=8,max=256"`
	FirstName string        `json:"firstName" validate:"required,min=2,max=32"`
	LastName  string        `json:"lastName" validate:"required,min=2,max=32"`
	Phone     string        `json:"phone" validate:"required,phone"`
	Role      constant.Role `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

// LoginRequest for user login (accepts email or username)
type LoginRequest struct {
	Identifier string `json:"username" validate:"required"` // email or username
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

type RegisterResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserResponse struct {
	ID        uint64        `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Phone     string        `json:"phone"`
	Role      constant.Role `json:"role"`
	Image     string        `json:"image"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=32"`
	LastName  string `json:"lastName" validate:"required,min=2,max=32"`
	Phone     string `json:"phone" validate:"required,phone"`
}

type NewPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=8,max=256"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=256"`
}
