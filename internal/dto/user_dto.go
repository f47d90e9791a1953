package dto

import (
	"time"

	"furniture-admin-api/internal/domain"
)

// UserRequest is the payload for creating or updating a user
type UserRequest struct {
	Name        string     `json:"name" binding:"required"`
	Gender      string     `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	Age         *int       `json:"age,omitempty"`
	Username    string     `json:"username" binding:"required,min=3"`
	Password    string     `json:"password,omitempty" binding:"omitempty,min=8"`
	Email       string     `json:"email" binding:"required,email"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Dob         *time.Time `json:"dob,omitempty"`
	Code        *string    `json:"code,omitempty"`
	RoleNames   []string   `json:"roleNames,omitempty"`
}

// UserResponse is the user representation returned to clients. The
// password never leaves the service.
type UserResponse struct {
	ID          uint           `json:"id"`
	UUID        string         `json:"uuid"`
	Code        *string        `json:"code,omitempty"`
	Name        string         `json:"name"`
	Gender      domain.Gender  `json:"gender,omitempty"`
	Age         *int           `json:"age,omitempty"`
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phoneNumber,omitempty"`
	Dob         *time.Time     `json:"dob,omitempty"`
	Roles       []RoleResponse `json:"roles,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Version     int64          `json:"version"`
}
