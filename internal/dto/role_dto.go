package dto

import "time"

// RoleRequest is the payload for creating or updating a role
type RoleRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description,omitempty"`
	Code            *string  `json:"code,omitempty"`
	PermissionNames []string `json:"permissionNames,omitempty"`
}

// RoleResponse is the role representation returned to clients
type RoleResponse struct {
	ID          uint                 `json:"id"`
	UUID        string               `json:"uuid"`
	Code        *string              `json:"code,omitempty"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Permissions []PermissionResponse `json:"permissions,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Version     int64                `json:"version"`
}

// PermissionRequest is the payload for creating or updating a permission
type PermissionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description,omitempty"`
	Code        *string `json:"code,omitempty"`
}

// PermissionResponse is the permission representation returned to clients
type PermissionResponse struct {
	ID          uint      `json:"id"`
	UUID        string    `json:"uuid"`
	Code        *string   `json:"code,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Version     int64     `json:"version"`
}
