package mapper

import (
	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/excel"
)

// RoleMapper converts between Role entities and their DTOs
type RoleMapper struct {
	permissions PermissionMapper
}

// NewRoleMapper creates a RoleMapper
func NewRoleMapper() RoleMapper {
	return RoleMapper{permissions: PermissionMapper{}}
}

// ToEntity builds a new Role from the request
func (m RoleMapper) ToEntity(req dto.RoleRequest) (*domain.Role, error) {
	return &domain.Role{
		BaseModel:   domain.BaseModel{Code: req.Code},
		Name:        req.Name,
		Description: req.Description,
	}, nil
}

// UpdateEntity merges the request onto an existing Role
func (m RoleMapper) UpdateEntity(req dto.RoleRequest, entity *domain.Role) error {
	entity.Name = req.Name
	entity.Description = req.Description
	entity.Code = req.Code
	return nil
}

// ToResponse maps a Role to its client representation
func (m RoleMapper) ToResponse(entity *domain.Role) dto.RoleResponse {
	res := dto.RoleResponse{
		ID:          entity.ID,
		UUID:        entity.UUID,
		Code:        entity.Code,
		Name:        entity.Name,
		Description: entity.Description,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
		Version:     entity.Version,
	}
	for i := range entity.Permissions {
		res.Permissions = append(res.Permissions, m.permissions.ToResponse(&entity.Permissions[i]))
	}
	return res
}

// PermissionMapper converts between Permission entities and their DTOs
type PermissionMapper struct{}

// NewPermissionMapper creates a PermissionMapper
func NewPermissionMapper() PermissionMapper {
	return PermissionMapper{}
}

// ToEntity builds a new Permission from the request
func (m PermissionMapper) ToEntity(req dto.PermissionRequest) (*domain.Permission, error) {
	return &domain.Permission{
		BaseModel:   domain.BaseModel{Code: req.Code},
		Name:        req.Name,
		Description: req.Description,
	}, nil
}

// UpdateEntity merges the request onto an existing Permission
func (m PermissionMapper) UpdateEntity(req dto.PermissionRequest, entity *domain.Permission) error {
	entity.Name = req.Name
	entity.Description = req.Description
	entity.Code = req.Code
	return nil
}

// ToResponse maps a Permission to its client representation
func (m PermissionMapper) ToResponse(entity *domain.Permission) dto.PermissionResponse {
	return dto.PermissionResponse{
		ID:          entity.ID,
		UUID:        entity.UUID,
		Code:        entity.Code,
		Name:        entity.Name,
		Description: entity.Description,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
		Version:     entity.Version,
	}
}

// RoleFields is the accessor table for the role import/export configs
func RoleFields() excel.FieldMap[domain.Role] {
	return excel.FieldMap[domain.Role]{
		"name": {
			Get: func(r *domain.Role) any { return r.Name },
			Set: func(r *domain.Role, v any) error {
				s, err := asString(v)
				r.Name = s
				return err
			},
		},
		"description": {
			Get: func(r *domain.Role) any {
				if r.Description == "" {
					return nil
				}
				return r.Description
			},
			Set: func(r *domain.Role, v any) error {
				s, err := asString(v)
				r.Description = s
				return err
			},
		},
	}
}

// PermissionFields is the accessor table for the permission configs
func PermissionFields() excel.FieldMap[domain.Permission] {
	return excel.FieldMap[domain.Permission]{
		"name": {
			Get: func(p *domain.Permission) any { return p.Name },
			Set: func(p *domain.Permission, v any) error {
				s, err := asString(v)
				p.Name = s
				return err
			},
		},
		"description": {
			Get: func(p *domain.Permission) any {
				if p.Description == "" {
					return nil
				}
				return p.Description
			},
			Set: func(p *domain.Permission, v any) error {
				s, err := asString(v)
				p.Description = s
				return err
			},
		},
	}
}
