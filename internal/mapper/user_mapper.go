package mapper

import (
	"strings"

	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/excel"
)

// UserMapper converts between User entities and their DTOs. Role names
// are resolved by the service, not here; the mapper only copies scalar
// fields.
type UserMapper struct {
	roles RoleMapper
}

// NewUserMapper creates a UserMapper
func NewUserMapper() UserMapper {
	return UserMapper{roles: NewRoleMapper()}
}

// ToEntity builds a new User from the request. The password is stored as
// given; the service hashes it before the mapper runs.
func (m UserMapper) ToEntity(req dto.UserRequest) (*domain.User, error) {
	return &domain.User{
		BaseModel:   domain.BaseModel{Code: req.Code},
		Name:        req.Name,
		Gender:      domain.Gender(req.Gender),
		Age:         req.Age,
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Dob:         req.Dob,
	}, nil
}

// UpdateEntity merges the request onto an existing User. An empty
// password leaves the stored hash untouched.
func (m UserMapper) UpdateEntity(req dto.UserRequest, entity *domain.User) error {
	entity.Name = req.Name
	entity.Gender = domain.Gender(req.Gender)
	entity.Age = req.Age
	entity.Username = req.Username
	entity.Email = req.Email
	entity.PhoneNumber = req.PhoneNumber
	entity.Dob = req.Dob
	entity.Code = req.Code
	if req.Password != "" {
		entity.Password = req.Password
	}
	return nil
}

// ToResponse maps a User to its client representation
func (m UserMapper) ToResponse(entity *domain.User) dto.UserResponse {
	res := dto.UserResponse{
		ID:          entity.ID,
		UUID:        entity.UUID,
		Code:        entity.Code,
		Name:        entity.Name,
		Gender:      entity.Gender,
		Age:         entity.Age,
		Username:    entity.Username,
		Email:       entity.Email,
		PhoneNumber: entity.PhoneNumber,
		Dob:         entity.Dob,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
		Version:     entity.Version,
	}
	for i := range entity.Roles {
		res.Roles = append(res.Roles, m.roles.ToResponse(&entity.Roles[i]))
	}
	return res
}

// UserFields is the accessor table for the user import/export configs.
// resolveRoles turns role names from a multi-valued cell into stored
// roles; names with no matching role are dropped.
func UserFields(resolveRoles func(names []string) []domain.Role) excel.FieldMap[domain.User] {
	return excel.FieldMap[domain.User]{
		"name": {
			Get: func(u *domain.User) any { return u.Name },
			Set: func(u *domain.User, v any) error {
				s, err := asString(v)
				u.Name = s
				return err
			},
		},
		"username": {
			Get: func(u *domain.User) any { return u.Username },
			Set: func(u *domain.User, v any) error {
				s, err := asString(v)
				u.Username = s
				return err
			},
		},
		"email": {
			Get: func(u *domain.User) any { return u.Email },
			Set: func(u *domain.User, v any) error {
				s, err := asString(v)
				u.Email = s
				return err
			},
		},
		"gender": {
			Get: func(u *domain.User) any {
				if u.Gender == "" {
					return nil
				}
				return string(u.Gender)
			},
			Set: func(u *domain.User, v any) error {
				s, err := asString(v)
				u.Gender = domain.Gender(strings.ToUpper(strings.TrimSpace(s)))
				return err
			},
		},
		"age": {
			Get: func(u *domain.User) any {
				if u.Age == nil {
					return nil
				}
				return *u.Age
			},
			Set: func(u *domain.User, v any) error {
				f, err := asFloat(v)
				if err != nil {
					return err
				}
				age := int(f)
				u.Age = &age
				return nil
			},
		},
		"phoneNumber": {
			Get: func(u *domain.User) any {
				if u.PhoneNumber == "" {
					return nil
				}
				return u.PhoneNumber
			},
			Set: func(u *domain.User, v any) error {
				s, err := asString(v)
				u.PhoneNumber = s
				return err
			},
		},
		"dob": {
			Get: func(u *domain.User) any {
				if u.Dob == nil {
					return nil
				}
				return *u.Dob
			},
			Set: func(u *domain.User, v any) error {
				t, err := asTime(v)
				if err != nil {
					return err
				}
				u.Dob = &t
				return nil
			},
		},
		"roles": {
			Get: func(u *domain.User) any {
				if len(u.Roles) == 0 {
					return nil
				}
				names := make([]string, 0, len(u.Roles))
				for _, role := range u.Roles {
					names = append(names, role.Name)
				}
				return strings.Join(names, ",")
			},
			// multi-valued column: the engine passes the raw cell text
			Set: func(u *domain.User, v any) error {
				s, err := asString(v)
				if err != nil {
					return err
				}
				var names []string
				for _, part := range strings.Split(s, ",") {
					if part = strings.TrimSpace(part); part != "" {
						names = append(names, part)
					}
				}
				if len(names) > 0 && resolveRoles != nil {
					u.Roles = resolveRoles(names)
				}
				return nil
			},
		},
	}
}
