package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/mapper"
	"furniture-admin-api/internal/repository"
	"furniture-admin-api/internal/response"
)

// RoleService layers permission assignment on top of the generic
// operation set
type RoleService struct {
	*BaseService[domain.Role, *domain.Role, dto.RoleRequest, dto.RoleResponse]
	db     *gorm.DB
	logger *zap.Logger
}

// NewRoleService creates a RoleService
func NewRoleService(deps Deps) *RoleService {
	repo := repository.New[domain.Role, *domain.Role](deps.DB, "role").WithPreloads("Permissions")

	base := NewBaseService(Config[domain.Role, *domain.Role, dto.RoleRequest, dto.RoleResponse]{
		Repo:             repo,
		Mapper:           mapper.NewRoleMapper(),
		Translator:       deps.Translator,
		Configs:          deps.Configs,
		SQLExport:        deps.SQLExport,
		Fields:           mapper.RoleFields(),
		ImportConfigPath: "role-import-config.json",
		ExportConfigPath: "role-export-config.json",
		Logger:           deps.Logger,
	})

	return &RoleService{BaseService: base, db: deps.DB, logger: deps.Logger}
}

// Create persists the role, then assigns the requested permissions
func (s *RoleService) Create(ctx context.Context, actor string, req dto.RoleRequest) (dto.RoleResponse, error) {
	res, err := s.BaseService.Create(ctx, actor, req)
	if err != nil {
		return res, err
	}
	if len(req.PermissionNames) > 0 {
		if err := s.replacePermissions(ctx, res.ID, req.PermissionNames); err != nil {
			return res, err
		}
		return s.GetByID(ctx, res.ID)
	}
	return res, nil
}

// Update merges the request and replaces the permission set when
// permission names are present
func (s *RoleService) Update(ctx context.Context, actor string, id uint, req dto.RoleRequest) (dto.RoleResponse, error) {
	res, err := s.BaseService.Update(ctx, actor, id, req)
	if err != nil {
		return res, err
	}
	if req.PermissionNames != nil {
		if err := s.replacePermissions(ctx, id, req.PermissionNames); err != nil {
			return res, err
		}
		return s.GetByID(ctx, id)
	}
	return res, nil
}

func (s *RoleService) replacePermissions(ctx context.Context, id uint, names []string) error {
	role, err := s.Repo().FindByID(ctx, id)
	if err != nil {
		return err
	}

	var permissions []domain.Permission
	if len(names) > 0 {
		err := s.db.WithContext(ctx).
			Where("name IN ?", names).
			Where("is_deleted = ?", false).
			Find(&permissions).Error
		if err != nil {
			return response.NewInternal("failed to resolve permissions", err)
		}
		if len(permissions) != len(names) {
			return response.NewValidation("one or more permissions do not exist")
		}
	}

	err = s.db.WithContext(ctx).Model(role).Association("Permissions").Replace(permissions)
	if err != nil {
		s.logger.Error("failed to replace role permissions", zap.Uint("id", id), zap.Error(err))
		return response.NewInternal("failed to assign permissions", err)
	}
	return nil
}
