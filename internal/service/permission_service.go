package service

import (
	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/mapper"
	"furniture-admin-api/internal/repository"
)

// PermissionService is the generic operation set instantiated for
// permissions
type PermissionService struct {
	*BaseService[domain.Permission, *domain.Permission, dto.PermissionRequest, dto.PermissionResponse]
}

// NewPermissionService creates a PermissionService
func NewPermissionService(deps Deps) *PermissionService {
	repo := repository.New[domain.Permission, *domain.Permission](deps.DB, "permission")

	base := NewBaseService(Config[domain.Permission, *domain.Permission, dto.PermissionRequest, dto.PermissionResponse]{
		Repo:             repo,
		Mapper:           mapper.NewPermissionMapper(),
		Translator:       deps.Translator,
		Configs:          deps.Configs,
		SQLExport:        deps.SQLExport,
		Fields:           mapper.PermissionFields(),
		ImportConfigPath: "permission-import-config.json",
		ExportConfigPath: "permission-export-config.json",
		Logger:           deps.Logger,
	})

	return &PermissionService{BaseService: base}
}
