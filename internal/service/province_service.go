package service

import (
	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/mapper"
	"furniture-admin-api/internal/repository"
)

// ProvinceService is the generic operation set instantiated for the
// province reference data. Its export config points at a SQL report, so
// Export streams the query result instead of mapping entities.
type ProvinceService struct {
	*BaseService[domain.Province, *domain.Province, dto.ProvinceRequest, dto.ProvinceResponse]
}

// NewProvinceService creates a ProvinceService
func NewProvinceService(deps Deps) *ProvinceService {
	repo := repository.New[domain.Province, *domain.Province](deps.DB, "province")

	base := NewBaseService(Config[domain.Province, *domain.Province, dto.ProvinceRequest, dto.ProvinceResponse]{
		Repo:             repo,
		Mapper:           mapper.NewProvinceMapper(),
		Translator:       deps.Translator,
		Configs:          deps.Configs,
		SQLExport:        deps.SQLExport,
		Fields:           mapper.ProvinceFields(),
		ImportConfigPath: "province-import-config.json",
		ExportConfigPath: "province-export-config.json",
		Logger:           deps.Logger,
	})

	return &ProvinceService{BaseService: base}
}
