package service

import (
	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/mapper"
	"furniture-admin-api/internal/repository"
)

// ChartService is the generic operation set instantiated for charts
type ChartService struct {
	*BaseService[domain.Chart, *domain.Chart, dto.ChartRequest, dto.ChartResponse]
}

// NewChartService creates a ChartService
func NewChartService(deps Deps) *ChartService {
	repo := repository.New[domain.Chart, *domain.Chart](deps.DB, "chart")

	base := NewBaseService(Config[domain.Chart, *domain.Chart, dto.ChartRequest, dto.ChartResponse]{
		Repo:             repo,
		Mapper:           mapper.NewChartMapper(),
		Translator:       deps.Translator,
		Configs:          deps.Configs,
		SQLExport:        deps.SQLExport,
		Fields:           mapper.ChartFields(),
		ImportConfigPath: "chart-import-config.json",
		ExportConfigPath: "chart-export-config.json",
		Logger:           deps.Logger,
	})

	return &ChartService{BaseService: base}
}
