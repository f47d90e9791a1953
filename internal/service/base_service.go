package service

import (
	"context"

	"go.uber.org/zap"

	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/excel"
	"furniture-admin-api/internal/repository"
	"furniture-admin-api/internal/search"
)

// Mapper converts between an entity and its request/response DTOs. One
// implementation per entity; the generic service only consumes the
// contract and never inspects entity fields itself.
type Mapper[T any, Req any, Res any] interface {
	ToEntity(req Req) (*T, error)
	ToResponse(entity *T) Res
	UpdateEntity(req Req, entity *T) error
}

// Config wires one entity's collaborators into a BaseService
type Config[T any, PT interface {
	*T
	domain.Entity
}, Req any, Res any] struct {
	Repo       *repository.Repository[T, PT]
	Mapper     Mapper[T, Req, Res]
	Translator *search.Translator
	Configs    *excel.ConfigReader
	SQLExport  *excel.SQLExporter
	Fields     excel.FieldMap[T]

	ImportConfigPath string
	ExportConfigPath string

	// ValidateEntity is the optional cross-field hook applied to imported
	// rows after the generic column rules
	ValidateEntity func(entity *T) string

	Logger *zap.Logger
}

// BaseService implements the uniform operation set every entity exposes:
// CRUD, soft delete, dynamic search, and Excel import/export. Writes take
// an explicit actor for the audit columns; there is no ambient current
// user.
type BaseService[T any, PT interface {
	*T
	domain.Entity
}, Req any, Res any] struct {
	repo       *repository.Repository[T, PT]
	mapper     Mapper[T, Req, Res]
	translator *search.Translator
	configs    *excel.ConfigReader
	sqlExport  *excel.SQLExporter
	fields     excel.FieldMap[T]

	importConfigPath string
	exportConfigPath string
	validateEntity   func(entity *T) string

	logger *zap.Logger
}

// NewBaseService creates a BaseService from its wiring
func NewBaseService[T any, PT interface {
	*T
	domain.Entity
}, Req any, Res any](cfg Config[T, PT, Req, Res]) *BaseService[T, PT, Req, Res] {
	return &BaseService[T, PT, Req, Res]{
		repo:             cfg.Repo,
		mapper:           cfg.Mapper,
		translator:       cfg.Translator,
		configs:          cfg.Configs,
		sqlExport:        cfg.SQLExport,
		fields:           cfg.Fields,
		importConfigPath: cfg.ImportConfigPath,
		exportConfigPath: cfg.ExportConfigPath,
		validateEntity:   cfg.ValidateEntity,
		logger:           cfg.Logger,
	}
}

// Repo exposes the repository for entity-specific services layered on top
func (s *BaseService[T, PT, Req, Res]) Repo() *repository.Repository[T, PT] {
	return s.repo
}

// Create maps the request to a new entity and persists it
func (s *BaseService[T, PT, Req, Res]) Create(ctx context.Context, actor string, req Req) (Res, error) {
	var zero Res
	entity, err := s.mapper.ToEntity(req)
	if err != nil {
		return zero, err
	}

	p := PT(entity)
	p.SetCreatedBy(actor)
	p.SetUpdatedBy(actor)

	if err := s.repo.Save(ctx, p); err != nil {
		s.logger.Error("failed to create entity",
			zap.String("entity", s.repo.EntityName()), zap.Error(err))
		return zero, err
	}
	return s.mapper.ToResponse(entity), nil
}

// Update merges the request onto the stored entity and persists it; a
// stale version surfaces as a conflict
func (s *BaseService[T, PT, Req, Res]) Update(ctx context.Context, actor string, id uint, req Req) (Res, error) {
	var zero Res
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}

	if err := s.mapper.UpdateEntity(req, entity); err != nil {
		return zero, err
	}

	p := PT(entity)
	p.SetUpdatedBy(actor)

	if err := s.repo.Save(ctx, p); err != nil {
		return zero, err
	}
	return s.mapper.ToResponse(entity), nil
}

// GetByID loads one entity by numeric id
func (s *BaseService[T, PT, Req, Res]) GetByID(ctx context.Context, id uint) (Res, error) {
	var zero Res
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.mapper.ToResponse(entity), nil
}

// GetByUUID loads one entity by its external identifier
func (s *BaseService[T, PT, Req, Res]) GetByUUID(ctx context.Context, uuid string) (Res, error) {
	var zero Res
	entity, err := s.repo.FindByUUID(ctx, uuid)
	if err != nil {
		return zero, err
	}
	return s.mapper.ToResponse(entity), nil
}

// GetAll returns every active entity
func (s *BaseService[T, PT, Req, Res]) GetAll(ctx context.Context) ([]Res, error) {
	entities, err := s.repo.ListNotDeleted(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]Res, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, s.mapper.ToResponse(entity))
	}
	return responses, nil
}

// GetAllPaged returns one page of active entities
func (s *BaseService[T, PT, Req, Res]) GetAllPaged(ctx context.Context, page dto.PageRequest) (dto.Page[Res], error) {
	entities, err := s.repo.ListNotDeletedPaged(ctx, page)
	if err != nil {
		return dto.Page[Res]{}, err
	}
	return dto.MapPage(entities, s.mapper.ToResponse), nil
}

// DeleteByID soft-deletes the entity; the row stays in the store
func (s *BaseService[T, PT, Req, Res]) DeleteByID(ctx context.Context, actor string, id uint) error {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.softDelete(ctx, actor, entity)
}

// DeleteByUUID soft-deletes the entity addressed by UUID
func (s *BaseService[T, PT, Req, Res]) DeleteByUUID(ctx context.Context, actor string, uuid string) error {
	entity, err := s.repo.FindByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	return s.softDelete(ctx, actor, entity)
}

func (s *BaseService[T, PT, Req, Res]) softDelete(ctx context.Context, actor string, entity *T) error {
	p := PT(entity)
	p.MarkDeleted()
	p.SetUpdatedBy(actor)
	return s.repo.Save(ctx, p)
}

// Search runs the criteria-translated query and maps the matching page
func (s *BaseService[T, PT, Req, Res]) Search(ctx context.Context, req *search.Request, page dto.PageRequest) (dto.Page[Res], error) {
	scope := s.translator.Scope(req)
	entities, err := s.repo.FindMatchingPaged(ctx, scope, page)
	if err != nil {
		return dto.Page[Res]{}, err
	}
	return dto.MapPage(entities, s.mapper.ToResponse), nil
}

// Import runs the Excel pipeline over the uploaded workbook and returns
// the annotated result workbook. Rows persist independently: one bad row
// never rolls back its neighbours.
func (s *BaseService[T, PT, Req, Res]) Import(ctx context.Context, actor string, data []byte) ([]byte, error) {
	cfg, err := s.configs.ReadConfig(s.importConfigPath)
	if err != nil {
		return nil, err
	}

	deps := excel.ImportDeps[T]{
		Config:         cfg,
		Fields:         s.fields,
		NewEntity:      func() *T { return new(T) },
		ExistsByField:  s.repo.ExistsByField,
		ValidateEntity: s.validateEntity,
		Save: func(ctx context.Context, entity *T) error {
			p := PT(entity)
			p.SetCreatedBy(actor)
			p.SetUpdatedBy(actor)
			return s.repo.Save(ctx, p)
		},
		Logger: s.logger,
	}

	return excel.Import(ctx, deps, data)
}

// Export writes matching rows (or all active rows when req is nil) into a
// workbook. A config with a SQL source streams the query result instead.
func (s *BaseService[T, PT, Req, Res]) Export(ctx context.Context, req *search.Request) ([]byte, error) {
	cfg, err := s.configs.ReadConfig(s.exportConfigPath)
	if err != nil {
		return nil, err
	}

	if cfg.SqlFilePath != "" && s.sqlExport != nil {
		return s.sqlExport.Export(ctx, cfg)
	}

	var entities []*T
	if req != nil {
		entities, err = s.repo.FindMatching(ctx, s.translator.Scope(req))
	} else {
		entities, err = s.repo.ListNotDeleted(ctx)
	}
	if err != nil {
		return nil, err
	}

	return excel.Export(cfg, s.fields, entities, s.logger)
}

// GenerateTemplate produces an empty workbook with the configured headers
func (s *BaseService[T, PT, Req, Res]) GenerateTemplate() ([]byte, error) {
	cfg, err := s.configs.ReadConfig(s.importConfigPath)
	if err != nil {
		return nil, err
	}
	return excel.Template(cfg)
}
