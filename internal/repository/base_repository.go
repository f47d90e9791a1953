package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/response"
)

var naming = schema.NamingStrategy{}

var sortFieldPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Repository is the generic persistence layer shared by every entity.
// T is the entity struct, PT its pointer type carrying the Entity methods.
//
// Listing and matching exclude soft-deleted rows unless the caller's scope
// says otherwise. Save inserts new entities and applies a version-checked
// update to existing ones: a stale version fails with a CONFLICT error
// instead of overwriting a concurrent write.
type Repository[T any, PT interface {
	*T
	domain.Entity
}] struct {
	db         *gorm.DB
	entityName string
	preloads   []string
}

// New creates a Repository for one entity type
func New[T any, PT interface {
	*T
	domain.Entity
}](db *gorm.DB, entityName string) *Repository[T, PT] {
	return &Repository[T, PT]{db: db, entityName: entityName}
}

// WithPreloads returns a repository that eagerly loads the named
// associations on every read
func (r *Repository[T, PT]) WithPreloads(associations ...string) *Repository[T, PT] {
	return &Repository[T, PT]{db: r.db, entityName: r.entityName, preloads: associations}
}

func (r *Repository[T, PT]) reader(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	for _, assoc := range r.preloads {
		db = db.Preload(assoc)
	}
	return db
}

// DB exposes the underlying handle for entity-specific queries layered on
// top of the generic contract (association replacement, custom lookups)
func (r *Repository[T, PT]) DB() *gorm.DB {
	return r.db
}

// EntityName returns the name used in error messages
func (r *Repository[T, PT]) EntityName() string {
	return r.entityName
}

// FindByID loads one entity by its numeric id
func (r *Repository[T, PT]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.reader(ctx).First(&entity, id).Error; err != nil {
		return nil, r.wrapLookupErr(err, id)
	}
	return &entity, nil
}

// FindByUUID loads one entity by its external-facing UUID
func (r *Repository[T, PT]) FindByUUID(ctx context.Context, uuid string) (*T, error) {
	var entity T
	if err := r.reader(ctx).Where("uuid = ?", uuid).First(&entity).Error; err != nil {
		return nil, r.wrapLookupErr(err, uuid)
	}
	return &entity, nil
}

// FindByCode loads one entity by its human-assigned code
func (r *Repository[T, PT]) FindByCode(ctx context.Context, code string) (*T, error) {
	var entity T
	if err := r.reader(ctx).Where("code = ?", code).First(&entity).Error; err != nil {
		return nil, r.wrapLookupErr(err, code)
	}
	return &entity, nil
}

// ListNotDeleted returns all active entities
func (r *Repository[T, PT]) ListNotDeleted(ctx context.Context) ([]*T, error) {
	var entities []*T
	if err := r.reader(ctx).Where("is_deleted = ?", false).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// ListNotDeletedPaged returns one page of active entities plus the total count
func (r *Repository[T, PT]) ListNotDeletedPaged(ctx context.Context, page dto.PageRequest) (dto.Page[*T], error) {
	scope := func(db *gorm.DB) *gorm.DB {
		return db.Where("is_deleted = ?", false)
	}
	return r.FindMatchingPaged(ctx, scope, page)
}

// FindMatching returns all entities matching the predicate scope
func (r *Repository[T, PT]) FindMatching(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*T, error) {
	var entities []*T
	if err := r.reader(ctx).Scopes(scope).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindMatchingPaged returns one page of entities matching the predicate
// scope plus the total count of matches across all pages
func (r *Repository[T, PT]) FindMatchingPaged(ctx context.Context, scope func(*gorm.DB) *gorm.DB, page dto.PageRequest) (dto.Page[*T], error) {
	page = page.Normalize()

	var model T
	var total int64
	if err := r.db.WithContext(ctx).Model(&model).Scopes(scope).Count(&total).Error; err != nil {
		return dto.Page[*T]{}, err
	}

	query := r.reader(ctx).Scopes(scope).Offset(page.Offset()).Limit(page.Size)
	if order, ok := orderClause(page.Sort); ok {
		query = query.Order(order)
	}

	var entities []*T
	if err := query.Find(&entities).Error; err != nil {
		return dto.Page[*T]{}, err
	}

	return dto.Page[*T]{
		Items:      entities,
		TotalCount: total,
		Page:       page.Page,
		Size:       page.Size,
	}, nil
}

// Save inserts the entity when it has no id yet, otherwise performs a
// version-checked update. The stored version must equal the entity's
// version for the update to apply; on success the version advances by one.
func (r *Repository[T, PT]) Save(ctx context.Context, entity PT) error {
	if entity.GetID() == 0 {
		return r.db.WithContext(ctx).Create(entity).Error
	}

	current := entity.GetVersion()
	entity.SetVersion(current + 1)

	result := r.db.WithContext(ctx).
		Model(entity).
		Select("*").
		Omit("id", "uuid", "created_at", "created_by").
		Where("version = ?", current).
		Updates(entity)
	if result.Error != nil {
		entity.SetVersion(current)
		return result.Error
	}

	if result.RowsAffected == 0 {
		entity.SetVersion(current)
		exists, err := r.ExistsByID(ctx, entity.GetID())
		if err != nil {
			return err
		}
		if !exists {
			return response.NewNotFound(r.entityName, entity.GetID())
		}
		return response.NewConflict(r.entityName, nil)
	}
	return nil
}

// Count returns the number of active rows
func (r *Repository[T, PT]) Count(ctx context.Context) (int64, error) {
	var model T
	var count int64
	err := r.db.WithContext(ctx).Model(&model).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}

// ExistsByID reports whether a row with this id exists, deleted or not
func (r *Repository[T, PT]) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var model T
	var count int64
	err := r.db.WithContext(ctx).Model(&model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByField reports whether an active row already carries this value
// in the named entity field. Used by the import engine's uniqueness probe;
// the field name comes from server-side mapping config.
func (r *Repository[T, PT]) ExistsByField(ctx context.Context, field string, value any) (bool, error) {
	if !sortFieldPattern.MatchString(field) {
		return false, nil
	}
	column := naming.ColumnName("", field)

	var model T
	var count int64
	err := r.db.WithContext(ctx).Model(&model).
		Where(column+" = ?", value).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository[T, PT]) wrapLookupErr(err error, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewNotFound(r.entityName, key)
	}
	return err
}

// orderClause turns "field" or "field,desc" into a safe ORDER BY fragment
func orderClause(sort string) (string, bool) {
	if sort == "" {
		return "", false
	}
	parts := strings.SplitN(sort, ",", 2)
	field := strings.TrimSpace(parts[0])
	if !sortFieldPattern.MatchString(field) {
		return "", false
	}
	clause := naming.ColumnName("", field)
	if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
		clause += " DESC"
	}
	return clause, true
}
