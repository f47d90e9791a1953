package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"furniture-admin-api/internal/domain"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/excel"
	"furniture-admin-api/internal/mapper"
	"furniture-admin-api/internal/repository"
	"furniture-admin-api/internal/response"
	"furniture-admin-api/internal/search"
)

// Deps bundles the collaborators shared by every entity service
type Deps struct {
	DB         *gorm.DB
	Translator *search.Translator
	Configs    *excel.ConfigReader
	SQLExport  *excel.SQLExporter
	Logger     *zap.Logger
}

// UserService layers password hashing and role assignment on top of the
// generic operation set
type UserService struct {
	*BaseService[domain.User, *domain.User, dto.UserRequest, dto.UserResponse]
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserService creates a UserService
func NewUserService(deps Deps) *UserService {
	repo := repository.New[domain.User, *domain.User](deps.DB, "user").WithPreloads("Roles")

	resolve := func(names []string) []domain.Role {
		var roles []domain.Role
		err := deps.DB.
			Where("name IN ?", names).
			Where("is_deleted = ?", false).
			Find(&roles).Error
		if err != nil {
			deps.Logger.Warn("failed to resolve role names", zap.Strings("names", names), zap.Error(err))
			return nil
		}
		return roles
	}

	base := NewBaseService(Config[domain.User, *domain.User, dto.UserRequest, dto.UserResponse]{
		Repo:             repo,
		Mapper:           mapper.NewUserMapper(),
		Translator:       deps.Translator,
		Configs:          deps.Configs,
		SQLExport:        deps.SQLExport,
		Fields:           mapper.UserFields(resolve),
		ImportConfigPath: "user-import-config.json",
		ExportConfigPath: "user-export-config.json",
		ValidateEntity:   validateUser,
		Logger:           deps.Logger,
	})

	return &UserService{BaseService: base, db: deps.DB, logger: deps.Logger}
}

func validateUser(u *domain.User) string {
	if u.Age != nil && *u.Age < 0 {
		return "Age must not be negative. "
	}
	return ""
}

// Create hashes the password, persists the user, then assigns the
// requested roles
func (s *UserService) Create(ctx context.Context, actor string, req dto.UserRequest) (dto.UserResponse, error) {
	if err := s.hashPassword(&req); err != nil {
		return dto.UserResponse{}, err
	}

	res, err := s.BaseService.Create(ctx, actor, req)
	if err != nil {
		return res, err
	}
	if len(req.RoleNames) > 0 {
		if err := s.replaceRoles(ctx, res.ID, req.RoleNames); err != nil {
			return res, err
		}
		return s.GetByID(ctx, res.ID)
	}
	return res, nil
}

// Update merges the request and replaces the role set when role names are
// present. A nil RoleNames leaves existing assignments alone; an empty
// slice clears them.
func (s *UserService) Update(ctx context.Context, actor string, id uint, req dto.UserRequest) (dto.UserResponse, error) {
	if err := s.hashPassword(&req); err != nil {
		return dto.UserResponse{}, err
	}

	res, err := s.BaseService.Update(ctx, actor, id, req)
	if err != nil {
		return res, err
	}
	if req.RoleNames != nil {
		if err := s.replaceRoles(ctx, id, req.RoleNames); err != nil {
			return res, err
		}
		return s.GetByID(ctx, id)
	}
	return res, nil
}

// FindByUsername loads an active user with roles for credential checks
func (s *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).
		Preload("Roles").
		Where("username = ?", username).
		Where("is_deleted = ?", false).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("user", username)
		}
		return nil, response.NewInternal("failed to load user", err)
	}
	return &user, nil
}

func (s *UserService) hashPassword(req *dto.UserRequest) error {
	if req.Password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return response.NewInternal("failed to hash password", err)
	}
	req.Password = string(hash)
	return nil
}

func (s *UserService) replaceRoles(ctx context.Context, id uint, names []string) error {
	user, err := s.Repo().FindByID(ctx, id)
	if err != nil {
		return err
	}

	var roles []domain.Role
	if len(names) > 0 {
		err := s.db.WithContext(ctx).
			Where("name IN ?", names).
			Where("is_deleted = ?", false).
			Find(&roles).Error
		if err != nil {
			return response.NewInternal("failed to resolve roles", err)
		}
		if len(roles) != len(names) {
			return response.NewValidation("one or more roles do not exist")
		}
	}

	err = s.db.WithContext(ctx).Model(user).Association("Roles").Replace(roles)
	if err != nil {
		s.logger.Error("failed to replace user roles", zap.Uint("id", id), zap.Error(err))
		return response.NewInternal("failed to assign roles", err)
	}
	return nil
}
