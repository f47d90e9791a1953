package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"furniture-admin-api/internal/auth"
	"furniture-admin-api/internal/config"
	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/excel"
	"furniture-admin-api/internal/handler"
	"furniture-admin-api/internal/metrics"
	"furniture-admin-api/internal/middleware"
	"furniture-admin-api/internal/search"
	"furniture-admin-api/internal/service"
)

// Setup wires the full HTTP surface: one CRUD route set per entity, the
// auth endpoints, health and metrics
func Setup(cfg *config.Config, db *gorm.DB, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	deps := service.Deps{
		DB:         db,
		Translator: search.NewTranslator(logger),
		Configs:    excel.NewConfigReader(cfg.Excel.ConfigDir, logger),
		SQLExport:  excel.NewSQLExporter(db, cfg.Excel.SQLDir, logger),
		Logger:     logger,
	}

	users := service.NewUserService(deps)
	roles := service.NewRoleService(deps)
	permissions := service.NewPermissionService(deps)
	charts := service.NewChartService(deps)
	provinces := service.NewProvinceService(deps)

	authService := auth.NewService(db, users, cfg.Auth.SecretKey, cfg.Auth.TokenTTL, logger)

	health := handler.NewHealthHandler(db)
	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	handler.NewAuthHandler(authService, logger).RegisterRoutes(api.Group("/auth"))

	protected := api.Group("")
	protected.Use(middleware.Auth(authService))

	handler.NewBaseHandler[dto.UserRequest, dto.UserResponse](
		users, "user", m, logger).RegisterRoutes(protected.Group("/users"))
	handler.NewBaseHandler[dto.RoleRequest, dto.RoleResponse](
		roles, "role", m, logger).RegisterRoutes(protected.Group("/roles"))
	handler.NewBaseHandler[dto.PermissionRequest, dto.PermissionResponse](
		permissions, "permission", m, logger).RegisterRoutes(protected.Group("/permissions"))
	handler.NewBaseHandler[dto.ChartRequest, dto.ChartResponse](
		charts, "chart", m, logger).RegisterRoutes(protected.Group("/charts"))
	handler.NewBaseHandler[dto.ProvinceRequest, dto.ProvinceResponse](
		provinces, "province", m, logger).RegisterRoutes(protected.Group("/provinces"))

	return r
}
