package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dataetica/dataetica-api/config"
	"github.com/dataetica/dataetica-api/internal/adapters/token"
	"github.com/dataetica/dataetica-api/internal/data"
	"github.com/dataetica/dataetica-api/internal/ports"
	"github.com/dataetica/dataetica-api/internal/ratelimit"
	"github.com/dataetica/dataetica-api/internal/service"
)

const tokenIssuer = "dataetica-api"

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth       *service.AuthService
	Posts      *service.PostService
	Categories *service.CategoryService
	Audit      *service.AuditService
	AuditRepo  *data.AuditRepo
	Limiter    *ratelimit.Limiter
	Cache      *data.RedisPostCache
	Users      *data.UserRepo
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires repositories, adapters, and services.
func BuildServices(deps ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config

	codec, err := token.NewJWTCodec([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL, tokenIssuer)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build token codec: %w", err)
	}

	userRepo := data.NewUserRepo(deps.DB)
	postRepo := data.NewPostRepo(deps.DB)
	categoryRepo := data.NewCategoryRepo(deps.DB)
	auditRepo := data.NewAuditRepo(deps.DB)

	var (
		redisCache *data.RedisPostCache
		postCache  ports.PostCache
	)
	if deps.RedisClient != nil {
		redisCache = data.NewRedisPostCache(deps.RedisClient)
		postCache = redisCache
	}

	auditSvc := service.NewAuditService(auditRepo, deps.Logger)

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Users:  userRepo,
		Tokens: codec,
		Audit:  auditSvc,
		Logger: deps.Logger,
	})

	postSvc := service.NewPostService(service.PostServiceOptions{
		Posts:   postRepo,
		Cache:   postCache,
		Audit:   auditSvc,
		Logger:  deps.Logger,
		PostTTL: cfg.Cache.PostTTL,
		PageTTL: cfg.Cache.PageTTL,
	})

	categorySvc := service.NewCategoryService(service.CategoryServiceOptions{
		Categories: categoryRepo,
		Audit:      auditSvc,
		Logger:     deps.Logger,
	})

	return ServiceContainer{
		Auth:       authSvc,
		Posts:      postSvc,
		Categories: categorySvc,
		Audit:      auditSvc,
		AuditRepo:  auditRepo,
		Limiter:    ratelimit.New(),
		Cache:      redisCache,
		Users:      userRepo,
	}, nil
}
