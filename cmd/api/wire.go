//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明：
// 1. Wire在编译期生成依赖组装代码，零运行时开销
// 2. 运行 `wire gen ./cmd/api` 生成wire_gen.go
// 3. main.go中的手动组装与本文件等价，保留两份便于对照

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appauth "github.com/xiebiao/bookstore-inventory/internal/application/auth"
	appstore "github.com/xiebiao/bookstore-inventory/internal/application/bookstore"
	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/bookstore"
	"github.com/xiebiao/bookstore-inventory/internal/domain/user"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-inventory/pkg/jwt"
	"github.com/xiebiao/bookstore-inventory/pkg/metrics"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewBookstoreRepository,
	mysql.NewTxManager,
	wire.Bind(new(appstore.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
	bookstore.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appauth.NewLoginUseCase,
	appauth.NewLogoutUseCase,
	appstore.NewUpdateQuantityUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
	metrics.New,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewBookstoreHandler,
)

// provideJWTManager 从配置创建JWT管理器
// 注意：jwt.NewManager只需要JWT相关的配置字段，Wire无法自动提取，需要手动Provider
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideGinEngine 创建并配置Gin引擎
// 路由注册复用main.go中的registerRoutes
func provideGinEngine(
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	storeHandler *handler.BookstoreHandler,
	authMiddleware *middleware.AuthMiddleware,
	m *metrics.Metrics,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	if cfg.CORS.Enabled {
		r.Use(middleware.CORS(cfg.CORS))
	}
	r.Use(m.Middleware())

	registerRoutes(r, authHandler, userHandler, bookHandler, storeHandler, authMiddleware, m)

	return r
}

// InitializeApp 初始化整个应用
// wire.Build在编译期分析依赖链并生成初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)

	return nil, nil
}
