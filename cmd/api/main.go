package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookstore-inventory/docs"
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
	"github.com/xiebiao/bookstore-inventory/pkg/response"
)

// @title                      Bookstore Inventory API
// @version                    1.0
// @description                多租户书店库存管理服务：用户、图书、书店与库存台账
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization

// main 主程序入口
// 说明：手动依赖注入（wire.go提供等价的生成版本）
func main() {
	// 1. 加载配置
	// 注意：jwt.secret为空时Load直接报错，服务拒绝启动
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	storeRepo := mysql.NewBookstoreRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire)

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)
	storeService := bookstore.NewService(storeRepo)

	// 应用层
	loginUseCase := appauth.NewLoginUseCase(userRepo, userService, jwtManager, sessionStore)
	logoutUseCase := appauth.NewLogoutUseCase(jwtManager, sessionStore)
	updateQuantityUseCase := appstore.NewUpdateQuantityUseCase(storeRepo, bookRepo, txManager)

	// 接口层
	authHandler := handler.NewAuthHandler(loginUseCase, logoutUseCase)
	userHandler := handler.NewUserHandler(userService)
	bookHandler := handler.NewBookHandler(bookService)
	storeHandler := handler.NewBookstoreHandler(storeService, updateQuantityUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)
	m := metrics.New()

	// 5. 初始化Gin引擎
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

	// 6. 注册路由
	registerRoutes(r, authHandler, userHandler, bookHandler, storeHandler, authMiddleware, m)

	// 7. 启动服务（优雅关闭）
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n🚀 服务启动成功！\n")
		fmt.Printf("   访问地址: http://localhost%s\n", addr)
		fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
		fmt.Printf("   接口文档: http://localhost%s/swagger/index.html\n", addr)
		fmt.Printf("\n按Ctrl+C停止服务\n\n")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务关闭失败: %v", err)
	}
	fmt.Println("✓ 服务已退出")
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	storeHandler *handler.BookstoreHandler,
	authMiddleware *middleware.AuthMiddleware,
	m *metrics.Metrics,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// 监控与文档
	r.GET("/metrics", m.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 认证模块
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
	}

	// 用户模块（公开接口）
	users := r.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.PATCH("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	// 图书模块（读公开，写需要ADMIN角色）
	books := r.Group("/books")
	{
		books.GET("", bookHandler.List)
		books.GET("/:id", bookHandler.Get)

		adminOnly := books.Group("")
		adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			adminOnly.POST("", bookHandler.Create)
			adminOnly.PATCH("/:id", bookHandler.Update)
			adminOnly.DELETE("/:id", bookHandler.Delete)
		}
	}

	// 书店模块
	stores := r.Group("/bookstores")
	{
		stores.GET("", storeHandler.List)
		stores.GET("/:id", storeHandler.Get)

		// 创建书店需要ADMIN角色
		stores.POST("",
			authMiddleware.RequireAuth(),
			authMiddleware.RequireRole(user.RoleAdmin),
			storeHandler.Create,
		)

		// 库存变更需要STORE_MANAGER角色
		stores.PATCH("/:storeId/quantity/:bookId",
			authMiddleware.RequireAuth(),
			authMiddleware.RequireRole(user.RoleStoreManager),
			storeHandler.UpdateQuantity,
		)
	}
}
