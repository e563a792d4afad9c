/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-16 10:02:40
 * @LastEditTime: 2026-03-08 23:30:18
 * @LastEditors: 安知鱼
 */
package server

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/qingyu-board/internal/app/middleware"
	"github.com/anzhiyu-c/qingyu-board/internal/infra/database"
	"github.com/anzhiyu-c/qingyu-board/internal/infra/platform"
	"github.com/anzhiyu-c/qingyu-board/internal/infra/router"
	"github.com/anzhiyu-c/qingyu-board/pkg/config"
	auth_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/auth"
	comment_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/comment"
	notice_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/notice"
	post_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/post"
	support_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/support"
	user_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/user"
	auth_service "github.com/anzhiyu-c/qingyu-board/pkg/service/auth"
	comment_service "github.com/anzhiyu-c/qingyu-board/pkg/service/comment"
	notice_service "github.com/anzhiyu-c/qingyu-board/pkg/service/notice"
	post_service "github.com/anzhiyu-c/qingyu-board/pkg/service/post"
	support_service "github.com/anzhiyu-c/qingyu-board/pkg/service/support"
	"github.com/anzhiyu-c/qingyu-board/pkg/service/utility"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg      *config.Config
	engine   *gin.Engine
	cacheSvc utility.CacheService
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	// 所有持久化都托管在平台侧，这里只建 HTTP 客户端
	platformClient, err := platform.NewClient(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化平台客户端失败: %w", err)
	}

	// 尝试连接 Redis（如果失败，将自动降级到内存缓存）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	cleanup := func() {
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	// --- Phase 3: 初始化数据仓库层 ---
	authAPI := platform.NewAuthAPI(platformClient)
	postRepo := platform.NewPostRepo(platformClient)
	commentRepo := platform.NewCommentRepo(platformClient)
	supportRepo := platform.NewSupportRepo(platformClient)
	inquiryRepo := platform.NewInquiryRepo(platformClient)
	noticeRepo := platform.NewNoticeRepo(platformClient)

	// --- Phase 4: 初始化业务逻辑层 ---
	// 使用智能缓存工厂，自动选择 Redis 或内存缓存
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	authSvc := auth_service.NewService(authAPI)
	postSvc := post_service.NewService(postRepo, cacheSvc)
	commentSvc := comment_service.NewService(commentRepo, cacheSvc)
	supportSvc := support_service.NewService(supportRepo, inquiryRepo)
	noticeSvc := notice_service.NewService(noticeRepo)

	// --- Phase 5: 初始化表现层 (Handlers) ---
	cookieName := cfg.GetString(config.KeySessionCookie)
	if cookieName == "" {
		cookieName = "qy_session"
	}
	cookieSecure := cfg.GetBool(config.KeySessionSecure)
	jwtSecret := cfg.GetString(config.KeyPlatformJWTSecret)
	if jwtSecret == "" {
		return nil, cleanup, fmt.Errorf("缺少 Platform.JWTSecret 配置，无法校验会话")
	}

	mw := middleware.NewMiddleware(cookieName, []byte(jwtSecret))
	authHandler := auth_handler.NewHandler(authSvc, cookieName, cookieSecure)
	userHandler := user_handler.NewHandler(authSvc, postSvc, supportSvc)
	postHandler := post_handler.NewHandler(postSvc, commentSvc)
	commentHandler := comment_handler.NewHandler(commentSvc)
	supportHandler := support_handler.NewHandler(supportSvc)
	noticeHandler := notice_handler.NewHandler(noticeSvc)

	// --- Phase 6: 初始化路由 ---
	appRouter := router.NewRouter(
		authHandler,
		userHandler,
		postHandler,
		commentHandler,
		supportHandler,
		noticeHandler,
		mw,
	)

	// --- Phase 7: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	err = engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})
	if err != nil {
		return nil, cleanup, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.Cors())
	appRouter.Setup(engine)

	app := &App{
		cfg:      cfg,
		engine:   engine,
		cacheSvc: cacheSvc,
	}

	return app, cleanup, nil
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

func (a *App) CacheService() utility.CacheService {
	return a.cacheSvc
}

func (a *App) Run() error {
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8093"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}
