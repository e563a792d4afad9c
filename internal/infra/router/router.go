/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-16 09:20:14
 * @LastEditTime: 2026-03-08 23:05:27
 * @LastEditors: 安知鱼
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/qingyu-board/internal/app/middleware"
	auth_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/auth"
	comment_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/comment"
	notice_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/notice"
	post_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/post"
	support_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/support"
	user_handler "github.com/anzhiyu-c/qingyu-board/pkg/handler/user"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	authHandler    *auth_handler.Handler
	userHandler    *user_handler.Handler
	postHandler    *post_handler.Handler
	commentHandler *comment_handler.Handler
	supportHandler *support_handler.Handler
	noticeHandler  *notice_handler.Handler
	mw             *middleware.Middleware
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	authHandler *auth_handler.Handler,
	userHandler *user_handler.Handler,
	postHandler *post_handler.Handler,
	commentHandler *comment_handler.Handler,
	supportHandler *support_handler.Handler,
	noticeHandler *notice_handler.Handler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		authHandler:    authHandler,
		userHandler:    userHandler,
		postHandler:    postHandler,
		commentHandler: commentHandler,
		supportHandler: supportHandler,
		noticeHandler:  noticeHandler,
		mw:             mw,
	}
}

// Setup 将所有路由注册到 Gin 引擎。
// 这是在 main.go 中将被调用的唯一入口点。
func (r *Router) Setup(engine *gin.Engine) {
	// 所有路由都先识别会话，未登录按游客处理
	engine.Use(r.mw.Session())

	r.registerFormRoutes(engine)

	// /api 分组：供前端就地更新的 JSON 接口
	apiGroup := engine.Group("/api")
	apiGroup.Use(NoCacheMiddleware())

	r.registerPostRoutes(apiGroup)
	r.registerNoticeRoutes(apiGroup)
	r.registerUserRoutes(apiGroup)
}

// registerFormRoutes 注册表单提交路由。
// 这些路由返回 303 重定向，提示信息通过一次性查询标记传递。
func (r *Router) registerFormRoutes(engine *gin.Engine) {
	// 注册和匿名留言容易被滥用，挂IP限流
	engine.POST("/signup", middleware.RateLimit(3, 6), r.authHandler.SignUp)
	engine.POST("/login", r.authHandler.SignIn)
	engine.POST("/logout", r.authHandler.SignOut)

	engine.POST("/posts", r.postHandler.Create)
	engine.POST("/posts/:id", r.postHandler.Update)

	engine.POST("/support", r.supportHandler.CreateRequest)
	engine.POST("/inquiry", middleware.RateLimit(3, 6), r.supportHandler.CreateInquiry)

	engine.POST("/mypage/profile", r.userHandler.UpdateProfile)
}

func (r *Router) registerPostRoutes(api *gin.RouterGroup) {
	posts := api.Group("/posts")
	{
		posts.GET("/:id", r.postHandler.Detail)
		posts.POST("/:id/like", r.postHandler.ToggleLike)
		posts.POST("/:id/comments", r.commentHandler.Create)
		posts.POST("/:id/comments/:cid", r.commentHandler.Update)
	}

	api.GET("/feed", r.postHandler.Feed)
}

func (r *Router) registerNoticeRoutes(api *gin.RouterGroup) {
	notices := api.Group("/notices")
	{
		notices.GET("", r.noticeHandler.List)
		notices.GET("/:id", r.noticeHandler.Get)
	}
}

func (r *Router) registerUserRoutes(api *gin.RouterGroup) {
	api.GET("/mypage", r.userHandler.MyPage)
}
