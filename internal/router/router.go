package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/lumengallery/internal/config"
	"github.com/lumengallery/internal/handler"
	"gorm.io/gorm"
)

// Setup 配置 Gin 引擎和 /api 路由
func Setup(cfg config.AppConfig, gdb *gorm.DB) *gin.Engine {
	api := handler.NewAPI(gdb, cfg.UploadDir, cfg.UploadURLPath, cfg.IsProduction())

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(handler.Recovery(cfg.IsProduction()))

	// 配置会话中间件：Cookie 只携带不透明令牌，会话记录存于数据库
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(api.Sessions().TTL().Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("gallery_session", store))

	// 上传文件的静态访问
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	apiGroup := r.Group("/api")
	apiGroup.Use(handler.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow,
		"Too many requests, please try again later."))

	apiGroup.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Service is healthy"})
	})

	// 公开的画廊读取路由
	gallery := apiGroup.Group("/gallery")
	{
		gallery.GET("", api.ListGalleryItems)
		gallery.GET("/categories", api.GalleryCategories)
		gallery.GET("/:id", api.GetGalleryItem)
	}

	// 认证路由，登录端点附加更严格的限流
	auth := apiGroup.Group("/auth")
	{
		auth.POST("/login",
			handler.RateLimit(cfg.LoginRateLimit, cfg.LoginRateWindow,
				"Too many login attempts, please try again later."),
			api.Login)
		auth.POST("/logout", api.Logout)
		auth.GET("/me", api.Me)
	}

	// 需要认证的后台路由
	admin := apiGroup.Group("/admin")
	admin.Use(api.RequireAuth())
	{
		admin.POST("/gallery", api.CreateGalleryItem)
		admin.PUT("/gallery/:id", api.UpdateGalleryItem)
		admin.DELETE("/gallery/:id", api.DeleteGalleryItem)
		admin.POST("/upload", api.UploadImage)
	}

	// 未匹配的 /api 路径统一返回 JSON 错误信封
	r.NoRoute(handler.NoRoute())

	return r
}
