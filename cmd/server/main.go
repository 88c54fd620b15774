package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/lumengallery/internal/config"
	"github.com/lumengallery/internal/db"
	"github.com/lumengallery/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 启动时一次性创建管理员账号，已存在则跳过
	if err := db.EnsureUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	// 画廊为空时写入演示数据
	seeded, err := db.SeedGallery()
	if err != nil {
		log.Fatalf("failed to seed gallery: %v", err)
	}
	if seeded > 0 {
		log.Printf("seeded %d demo gallery items", seeded)
	}

	// 设置并运行 Gin 服务器
	r := router.Setup(cfg, db.DB)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
