package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/royale-coach-backend/api"
	"github.com/SlpAus/royale-coach-backend/internal/ingest"
	"github.com/SlpAus/royale-coach-backend/internal/platform/backup"
	"github.com/SlpAus/royale-coach-backend/internal/platform/clash"
	"github.com/SlpAus/royale-coach-backend/internal/platform/config"
	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
	"github.com/SlpAus/royale-coach-backend/internal/platform/gemini"
	"github.com/SlpAus/royale-coach-backend/internal/platform/health"
	"github.com/SlpAus/royale-coach-backend/internal/platform/shutdown"
	"github.com/SlpAus/royale-coach-backend/internal/platform/startup"
	"github.com/SlpAus/royale-coach-backend/pkg/lifecycle"
	"github.com/SlpAus/royale-coach-backend/pkg/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}

	token.InitSecretKey(cfg.Ingest.AdminSecret)
	database.InitDB(cfg.Database.Sqlite)
	database.InitRedis(cfg.Database.Redis)
	if err := gemini.InitClient(cfg.Gemini); err != nil {
		panic(fmt.Sprintf("初始化Gemini客户端失败: %v", err))
	}
	clash.InitClient(cfg.Clash)

	// 阻塞式获取初始Run ID
	health.InitializeRunID()

	// 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 阻塞式执行一次启动后健康检查
	fmt.Println("正在执行启动后健康检查...")
	health.PerformCheck()

	// 异步启动后台的持续健康检查器
	go health.StartRedisHealthCheck()

	// 创建两阶段停机的生命周期管理器，并启动后台服务
	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()

	ingestHandle, err := gracefulMgr.NewServiceHandle("ingest-worker")
	if err != nil {
		panic(fmt.Sprintf("无法创建摄取服务句柄: %v", err))
	}
	go ingest.StartWorker(ingestHandle)

	backupHandle, err := gracefulMgr.NewServiceHandle("popularity-backup")
	if err != nil {
		panic(fmt.Sprintf("无法创建快照服务句柄: %v", err))
	}
	go backup.StartBackupScheduler(backupHandle)

	r := gin.Default()
	allowedOrigins := cfg.Server.Cors.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}
	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	// 阻塞等待停机信号并编排优雅停机
	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}
