package router

import (
	"context"
	"time"

	"strivex/config"
	"strivex/internal/cache"
	"strivex/internal/domain"
	"strivex/internal/handler"
	"strivex/internal/middleware"
	"strivex/internal/repository"
	"strivex/internal/service"
	"strivex/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)

	walletHub := ws.NewWalletHub()

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	walletSvc := service.NewWalletService(ledgerRepo, cache.New(rdb), cfg.Redis.HistoryTTL)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	walletHandler := handler.NewWalletHandler(walletSvc)
	adminHandler := handler.NewAdminHandler(ledgerRepo)
	settlementHandler := handler.NewSettlementWebhookHandler(walletSvc, walletHub)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authHandler.Login)

		walletGroup := api.Group("/wallet")
		walletGroup.Use(authMw, middleware.RequireRole(domain.RoleTrainer))
		{
			walletGroup.GET("/history", walletHandler.History)
			walletGroup.GET("/statistics", walletHandler.Statistics)
			walletGroup.GET("/export/csv", walletHandler.ExportCSV)
			walletGroup.GET("/export/report", walletHandler.ExportReport)
		}

		adminGroup := api.Group("/admin")
		adminGroup.Use(authMw, middleware.RequireRole(domain.RoleAdmin))
		{
			adminGroup.GET("/transactions", adminHandler.ListTransactions)
		}

		api.POST("/webhooks/settlement", settlementHandler.Handle)

		// Token travels as a query param: browsers cannot set headers on
		// WebSocket upgrades.
		api.GET("/ws/wallet", ws.UpgradeWalletWS(&cfg.JWT, walletHub, func(trainerID uint) (ws.StatsMessage, error) {
			stats, err := walletSvc.Snapshot(context.Background(), trainerID)
			if err != nil {
				return ws.StatsMessage{}, err
			}
			return ws.StatsMessage{Type: "wallet_statistics", Statistics: stats}, nil
		}))
	}

	return r
}
