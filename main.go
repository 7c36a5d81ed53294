package main

import (
	"context"
	"log"

	"guestdesk/config"
	"guestdesk/internal/handler"
	"guestdesk/internal/middleware"
	"guestdesk/internal/models"
	"guestdesk/internal/repository"
	"guestdesk/internal/service"
	"guestdesk/internal/sweeper"
	"guestdesk/pkg/database"
	"guestdesk/pkg/rabbitmq"
	"guestdesk/pkg/token"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ carries best-effort notifications; the platform runs
	// without a broker.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, notifications disabled: %v", err)
		publisher = nil
	}
	defer publisher.Close()

	signer := token.NewSigner(cfg.JWTSecret)

	// Repositories
	hotelRepo := repository.NewHotelRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	bootstrapAdmin(cfg, adminRepo)

	// Services
	authSvc := service.NewAuthService(hotelRepo, adminRepo)
	guestSvc := service.NewGuestService(guestRepo, hotelRepo, publisher)
	complaintSvc := service.NewComplaintService(complaintRepo, publisher)
	foodSvc := service.NewFoodService(foodRepo)
	orderSvc := service.NewOrderService(orderRepo, foodRepo, publisher)
	adminSvc := service.NewAdminService(hotelRepo, statsRepo)

	// Background sweeps
	sweepCtx, stopSweeps := context.WithCancel(context.Background())
	defer stopSweeps()
	sweeper.New(guestRepo, complaintRepo, orderRepo, cfg.SweepInterval).Start(sweepCtx)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "guestdesk"})
	})

	auth := middleware.NewAuth(signer, hotelRepo, guestRepo)
	handler.NewAuthHandler(authSvc, signer).RegisterRoutes(e, auth)
	handler.NewGuestHandler(guestSvc, hotelRepo, signer).RegisterRoutes(e, auth)
	handler.NewComplaintHandler(complaintSvc).RegisterRoutes(e, auth)
	handler.NewFoodHandler(foodSvc, orderSvc).RegisterRoutes(e, auth)
	handler.NewAdminHandler(authSvc, adminSvc, signer).RegisterRoutes(e, auth)

	log.Printf("guestdesk starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

// bootstrapAdmin seeds the admin-console account from env when configured.
func bootstrapAdmin(cfg config.Config, adminRepo repository.AdminRepository) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	err = adminRepo.Upsert(context.Background(), &models.Admin{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         "admin",
	})
	if err != nil {
		log.Fatalf("failed to bootstrap admin account: %v", err)
	}
}
