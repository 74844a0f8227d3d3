package main

import (
	"log"

	"github.com/itemshare/rental-service/config"
	"github.com/itemshare/rental-service/internal/handler"
	"github.com/itemshare/rental-service/internal/middleware"
	"github.com/itemshare/rental-service/internal/repository"
	"github.com/itemshare/rental-service/internal/service"
	"github.com/itemshare/rental-service/internal/validation"
	"github.com/itemshare/rental-service/pkg/database"
	"github.com/itemshare/rental-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: booking lifecycle events for downstream consumers
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	userSvc := service.NewUserService(userRepo)
	itemSvc := service.NewItemService(itemRepo, userRepo, bookingRepo)
	bookingSvc := service.NewBookingService(bookingRepo, userRepo, itemRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = validation.New()
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
		return c.JSON(200, map[string]string{"status": "ok", "service": "rental-service"})
	})

	handler.NewUserHandler(userSvc).RegisterRoutes(e)
	handler.NewItemHandler(itemSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)

	log.Printf("Rental Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
