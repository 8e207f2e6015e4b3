package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shippinglabel/cmd"
	httpadapter "shippinglabel/internal/adapters/in/http"
	"shippinglabel/internal/adapters/out/postgres/labelrepo"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))

	gormDB := mustGormOpen(configs.DSN())

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func mustGormOpen(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connection to postgres through gorm: %v", err)
	}

	if err := gormDB.AutoMigrate(&labelrepo.LabelDTO{}); err != nil {
		log.Fatalf("migrate labels table: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc, err := httpadapter.LoadAPI(ctx)
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	if err := httpadapter.RegisterDoc(doc); err != nil {
		log.Fatalf("Error registering API docs: %v", err)
	}
	validator, err := httpadapter.RequestValidator(doc)
	if err != nil {
		log.Fatalf("Error creating request validator: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	httpadapter.Register(e, app.CreateServer(), validator)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
