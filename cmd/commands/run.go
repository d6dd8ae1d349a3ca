package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"folio"
	"folio/config"
	"folio/internal/application/usecase"
	"folio/internal/domain/repository/storage"
	"folio/internal/infrastructure/database"
	"folio/internal/infrastructure/localfs"
	"folio/internal/infrastructure/minio"
	"folio/internal/infrastructure/session"
	"folio/internal/presentation/handler"
	"folio/internal/presentation/middleware"
	"folio/pkg/logger"
)

const localURLBase = "/uploads"

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running folio", "version", folio.StringVersion())

	db, err := database.Connect(&cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	sessions, err := session.NewStore(&cfg.Session)
	if err != nil {
		ExitOnError(err)
	}

	var store storage.Storage
	switch cfg.Backend {
	case config.BackendMinIO:
		store = minio.NewStorage(minio.New(&cfg.MinIO))
	default:
		store = localfs.NewStorage(&cfg.LocalFS)
	}

	dbWriter := database.NewMediaWriter(db)
	dbRetriever := database.NewMediaRetriever(db)
	dbLister := database.NewMediaLister(db)
	dbUpdater := database.NewMediaUpdater(db)
	dbRemover := database.NewMediaRemover(db)
	dbAggregator := database.NewMediaAggregator(db)

	validator := usecase.NewValidator(&cfg.Uploads)
	resolver := usecase.NewResolver(localURLBase)

	uploader := usecase.NewUploader(validator, store, dbWriter, resolver)
	deleter := usecase.NewDeleter(dbRetriever, dbRemover, store)
	lister := usecase.NewLister(dbLister, resolver)
	getter := usecase.NewGetter(dbRetriever, store)
	updater := usecase.NewUpdater(dbUpdater, dbRetriever, resolver)
	stats := usecase.NewStatsProvider(dbAggregator, dbLister, resolver)
	auth := usecase.NewAuth(&cfg.Auth, sessions)

	dev := cfg.IsDev()
	cookieMaxAge := int(cfg.Session.TTLSeconds)
	if cookieMaxAge <= 0 {
		cookieMaxAge = 24 * 60 * 60
	}

	authHandler := handler.NewAuthHandler(auth, cookieMaxAge, cfg.Server.SecureCookie, dev)
	uploadHandler := handler.NewUploadHandler(uploader, validator, dev)
	listHandler := handler.NewListHandler(lister, dev)
	serveHandler := handler.NewServeHandler(getter, dev)
	deleteHandler := handler.NewDeleteHandler(deleter, dev)
	updateHandler := handler.NewUpdateHandler(updater, dev)
	statsHandler := handler.NewStatsHandler(stats, dev)
	adminHandler := handler.NewAdminHandler(lister, deleter, stats, dev)

	adminOnly := middleware.AdminAuth(auth)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())

	bodyLimit := cfg.Server.BodyLimit
	if bodyLimit == "" {
		bodyLimit = "52M"
	}
	e.Use(echoMiddleware.BodyLimit(bodyLimit))
	e.Use(middleware.RateLimit(cfg.Server.RateLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api")

	api.POST("/auth/login", authHandler.HandleLogin)
	api.POST("/auth/logout", authHandler.HandleLogout)
	api.GET("/auth/status", authHandler.HandleStatus)
	api.POST("/auth/verify", authHandler.HandleVerify)

	media := api.Group("/media")
	media.GET("", listHandler.HandleList)
	media.GET("/section/:section", listHandler.HandleListSection)
	media.GET("/serve/:id", serveHandler.HandleServe)
	media.GET("/stats", statsHandler.HandleStats, adminOnly)
	media.POST("/upload", uploadHandler.HandleUpload, adminOnly)
	media.DELETE("/:id", deleteHandler.HandleDelete, adminOnly)
	media.PUT("/:id", updateHandler.HandleUpdate, adminOnly)

	admin := api.Group("/admin", adminOnly)
	admin.GET("/dashboard", adminHandler.HandleDashboard)
	admin.GET("/media", adminHandler.HandleMedia)
	admin.DELETE("/media/bulk", adminHandler.HandleBulkDelete)

	if cfg.Backend == config.BackendLocal {
		e.Static(localURLBase, cfg.LocalFS.Root)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}

	if err := sessions.Close(); err != nil {
		logger.Error("session store close failed", "err", err)
	}

	if err := db.Stop(); err != nil {
		logger.Error("database close failed", "err", err)
	}
}
