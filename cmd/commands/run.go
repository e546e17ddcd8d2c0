package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"msgboard"
	"msgboard/config"
	"msgboard/internal/application/usecase"
	"msgboard/internal/infrastructure/broker"
	"msgboard/internal/infrastructure/database"
	"msgboard/internal/infrastructure/exif"
	"msgboard/internal/infrastructure/memcache"
	"msgboard/internal/infrastructure/metrics"
	"msgboard/internal/infrastructure/minio"
	"msgboard/internal/presentation"
	"msgboard/internal/presentation/handler"
	"msgboard/internal/presentation/middleware"
	"msgboard/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running msgboard", "version", msgboard.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer brokerClient.Close()

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	brokerReceiver := broker.NewReceiver(brokerClient)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer db.Stop() //nolint

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	if err := minIOClient.EnsureBucket(context.Background(), cfg.MinIOUploader.Bucket); err != nil {
		ExitOnError(err)
	}

	minIOUploader := minio.NewUploader(minIOClient.MinioClient, &cfg.MinIOUploader)
	minIOGetter := minio.NewGetter(minIOClient.MinioClient, &cfg.MinIOGetter)
	minIORemover := minio.NewRemover(minIOClient.MinioClient, &cfg.MinIORemover)

	m := metrics.New()
	thumbCache := memcache.New(cfg.Memcache)

	presenter := usecase.NewPresenter(cfg.Default.PublicAddress)
	builder := usecase.NewBuilder(exif.NewExtractor(cfg.Exif))

	submitter := usecase.NewSubmitter(builder, presenter, database.NewMessageWriter(db), minIOUploader,
		minIORemover, brokerPublisher, m)
	getter := usecase.NewGetter(database.NewMessageRetriever(db), presenter)
	lister := usecase.NewLister(database.NewMessageLister(db), presenter)
	thumbnailer := usecase.NewThumbnailer(database.NewMessageRetriever(db), database.NewThumbRetriever(db),
		database.NewThumbWriter(db), database.NewThumbLinker(db), database.NewThumbRemover(db),
		minIOGetter, thumbCache, m)

	prewarmer, err := usecase.NewPrewarmer(brokerReceiver, thumbnailer, cfg.Prewarm, m)
	if err != nil {
		ExitOnError(err)
	}

	submitHandler := handler.NewSubmitHandler(submitter)
	getHandler := handler.NewGetHandler(getter)
	listHandler := handler.NewListHandler(lister)
	imageHandler := handler.NewImageHandler(thumbnailer, true)
	nfImageHandler := handler.NewImageHandler(thumbnailer, false)

	bodyLimit := cfg.HTTP.BodyLimit
	if bodyLimit == "" {
		bodyLimit = "50M"
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(bodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	e.POST("/messages", submitHandler.HandleSubmit)
	e.GET(fmt.Sprintf("/messages/:%s", presentation.IDParam), getHandler.HandleGet)
	e.GET("/messages.json", listHandler.HandleLatest)
	e.GET("/slideshow.json", listHandler.HandleSlideshow)
	e.GET("/geolocations.json", listHandler.HandleGeolocations)

	sizes := middleware.SizeMiddleware(cfg.HTTP.AllowedSizes)
	imageRoute := fmt.Sprintf("/:%s/:%s", presentation.IDParam, presentation.SizeParam)
	e.GET("/image"+imageRoute, imageHandler.HandleImage, sizes)
	e.GET("/nfimage"+imageRoute, nfImageHandler.HandleImage, sizes)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var workers sync.WaitGroup
	workers.Add(1)
	go func() {
		defer workers.Done()

		if err := prewarmer.Run(ctx); err != nil {
			logger.Error("prewarm workers stopped", "err", err)
		}
	}()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	workers.Wait()
	logger.Info("msgboard stopped")
}
