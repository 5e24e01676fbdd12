package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "faepa_workflow/docs"
	"faepa_workflow/internal/adapter/http/handlers"
	"faepa_workflow/internal/adapter/http/middleware"
	"faepa_workflow/internal/adapter/persistence/repository"
	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/infrastructure/config"
	"faepa_workflow/internal/infrastructure/database"
	"faepa_workflow/internal/infrastructure/notifications"
	"faepa_workflow/internal/infrastructure/payments"
	"faepa_workflow/internal/infrastructure/storage"
	"faepa_workflow/internal/usecase"
	"faepa_workflow/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers is everything the router serves.
type Handlers struct {
	Workflow    *handlers.WorkflowHandler
	Detail      *handlers.DetailHandler
	Submission  *handlers.SubmissionHandler
	Channel     *handlers.ChannelHandler
	Attachment  *handlers.AttachmentHandler
	JWTSecret   string
	JWTIssuer   string
	CORSOrigins []string
}

// Run wires the infrastructure, starts the server and blocks until SIGINT or SIGTERM.
func Run(cfg *config.Config) error {
	ctx := context.Background()

	h, cleanup, err := buildHandlers(ctx, cfg)
	defer cleanup()
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case sig := <-quit:
		log.Printf("[server] shutting down signal=%s", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter registers middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, h.CORSOrigins)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.JWTAuth(h.JWTSecret, h.JWTIssuer))
	addWorkflowRoutes(authed, h)
	return router
}

func setMiddlewares(router *gin.Engine, origins []string) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	corsCfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	corsCfg.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	router.Use(cors.New(corsCfg))
}

func buildHandlers(ctx context.Context, cfg *config.Config) (Handlers, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	requestRepo, err := newRequestRepository(ctx, cfg)
	if err != nil {
		return Handlers{}, cleanup, err
	}

	db, err := database.ConnectPostgres(cfg.Database)
	if err != nil {
		return Handlers{}, cleanup, err
	}
	if sqlDB, err := db.DB(); err == nil {
		closers = append(closers, func() { _ = sqlDB.Close() })
	}
	submissionRepo := repository.NewSubmissionGormRepository(db)

	rdb, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		return Handlers{}, cleanup, err
	}
	closers = append(closers, func() { _ = rdb.Close() })
	channelRepo := repository.NewChannelRedisRepository(rdb)

	notifier := newNotifier(cfg.NATS, &closers)

	var attachmentStore interfaces.IAttachmentStore
	if cfg.MinIO.Endpoint != "" {
		mc, err := storage.ConnectMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.WithError(err).Printf("[server] attachment storage unavailable")
		} else {
			attachmentStore = storage.NewMinIOAttachmentStore(mc, cfg.MinIO.Bucket, cfg.MinIO.URLExpiry)
		}
	}

	var receipts interfaces.IPaymentReceiptGateway
	if gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock); err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		receipts = gw
	}

	// A nil store must stay a nil interface for the ledger's fallback to apply.
	var resolver interfaces.IAttachmentResolver
	if attachmentStore != nil {
		resolver = attachmentStore
	}

	ledger := usecase.NewLedgerUseCase(requestRepo, resolver)
	channels := usecase.NewChannelUseCase(channelRepo)
	workflow := usecase.NewWorkflowUseCase(ledger, submissionRepo, channels, notifier, receipts, usecase.NotificationSettings{
		FinanceAddress:         cfg.Notifications.FinanceAddress,
		PayingAuthorityAddress: cfg.Notifications.PayingAuthorityAddress,
		DefaultSender: entities.Sender{
			Address: cfg.Notifications.SenderAddress,
			Name:    cfg.Notifications.SenderName,
		},
	})

	return Handlers{
		Workflow:    handlers.NewWorkflowHandler(workflow),
		Detail:      handlers.NewDetailHandler(usecase.NewDetailUseCase(ledger, submissionRepo)),
		Submission:  handlers.NewSubmissionHandler(usecase.NewSubmissionUseCase(submissionRepo)),
		Channel:     handlers.NewChannelHandler(channels),
		Attachment:  handlers.NewAttachmentHandler(usecase.NewAttachmentUseCase(attachmentStore)),
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		CORSOrigins: cfg.Server.CORSOrigins,
	}, cleanup, nil
}

func newRequestRepository(ctx context.Context, cfg *config.Config) (interfaces.IRequestRepository, error) {
	if cfg.Ledger.Backend == config.LedgerBackendMemory {
		log.Printf("[server] ledger backend=memory (records are lost on restart)")
		return repository.NewRequestMemoryRepository(), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	log.Printf("[server] ledger backend=dynamodb table=%s", cfg.Ledger.RequestsTable)
	return repository.NewRequestDynamoRepository(ddb, cfg.Ledger.RequestsTable), nil
}

func newNotifier(cfg config.NATSConfig, closers *[]func()) interfaces.INotifier {
	if cfg.URL == "" {
		log.Printf("[server] NATS_URL not set, notifications are only logged")
		return notifications.LogDispatcher{}
	}
	nc, err := notifications.ConnectNATS(cfg.URL)
	if err != nil {
		log.WithError(err).Printf("[server] nats unavailable, notifications are only logged")
		return notifications.LogDispatcher{}
	}
	*closers = append(*closers, func() { _ = nc.Drain() })
	return notifications.NewNATSDispatcher(nc, cfg.Subject)
}
