package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "design_studio/docs" // swag-generated
	"design_studio/internal/adapter/http/handlers"
	"design_studio/internal/adapter/persistence/repository"
	"design_studio/internal/config"
	"design_studio/internal/infrastructure/database"
	"design_studio/internal/infrastructure/metrics"
	"design_studio/internal/infrastructure/payments"
	"design_studio/internal/usecase"
	"design_studio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Orders   *handlers.DesignOrderHandler
	Tracking *handlers.OrderTrackingHandler
	SLA      *handlers.SLAConfigHandler
	Packages *handlers.DesignPackageHandler
	Payments *handlers.OrderPaymentHandler
}

// Run wires the service from cfg and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h, err := buildHandlers(ctx, cfg, reg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           NewRouter(h, reg, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts the API, swagger and metrics endpoints.
func NewRouter(h Handlers, gatherer prometheus.Gatherer, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Packages, h.SLA)
	addOrderRoutes(v1, h.Orders, h.Tracking, h.Payments)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config, reg prometheus.Registerer, log *zap.Logger) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}

	orderRepo := repository.NewDesignOrderDynamoRepository(ddb, cfg.OrdersTable)
	packageRepo := repository.NewDesignPackageDynamoRepository(ddb, cfg.PackagesTable)
	slaRepo := repository.NewSLAConfigDynamoRepository(ddb, cfg.SettingsTable)
	paymentRepo := repository.NewOrderPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	clock := interfaces.SystemClock{}
	fulfillmentMetrics := metrics.NewFulfillmentMetrics(reg)

	mockMode := cfg.PaymentMockEnabled()
	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, mockMode, log)
	if err != nil {
		log.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewDesignOrderUseCase(orderRepo, packageRepo, clock, fulfillmentMetrics, log)
	trackingUseCase := usecase.NewOrderTrackingUseCase(orderRepo, packageRepo, slaRepo, clock, fulfillmentMetrics, log)
	slaUseCase := usecase.NewSLAConfigUseCase(slaRepo, log)
	packageUseCase := usecase.NewDesignPackageUseCase(packageRepo)
	paymentUseCase := usecase.NewOrderPaymentUseCase(paymentRepo, orderRepo, packageRepo, paymentGateway, clock, mockMode, log)

	return Handlers{
		Orders:   handlers.NewDesignOrderHandler(orderUseCase),
		Tracking: handlers.NewOrderTrackingHandler(trackingUseCase),
		SLA:      handlers.NewSLAConfigHandler(slaUseCase),
		Packages: handlers.NewDesignPackageHandler(packageUseCase),
		Payments: handlers.NewOrderPaymentHandler(paymentUseCase, mockMode, log),
	}, nil
}
