package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "eisen_qms/docs"
	"eisen_qms/internal/adapter/http/handlers"
	"eisen_qms/internal/adapter/http/middleware"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Clients     *handlers.ClientHandler
	Projects    *handlers.ProjectHandler
	Tickets     *handlers.TicketHandler
	Weeks       *handlers.WeekHandler
	Inspections *handlers.InspectionHandler
	Invoices    *handlers.InvoiceHandler
	Payments    *handlers.PaymentHandler
	Dashboard   *handlers.DashboardHandler
}

// NewRouter builds the engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClientRoutes(v1, h.Clients)
	addQualityRoutes(v1, h.Projects, h.Tickets, h.Weeks, h.Inspections)
	addBillingRoutes(v1, h.Invoices, h.Payments, h.Dashboard)
	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
}

// Run serves router on port until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, router http.Handler, port int, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
