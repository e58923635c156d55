package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "web_estimate/docs" // registers the swagger document
	"web_estimate/internal/adapter/http/middleware"
	"web_estimate/internal/config"
	"web_estimate/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Run will start the server and block until ctx is cancelled, then drain
// in-flight requests.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	app, cleanup, err := newApplication(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           newRouter(cfg, log, app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[http][server] listening", zap.String("addr", srv.Addr))
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

	log.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRouter(cfg *config.Config, log *zap.Logger, app *application) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{})))

	getRoutes(router.Group("/v1"), cfg, app)
	return router
}

func getRoutes(v1 *gin.RouterGroup, cfg *config.Config, app *application) {
	addPingRoutes(v1)
	addCatalogRoutes(v1, app.catalogHandler)

	// Routes bound to the visitor session cookie
	session := v1.Group("", middleware.Session(cfg.Session.CookieName, cfg.Session.CookieSecure, cfg.Session.TTL))
	addSelectionRoutes(session, app.selectionHandler)
	addEstimateRoutes(session, app.estimateHandler)
	addHandoffRoutes(session, app.handoffHandler)
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithContext(c.Request.Context(), log).Error("[http][server] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
