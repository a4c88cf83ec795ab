// Package restserver exposes the latest computed snapshot and the static
// calendar reference tables over HTTP. It is a read-only surface: all
// computation happens in the ticker, all state lives in the snapshot holder.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/chandrakala/vedicclock/internal/log"
	"github.com/chandrakala/vedicclock/internal/ticker"
	"github.com/chandrakala/vedicclock/pkg/config"
)

// Controller is the REST server controller.
type Controller struct {
	ctx      context.Context
	wg       *sync.WaitGroup
	Server   http.Server
	holder   *ticker.Holder
	observer config.ObserverData
	logger   *zap.SugaredLogger
	handlers *Handlers
}

// NewController creates the REST controller and wires up its router.
func NewController(ctx context.Context, wg *sync.WaitGroup, rc config.RESTServerData, observer config.ObserverData, holder *ticker.Holder, logger *zap.SugaredLogger) (*Controller, error) {
	if rc.ListenAddr == "" {
		logger.Info("rest.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		rc.ListenAddr = "0.0.0.0"
	}
	if rc.Port == 0 {
		logger.Info("rest.port not provided; defaulting to 8080")
		rc.Port = 8080
	}

	ctrl := &Controller{
		ctx:      ctx,
		wg:       wg,
		holder:   holder,
		observer: observer,
		logger:   logger,
	}
	ctrl.handlers = NewHandlers(ctrl)

	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", rc.ListenAddr, rc.Port)
	ctrl.Server.Handler = router
	ctrl.Server.ReadHeaderTimeout = 10 * time.Second

	return ctrl, nil
}

// StartController starts serving and arranges shutdown on context
// cancellation.
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()
		if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
			log.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints.
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(c.requestLogging)

	router.HandleFunc("/api/snapshot", c.handlers.GetSnapshot).Methods(http.MethodGet)
	router.HandleFunc("/api/reference/tithis", c.handlers.GetTithiNames).Methods(http.MethodGet)
	router.HandleFunc("/api/reference/nakshatras", c.handlers.GetNakshatraNames).Methods(http.MethodGet)
	router.HandleFunc("/api/reference/masas", c.handlers.GetMasaNames).Methods(http.MethodGet)
	router.HandleFunc("/api/reference/muhurtas", c.handlers.GetMuhurtaNames).Methods(http.MethodGet)
	router.HandleFunc("/api/health", c.handlers.GetHealth).Methods(http.MethodGet)

	return router
}
