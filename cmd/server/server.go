package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Jeremias-V/Mini-POS/internal/auth"
	"github.com/Jeremias-V/Mini-POS/internal/eventengine"
	"github.com/Jeremias-V/Mini-POS/internal/eventengine/event"
	"github.com/Jeremias-V/Mini-POS/internal/features/cart"
	"github.com/Jeremias-V/Mini-POS/internal/features/inventory"
	"github.com/Jeremias-V/Mini-POS/internal/features/invoice"
	"github.com/Jeremias-V/Mini-POS/internal/features/product"
	"github.com/Jeremias-V/Mini-POS/internal/features/user"
	"github.com/Jeremias-V/Mini-POS/internal/middlewares"
	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"golang.org/x/sync/errgroup"
)

type ServerConfig struct {
	Addr         string
	DB           *sql.DB
	TokenManager *auth.TokenService
	AdminKey     string
}

type server struct {
	*ServerConfig

	doneCh        chan struct{}   // used to signal internal go routines to shutdown
	internalSrvWG *sync.WaitGroup // used to wait for all internal go routines within individual routes to finish before shutting down the server.

	eventEngine eventengine.SubscribeRegisterPublisher
	srv         *http.Server
}

func NewServer(serverConfig *ServerConfig) *server {
	srv := &server{
		ServerConfig:  serverConfig,
		doneCh:        make(chan struct{}),
		internalSrvWG: &sync.WaitGroup{},
	}

	return srv
}

func (s *server) Run() {
	router := chi.NewRouter()

	// strip trailing slashes at the end of the url
	// e.g. /products/1/ -> /products/1
	router.Use(chimiddleware.StripSlashes)

	s.prep()

	s.registerFeatures(router)

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.Addr),
		Handler: router,
	}

	// start server and listen for [os.Signal] signals to graceful shutdown server.
	s.listenAndServe()
}

func (s *server) listenAndServe() {
	shutdownCtx, shutdownCancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer shutdownCancel()

	errGrp, shutdownCtx := errgroup.WithContext(shutdownCtx)

	errGrp.Go(
		func() error {
			log.Printf("server started and is listening at port %s...\n", s.Addr)

			if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) && err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			return nil
		},
	)

	errGrp.Go(
		func() error {
			<-shutdownCtx.Done() // block and listen shutdown signals
			log.Println("hold and wait, server is gracefully shutting down...")

			ctx, cancel := context.WithTimeout(
				context.Background(),
				(20 * time.Second),
			)
			defer cancel()

			log.Println("server has stopped receiving new requests")
			log.Println("waiting for all pending requests to finish....")
			if err := s.srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server failed shutdown gracefully: %w", err)
			}

			return nil
		},
	)

	if err := errGrp.Wait(); err != nil {
		log.Fatal(err.Error())
	}
	log.Println("all pending requests completed!")

	log.Println("waiting for all internal pending go routines....")
	close(s.doneCh)
	s.internalSrvWG.Wait()
	log.Println("all internal go routines are done")

	log.Println("closing other resources...")
	if err := s.DB.Close(); err != nil {
		log.Println("server failed to close db for shutdown")
	}

	log.Println("server has been gracefully shutdown")
	os.Exit(0)
}

// prep prepares server dependencies needed for server to function
func (s *server) prep() {
	s.eventEngine = eventengine.NewEventEngine(
		&eventengine.EventEngineConfig{
			DoneCh:        s.doneCh,
			InternalSrvWG: s.internalSrvWG,
		},
	)

	// every event any feature publishes, registered up front so feature
	// event handlers can subscribe in any construction order.
	s.eventEngine.RegisterEvents(
		event.ProductCreatedEventName,
		event.ProductDeletedEventName,
		event.StockDepletedEventName,
		event.InvoiceConfirmedEventName,
	)
}

func (s *server) registerFeatures(r *chi.Mux) {
	// user feature
	userStore := user.NewStore(s.DB)
	userService := user.NewService(
		userStore,
		s.TokenManager,
		s.AdminKey,
	)
	userHandler := user.NewHandler(userService)
	userHandler.RegisterRoutes(r)

	// middleware
	middleware := middlewares.NewMiddleware(
		s.TokenManager,
		userService,
	)

	// inventory feature
	inventoryStore := inventory.NewStore(s.DB)
	inventoryService := inventory.NewService(
		inventoryStore,
	)
	inventory.NewHandlerEvents(
		&inventory.HandlerEventsConfig{
			DoneCh:        s.doneCh,
			InternalSrvWG: s.internalSrvWG,
			EventEngine:   s.eventEngine,
			Inventory:     inventoryService,
		},
	)

	// product feature
	productStore := product.NewStore(s.DB)
	productService := product.NewService(
		productStore,
		inventoryService,
		s.eventEngine,
	)
	productHandler := product.NewHandler(
		productService,
		middleware,
	)
	productHandler.RegisterRoutes(r)
	product.NewHandlerEvents(
		&product.HandlerEventsConfig{
			DoneCh:        s.doneCh,
			InternalSrvWG: s.internalSrvWG,
			EventEngine:   s.eventEngine,
		},
	)

	// cart feature
	cartStore := cart.NewStore(s.DB)
	cartService := cart.NewService(
		cartStore,
		s.eventEngine,
	)
	cartHandler := cart.NewHandler(
		cartService,
		middleware,
	)
	cartHandler.RegisterRoutes(r)

	// invoice feature
	invoiceStore := invoice.NewStore(s.DB)
	invoiceService := invoice.NewService(
		invoiceStore,
		s.eventEngine,
	)
	invoiceHandler := invoice.NewHandler(
		invoiceService,
		middleware,
	)
	invoiceHandler.RegisterRoutes(r)
	invoice.NewHandlerEvents(
		&invoice.HandlerEventsConfig{
			DoneCh:        s.doneCh,
			InternalSrvWG: s.internalSrvWG,
			EventEngine:   s.eventEngine,
		},
	)
}
