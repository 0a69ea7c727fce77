// Package shuttletracker is the HTTP surface of the university shuttle
// tracking service: an authenticated fleet/tracking query API over a fleet
// store fed by external position feeds.
package shuttletracker

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/vignan-transit/shuttle-tracker/auth"
	"github.com/vignan-transit/shuttle-tracker/config"
	"github.com/vignan-transit/shuttle-tracker/fleet"
	"github.com/vignan-transit/shuttle-tracker/metrics"
	"github.com/vignan-transit/shuttle-tracker/tracking"
)

// Server wires the fleet store, tracker, access gate and collector behind
// the HTTP API.
type Server struct {
	cfg     config.AppConfig
	store   fleet.Store
	auth    *auth.Service
	tracker *tracking.Tracker
	metrics *metrics.Collector

	httpSrv *http.Server
}

func NewServer(cfg config.AppConfig, store fleet.Store, authSvc *auth.Service, mcol *metrics.Collector) *Server {
	return &Server{
		cfg:     cfg,
		store:   store,
		auth:    authSvc,
		tracker: tracking.NewTracker(store),
		metrics: mcol,
	}
}

// Handler builds the route table. Split out from Start for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/auth/register", s.instrument("auth_register", s.handleRegister))
	mux.HandleFunc("POST /api/auth/login", s.instrument("auth_login", s.handleLogin))

	mux.HandleFunc("GET /api/buses", s.instrument("buses_list", s.requireAuth(s.handleListBuses)))
	mux.HandleFunc("GET /api/buses/area/{area}", s.instrument("buses_by_area", s.requireAuth(s.handleBusesByArea)))
	mux.HandleFunc("GET /api/buses/{busNumber}", s.instrument("bus_get", s.requireAuth(s.handleGetBus)))
	mux.HandleFunc("POST /api/buses/track", s.instrument("bus_track", s.requireAuth(s.handleTrack)))
	mux.HandleFunc("GET /api/areas", s.instrument("areas", s.requireAuth(s.handleAreas)))
	mux.HandleFunc("GET /api/cities", s.instrument("cities", s.requireAuth(s.handleCities)))
	mux.HandleFunc("GET /api/routes", s.instrument("routes", s.requireAuth(s.handleRoutes)))
	mux.HandleFunc("GET /api/routes/area/{area}", s.instrument("routes_by_area", s.requireAuth(s.handleRoutesByArea)))

	mux.HandleFunc("PUT /api/buses/{busNumber}/location", s.instrument("location_update", s.requireIngestToken(s.handleUpdateLocation)))
	mux.HandleFunc("POST /api/seed", s.instrument("seed", s.requireIngestToken(s.handleSeed)))

	return mux
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) {
	if s.httpSrv == nil {
		return
	}
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}
