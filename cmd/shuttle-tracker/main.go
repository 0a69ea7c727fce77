package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tracker "github.com/vignan-transit/shuttle-tracker"
	"github.com/vignan-transit/shuttle-tracker/auth"
	"github.com/vignan-transit/shuttle-tracker/config"
	"github.com/vignan-transit/shuttle-tracker/fleet"
	"github.com/vignan-transit/shuttle-tracker/ingest"
	"github.com/vignan-transit/shuttle-tracker/metrics"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to config.yml")
	seed := flag.Bool("seed", false, "seed the fleet store with the demo fleet at startup")
	flag.Parse()

	tracker.InitLogging()
	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var store fleet.Store
	if cfg.Database.URL != "" {
		pg, err := fleet.OpenPG(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatalf("postgres error: %v", err)
		}
		defer pg.Close()
		store = pg
		log.Printf("fleet store: postgres")
	} else {
		store = fleet.NewRegistry()
		log.Printf("fleet store: in-memory")
	}

	if *seed {
		if err := store.ReplaceFleet(ctx, fleet.SeedBuses(), fleet.SeedRoutes()); err != nil {
			log.Fatalf("seed error: %v", err)
		}
		log.Printf("seeded demo fleet")
	}

	mcol := metrics.NewCollector()
	var metricsSrv *http.Server
	if cfg.Metrics.Addr != "" {
		metricsSrv = mcol.Serve(cfg.Metrics.Addr)
	}

	authSvc := auth.NewService([]byte(cfg.Auth.JWTSecret))

	var natsSub *ingest.NATSSubscriber
	if cfg.Ingest.NATS.URL != "" {
		natsSub, err = ingest.NewNATSSubscriber(ctx, cfg.Ingest.NATS.URL, cfg.Ingest.NATS.Subject, store, wrapIngestMetrics(mcol))
		if err != nil {
			log.Fatalf("nats error: %v", err)
		}
		defer natsSub.Close()
	}

	if cfg.Ingest.GTFSRT.VehiclePositionsURL != "" {
		poller := ingest.NewGTFSRTPoller(
			cfg.Ingest.GTFSRT.VehiclePositionsURL,
			time.Duration(cfg.Ingest.GTFSRT.ReadIntervalMS)*time.Millisecond,
			time.Duration(cfg.Ingest.GTFSRT.TimeoutMS)*time.Millisecond,
			store, wrapIngestMetrics(mcol))
		go poller.Run(ctx)
		log.Printf("gtfsrt poller started for %s", cfg.Ingest.GTFSRT.VehiclePositionsURL)
	}

	srv := tracker.NewServer(cfg, store, authSvc, mcol)
	srv.Start()

	<-ctx.Done()
	log.Printf("shutdown signal received")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	log.Println("shutdown complete")
}

// wrapIngestMetrics adapts the Collector to the ingest.Metrics interface.
func wrapIngestMetrics(c *metrics.Collector) ingest.Metrics {
	if c == nil {
		return nil
	}
	return &ingestMetrics{c: c}
}

type ingestMetrics struct{ c *metrics.Collector }

func (m *ingestMetrics) LocationUpdateInc() { m.c.LocationUpdates.Inc() }
func (m *ingestMetrics) IngestErrInc(source string) {
	m.c.IngestErrors.WithLabelValues(source).Inc()
}
func (m *ingestMetrics) SetNATSConnected(b bool) {
	if b {
		m.c.NATSConnected.Set(1)
	} else {
		m.c.NATSConnected.Set(0)
	}
}
