package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/vignan-transit/shuttle-tracker/fleet"
	"github.com/vignan-transit/shuttle-tracker/geo"
)

const mpsToKMH = 3.6

// GTFSRTPoller periodically fetches a GTFS-Realtime VehiclePositions feed
// and applies each entity's position to the matching bus. The vehicle
// descriptor's ID (or label, when the ID is absent) is taken as the bus
// number; entities for unknown buses are counted and skipped so one stray
// vehicle never aborts a poll cycle.
type GTFSRTPoller struct {
	url      string
	interval time.Duration
	client   *http.Client
	store    Applier
	metrics  Metrics
}

func NewGTFSRTPoller(url string, interval, timeout time.Duration, store Applier, m Metrics) *GTFSRTPoller {
	return &GTFSRTPoller{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: timeout},
		store:    store,
		metrics:  m,
	}
}

// Run polls until ctx is cancelled. The first poll happens immediately.
func (p *GTFSRTPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		if err := p.poll(ctx); err != nil {
			log.Printf("gtfsrt poll: %v", err)
			if p.metrics != nil {
				p.metrics.IngestErrInc("gtfsrt")
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *GTFSRTPoller) poll(ctx context.Context) error {
	fm, err := p.fetchFeed(ctx)
	if err != nil {
		return err
	}
	p.ApplyFeed(ctx, fm)
	return nil
}

func (p *GTFSRTPoller) fetchFeed(ctx context.Context) (*gtfsrtpb.FeedMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, p.url)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, err
	}
	return &fm, nil
}

// ApplyFeed walks the feed entities and applies every usable vehicle
// position. Exported so the mapping is testable without an HTTP round trip.
func (p *GTFSRTPoller) ApplyFeed(ctx context.Context, fm *gtfsrtpb.FeedMessage) {
	for _, e := range fm.Entity {
		v := e.Vehicle
		if v == nil || v.Position == nil {
			continue
		}
		var busNumber string
		if v.Vehicle != nil {
			if v.Vehicle.Id != nil && *v.Vehicle.Id != "" {
				busNumber = *v.Vehicle.Id
			} else if v.Vehicle.Label != nil {
				busNumber = *v.Vehicle.Label
			}
		}
		if busNumber == "" {
			continue
		}
		loc := geo.Coordinate{
			Latitude:  float64(v.Position.GetLatitude()),
			Longitude: float64(v.Position.GetLongitude()),
		}
		var speed *float64
		if v.Position.Speed != nil {
			kmh := float64(*v.Position.Speed) * mpsToKMH
			speed = &kmh
		}
		if err := apply(ctx, p.store, busNumber, loc, speed); err != nil {
			if p.metrics != nil {
				p.metrics.IngestErrInc("gtfsrt")
			}
			if !errors.Is(err, fleet.ErrBusNotFound) {
				log.Printf("gtfsrt ingest: bus %s: %v", busNumber, err)
			}
			continue
		}
		if p.metrics != nil {
			p.metrics.LocationUpdateInc()
		}
	}
}
