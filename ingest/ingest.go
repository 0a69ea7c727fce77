package ingest

import (
	"context"
	"time"

	"github.com/vignan-transit/shuttle-tracker/fleet"
	"github.com/vignan-transit/shuttle-tracker/geo"
)

// Applier is the slice of the fleet store the feeds write through.
type Applier interface {
	UpdateLocation(ctx context.Context, busNumber string, pos fleet.Position) (fleet.Bus, error)
}

// Metrics is the subset of the service collector the feeds report to.
// A nil Metrics is valid and disables reporting.
type Metrics interface {
	LocationUpdateInc()
	IngestErrInc(source string)
	SetNATSConnected(connected bool)
}

// PositionMessage is the JSON body carried on the NATS position subject.
// SpeedKMH is optional; omitting it keeps the bus's previous speed sample.
type PositionMessage struct {
	BusNumber string     `json:"busNumber"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	SpeedKMH  *float64   `json:"speedKmh,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

func apply(ctx context.Context, store Applier, busNumber string, loc geo.Coordinate, speed *float64) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	_, err := store.UpdateLocation(ctx, busNumber, fleet.Position{Location: loc, SpeedKMH: speed})
	return err
}
