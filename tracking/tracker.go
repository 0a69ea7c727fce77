package tracking

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/vignan-transit/shuttle-tracker/fleet"
	"github.com/vignan-transit/shuttle-tracker/geo"
)

// BusSnapshot is the rider-facing projection of a bus. Capacity and the
// active flag stay internal.
type BusSnapshot struct {
	BusNumber       string         `json:"busNumber"`
	Route           string         `json:"route"`
	Area            string         `json:"area"`
	FromCity        string         `json:"fromCity"`
	ToCity          string         `json:"toCity"`
	DriverName      string         `json:"driverName"`
	DriverPhone     string         `json:"driverPhone"`
	CurrentLocation geo.Coordinate `json:"currentLocation"`
	Destination     geo.Coordinate `json:"destination"`
	CurrentSpeed    float64        `json:"currentSpeed"`
	LastUpdated     time.Time      `json:"lastUpdated"`
}

// Result combines one bus snapshot with the requesting rider's position.
// Distances are kilometers rounded to two decimals; ETAs are whole minutes.
type Result struct {
	Bus                           BusSnapshot    `json:"bus"`
	DistanceFromUser              float64        `json:"distanceFromUser"`
	DistanceToDestination         float64        `json:"distanceToDestination"`
	EstimatedArrivalToUser        int            `json:"estimatedArrivalToUser"`
	EstimatedArrivalToDestination int            `json:"estimatedArrivalToDestination"`
	UserLocation                  geo.Coordinate `json:"userLocation"`
}

// Tracker answers tracking queries against a fleet store. It is read-only
// and safe for concurrent use.
type Tracker struct {
	store fleet.Store
}

func NewTracker(store fleet.Store) *Tracker {
	return &Tracker{store: store}
}

// Track resolves busNumber against the active fleet and computes distances
// and ETAs relative to userPos. Inactive and unknown buses both report
// fleet.ErrBusNotFound so riders cannot distinguish retired identifiers.
func (t *Tracker) Track(ctx context.Context, busNumber string, userPos geo.Coordinate) (Result, error) {
	if err := userPos.Validate(); err != nil {
		return Result{}, err
	}
	bus, err := t.store.GetByNumber(ctx, busNumber)
	if err != nil {
		return Result{}, err
	}
	if !bus.IsActive {
		return Result{}, fleet.ErrBusNotFound
	}

	distFromUser := geo.DistanceKM(userPos, bus.CurrentLocation)
	distToDest := geo.DistanceKM(bus.CurrentLocation, bus.Destination)

	etaToUser, err := geo.ETAMinutes(distFromUser, bus.CurrentSpeed)
	if err != nil {
		return Result{}, fmt.Errorf("eta to user: %w", err)
	}
	etaToDest, err := geo.ETAMinutes(distToDest, bus.CurrentSpeed)
	if err != nil {
		return Result{}, fmt.Errorf("eta to destination: %w", err)
	}

	return Result{
		Bus: BusSnapshot{
			BusNumber:       bus.BusNumber,
			Route:           bus.Route,
			Area:            bus.Area,
			FromCity:        bus.FromCity,
			ToCity:          bus.ToCity,
			DriverName:      bus.DriverName,
			DriverPhone:     bus.DriverPhone,
			CurrentLocation: bus.CurrentLocation,
			Destination:     bus.Destination,
			CurrentSpeed:    bus.CurrentSpeed,
			LastUpdated:     bus.LastUpdated,
		},
		DistanceFromUser:              round2(distFromUser),
		DistanceToDestination:         round2(distToDest),
		EstimatedArrivalToUser:        etaToUser,
		EstimatedArrivalToDestination: etaToDest,
		UserLocation:                  userPos,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
