package fleet

import (
	"context"
	"errors"

	"github.com/vignan-transit/shuttle-tracker/geo"
)

var (
	// ErrBusNotFound is returned when no bus, active or inactive, carries
	// the requested bus number.
	ErrBusNotFound = errors.New("bus not found")
	// ErrDuplicateBus is returned when inserting a bus whose number is
	// already registered.
	ErrDuplicateBus = errors.New("duplicate bus number")
)

// Store is the authoritative fleet registry. Implementations must keep each
// bus record internally consistent under concurrent reads and updates: a
// location update replaces position, speed and freshness timestamp as one
// unit.
type Store interface {
	// Insert registers a new bus. Bus numbers are unique across active and
	// inactive buses.
	Insert(ctx context.Context, b Bus) error

	// ListActive returns all active buses in stable insertion order.
	ListActive(ctx context.Context) ([]Bus, error)

	// ListActiveByArea filters ListActive by exact area label.
	ListActiveByArea(ctx context.Context, area string) ([]Bus, error)

	// GetByNumber looks up a bus by number regardless of its active flag.
	GetByNumber(ctx context.Context, busNumber string) (Bus, error)

	// Areas returns the distinct area labels over all buses, sorted.
	Areas(ctx context.Context) ([]string, error)

	// FromCities returns the distinct origin cities over all buses, sorted.
	FromCities(ctx context.Context) ([]string, error)

	// UpdateLocation replaces the bus's current position and refreshes its
	// freshness timestamp. A nil speed keeps the prior speed sample.
	UpdateLocation(ctx context.Context, busNumber string, pos Position) (Bus, error)

	// SetActive toggles the active flag. Deactivated buses disappear from
	// listings but remain addressable by number.
	SetActive(ctx context.Context, busNumber string, active bool) (Bus, error)

	// InsertRoute registers route reference data.
	InsertRoute(ctx context.Context, r Route) error

	// Routes returns all routes.
	Routes(ctx context.Context) ([]Route, error)

	// RoutesByArea filters Routes by exact area label.
	RoutesByArea(ctx context.Context, area string) ([]Route, error)

	// ReplaceFleet drops all buses and routes and installs the given set.
	ReplaceFleet(ctx context.Context, buses []Bus, routes []Route) error
}

// Position is an ingested location sample. SpeedKMH is optional: when nil
// the bus keeps its previous speed (partial update semantics).
type Position struct {
	Location geo.Coordinate
	SpeedKMH *float64
}
