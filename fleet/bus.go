package fleet

import (
	"time"

	"github.com/vignan-transit/shuttle-tracker/geo"
)

// Bus is a tracked shuttle vehicle. BusNumber is its stable unique
// identifier; CurrentLocation, CurrentSpeed and LastUpdated are the only
// fields mutated after provisioning, always together and always through
// Store.UpdateLocation.
type Bus struct {
	BusNumber       string         `json:"busNumber"`
	Route           string         `json:"route"`
	Area            string         `json:"area"`
	FromCity        string         `json:"fromCity"`
	ToCity          string         `json:"toCity"`
	DriverName      string         `json:"driverName"`
	DriverPhone     string         `json:"driverPhone"`
	Capacity        int            `json:"capacity"`
	CurrentLocation geo.Coordinate `json:"currentLocation"`
	Destination     geo.Coordinate `json:"destination"`
	IsActive        bool           `json:"isActive"`
	CurrentSpeed    float64        `json:"currentSpeed"` // km/h
	LastUpdated     time.Time      `json:"lastUpdated"`
}

// Stop is a named point on a route with a human-readable schedule label.
type Stop struct {
	StopName      string         `json:"stopName"`
	Location      geo.Coordinate `json:"location"`
	EstimatedTime string         `json:"estimatedTime"`
}

// Route is read-mostly reference data describing a named stop sequence.
// The tracking core never mutates routes.
type Route struct {
	RouteName string `json:"routeName"`
	Area      string `json:"area"`
	Stops     []Stop `json:"stops"`
}
