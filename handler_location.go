package shuttletracker

import (
	"net/http"

	"github.com/vignan-transit/shuttle-tracker/fleet"
	"github.com/vignan-transit/shuttle-tracker/geo"
)

type locationUpdateResponse struct {
	Message string    `json:"message"`
	Bus     fleet.Bus `json:"bus"`
}

type seedResponse struct {
	Message    string `json:"message"`
	BusesCount int    `json:"busesCount"`
}

func (s *Server) handleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	pos := fleet.Position{
		Location: geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude},
		SpeedKMH: req.Speed,
	}
	bus, err := s.store.UpdateLocation(r.Context(), r.PathValue("busNumber"), pos)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.LocationUpdates.Inc()
	}
	writeJSON(w, http.StatusOK, locationUpdateResponse{
		Message: "Bus location updated",
		Bus:     bus,
	})
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	buses := fleet.SeedBuses()
	if err := s.store.ReplaceFleet(r.Context(), buses, fleet.SeedRoutes()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seedResponse{
		Message:    "Fleet seeded successfully",
		BusesCount: len(buses),
	})
}
