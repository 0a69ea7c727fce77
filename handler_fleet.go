package shuttletracker

import (
	"net/http"

	"github.com/vignan-transit/shuttle-tracker/fleet"
)

func (s *Server) handleListBuses(w http.ResponseWriter, r *http.Request) {
	buses, err := s.store.ListActive(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.ActiveBuses.Set(float64(len(buses)))
	}
	if buses == nil {
		buses = []fleet.Bus{}
	}
	writeJSON(w, http.StatusOK, buses)
}

func (s *Server) handleBusesByArea(w http.ResponseWriter, r *http.Request) {
	buses, err := s.store.ListActiveByArea(r.Context(), r.PathValue("area"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if buses == nil {
		buses = []fleet.Bus{}
	}
	writeJSON(w, http.StatusOK, buses)
}

func (s *Server) handleGetBus(w http.ResponseWriter, r *http.Request) {
	bus, err := s.store.GetByNumber(r.Context(), r.PathValue("busNumber"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bus)
}

func (s *Server) handleAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := s.store.Areas(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if areas == nil {
		areas = []string{}
	}
	writeJSON(w, http.StatusOK, areas)
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.store.FromCities(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if cities == nil {
		cities = []string{}
	}
	writeJSON(w, http.StatusOK, cities)
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := s.store.Routes(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if routes == nil {
		routes = []fleet.Route{}
	}
	writeJSON(w, http.StatusOK, routes)
}

func (s *Server) handleRoutesByArea(w http.ResponseWriter, r *http.Request) {
	routes, err := s.store.RoutesByArea(r.Context(), r.PathValue("area"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if routes == nil {
		routes = []fleet.Route{}
	}
	writeJSON(w, http.StatusOK, routes)
}
