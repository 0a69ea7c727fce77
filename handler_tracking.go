package shuttletracker

import (
	"net/http"

	"github.com/vignan-transit/shuttle-tracker/geo"
)

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	userPos := geo.Coordinate{Latitude: req.UserLatitude, Longitude: req.UserLongitude}
	result, err := s.tracker.Track(r.Context(), req.BusID, userPos)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.TrackRequests.Inc()
	}
	writeJSON(w, http.StatusOK, result)
}
