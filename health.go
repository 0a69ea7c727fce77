package shuttletracker

import "net/http"

type healthResponse struct {
	Status      string `json:"status"`
	ActiveBuses int    `json:"activeBuses"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	buses, err := s.store.ListActive(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		ActiveBuses: len(buses),
	})
}
