package shuttletracker

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/vignan-transit/shuttle-tracker/auth"
	"github.com/vignan-transit/shuttle-tracker/fleet"
	"github.com/vignan-transit/shuttle-tracker/geo"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}

// writeDomainError maps domain errors to their HTTP status. Anything
// unrecognized is an opaque 500; the detail stays in the log.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fleet.ErrBusNotFound):
		writeError(w, http.StatusNotFound, "Bus not found")
	case errors.Is(err, fleet.ErrDuplicateBus):
		writeError(w, http.StatusConflict, "Bus number already registered")
	case errors.Is(err, geo.ErrInvalidCoordinate):
		writeError(w, http.StatusBadRequest, "Invalid coordinates")
	case errors.Is(err, geo.ErrInvalidDistance):
		writeError(w, http.StatusBadRequest, "Invalid distance")
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, auth.ErrUserExists):
		writeError(w, http.StatusConflict, "User already exists")
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}
