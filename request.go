package shuttletracker

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type registerRequest struct {
	StudentID   string `json:"studentId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
}

type loginRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type trackRequest struct {
	BusID         string  `json:"busId" validate:"required"`
	UserLatitude  float64 `json:"userLatitude" validate:"gte=-90,lte=90"`
	UserLongitude float64 `json:"userLongitude" validate:"gte=-180,lte=180"`
}

type locationUpdateRequest struct {
	Latitude  float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64  `json:"longitude" validate:"gte=-180,lte=180"`
	Speed     *float64 `json:"speed" validate:"omitempty,gte=0"`
}

// decodeAndValidate decodes the JSON body into dst and runs its validation
// tags. Writes the 400 response itself and reports whether decoding passed.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}
