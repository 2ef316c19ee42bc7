package response

import (
	"encoding/json"
	"net/http"

	"github.com/Cheertaboi/facility-pricing-service/internal/models"
	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

type APIError struct {
	Code    xerrors.Kind `json:"code"`
	Message string       `json:"message"`
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// PriceResponse flattens a price breakdown next to the success flag.
type PriceResponse struct {
	Success bool `json:"success"`
	*models.PriceResult
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, APIResponse{Success: true, Data: data})
}

func Price(w http.ResponseWriter, res *models.PriceResult) {
	writeJSON(w, http.StatusOK, PriceResponse{Success: true, PriceResult: res})
}

// Error writes err with the status matching its kind. Internal errors are
// reported without their details.
func Error(w http.ResponseWriter, err error) {
	kind := xerrors.KindOf(err)
	writeJSON(w, StatusOf(kind), APIResponse{
		Error: &APIError{Code: kind, Message: xerrors.MessageOf(err)},
	})
}

func StatusOf(kind xerrors.Kind) int {
	switch kind {
	case xerrors.KindUnauthenticated:
		return http.StatusUnauthorized
	case xerrors.KindPermissionDenied:
		return http.StatusForbidden
	case xerrors.KindInvalidArgument:
		return http.StatusBadRequest
	case xerrors.KindNotFound:
		return http.StatusNotFound
	case xerrors.KindFailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
