package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Cheertaboi/facility-pricing-service/internal/api/middleware"
	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

// maxBodyBytes bounds request bodies; carts are the largest payload.
const maxBodyBytes = 1 << 20

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return xerrors.InvalidArgument("invalid request body")
	}
	return nil
}

// actingUser resolves whose account a request targets. Callers may only act
// for themselves unless they hold the admin role.
func actingUser(r *http.Request, requested string) (string, error) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		return "", xerrors.Unauthenticated("No token provided")
	}
	if requested == "" {
		return claims.UserID, nil
	}
	if requested != claims.UserID && claims.Role != middleware.RoleAdmin {
		return "", xerrors.PermissionDenied("Cannot act on behalf of another user")
	}
	return requested, nil
}
