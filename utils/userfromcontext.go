package utils

import (
	"net/http"

	"everbloom/globals"
)

func GetUserIDFromRequest(r *http.Request) string {
	ctx := r.Context()
	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

// GetGuestSessionFromRequest returns the guest session identifier the client
// sends while unauthenticated. Empty when the header is absent.
func GetGuestSessionFromRequest(r *http.Request) string {
	if v, ok := r.Context().Value(globals.GuestSessionKey).(string); ok && v != "" {
		return v
	}
	return r.Header.Get("X-Guest-Session")
}
