package prefs

import (
	"net/http"
	"time"

	"everbloom/rdx"
	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
)

// One-time UI dismissals (splash screen, promotional banner) are scoped to
// the session, guest or signed-in, and expire on their own.
const dismissalTTL = 24 * time.Hour

var validDismissals = map[string]bool{"splash": true, "banner": true}

func dismissalKey(session, name string) string {
	return "dismissed:" + session + ":" + name
}

func sessionID(r *http.Request) string {
	if userID := utils.GetUserIDFromRequest(r); userID != "" {
		return userID
	}
	return utils.GetGuestSessionFromRequest(r)
}

// GetDismissals reports which one-time UI elements this session has already
// closed.
func GetDismissals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session := sessionID(r)
	if session == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing session")
		return
	}

	out := map[string]bool{}
	for name := range validDismissals {
		out[name] = rdx.Exists(dismissalKey(session, name))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Dismiss records that the session closed a one-time UI element.
func Dismiss(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("name")
	if !validDismissals[name] {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown dismissal")
		return
	}

	session := sessionID(r)
	if session == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing session")
		return
	}

	if err := rdx.SetWithExpiry(dismissalKey(session, name), "1", dismissalTTL); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save dismissal")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"dismissed": name})
}
