package prefs

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"everbloom/db"
	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ViewPrefs are the shop display preferences. They are an explicit per-user
// document, not ambient client-side state, so every device sees the same
// defaults.
type ViewPrefs struct {
	UserID   string `json:"userID,omitempty" bson:"userID"`
	ViewMode string `json:"viewMode" bson:"viewMode"`
	PerPage  int    `json:"perPage" bson:"perPage"`
	SortBy   string `json:"sortBy" bson:"sortBy"`
}

func defaultPrefs(userID string) ViewPrefs {
	return ViewPrefs{
		UserID:   userID,
		ViewMode: "grid",
		PerPage:  utils.DefaultPageSize,
		SortBy:   "featured",
	}
}

var validViewModes = map[string]bool{"grid": true, "list": true}

var validSorts = map[string]bool{
	"featured": true, "best-selling": true, "a-z": true, "z-a": true,
	"price-low-high": true, "price-high-low": true,
	"date-old-new": true, "date-new-old": true,
}

// GetViewPrefs returns the caller's display preferences, creating the
// defaults on first read.
func GetViewPrefs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var p ViewPrefs
	err := db.SettingsCollection.FindOne(ctx, bson.M{"userID": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		p = defaultPrefs(userID)
		_, _ = db.SettingsCollection.InsertOne(ctx, p)
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// UpdateViewPrefs replaces the caller's display preferences after
// validating each field against the allowed values.
func UpdateViewPrefs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var p ViewPrefs
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validViewModes[p.ViewMode] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid view mode")
		return
	}
	if !validSorts[p.SortBy] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid sort key")
		return
	}
	if !utils.ValidPageSize(p.PerPage) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid page size")
		return
	}
	p.UserID = userID

	opts := options.Replace().SetUpsert(true)
	if _, err := db.SettingsCollection.ReplaceOne(ctx, bson.M{"userID": userID}, p, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save preferences")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}
