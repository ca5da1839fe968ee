package profile

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"time"

	"everbloom/db"
	"everbloom/models"
	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	phoneRegex   = regexp.MustCompile(`^\d{10}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
)

func toProfileResponse(user models.User) models.UserProfileResponse {
	return models.UserProfileResponse{
		UserID:          user.UserID,
		Username:        user.Username,
		DisplayName:     user.DisplayName,
		Email:           user.Email,
		Phone:           user.Phone,
		Address:         user.Address,
		City:            user.City,
		State:           user.State,
		Pincode:         user.Pincode,
		ProfileImageURL: user.ProfileImageURL,
		CreatedAt:       user.CreatedAt,
		LastLogin:       user.LastLogin,
	}
}

func fetchProfile(ctx context.Context, userID string) (models.UserProfileResponse, error) {
	if p, ok := cachedProfile(userID); ok {
		return p, nil
	}
	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		return models.UserProfileResponse{}, err
	}
	p := toProfileResponse(user)
	cacheProfile(userID, p)
	return p, nil
}

// GetProfile returns the authenticated user's own profile.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	p, err := fetchProfile(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("profile: fetch %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

type profileUpdateRequest struct {
	DisplayName *string `json:"displayName"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Pincode     *string `json:"pincode"`
}

// EditProfile updates the caller's contact and address fields. Absent fields
// are left untouched; present-but-empty strings clear them.
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Phone != nil && *req.Phone != "" && !phoneRegex.MatchString(*req.Phone) {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid 10-digit phone number")
		return
	}
	if req.Pincode != nil && *req.Pincode != "" && !pincodeRegex.MatchString(*req.Pincode) {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid 6-digit pincode")
		return
	}

	updates := bson.M{"updated_at": time.Now()}
	setIf := func(field string, v *string) {
		if v != nil {
			updates[field] = *v
		}
	}
	setIf("displayName", req.DisplayName)
	setIf("phone", req.Phone)
	setIf("address", req.Address)
	setIf("city", req.City)
	setIf("state", req.State)
	setIf("pincode", req.Pincode)

	_, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": updates})
	if err != nil {
		log.Printf("profile: update %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	InvalidateCachedProfile(userID)

	p, err := fetchProfile(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}
