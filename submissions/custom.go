package submissions

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"everbloom/db"
	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
)

// Custom bouquet build options. Prices are in rupees; the total is computed
// server-side so a tampered client cannot set its own price.
var sizePrices = map[string]int64{
	"small":       999,
	"medium":      1499,
	"large":       1999,
	"extra-large": 2499,
}

var addonPrices = map[string]int64{
	"vase":         499,
	"card":         99,
	"chocolates":   299,
	"fairy-lights": 199,
	"glitter":      149,
	"ribbon":       99,
}

var validFlowers = map[string]bool{
	"roses": true, "lilies": true, "tulips": true, "orchids": true,
	"sunflowers": true, "daisies": true, "carnations": true, "peonies": true,
}

var validColors = map[string]bool{
	"red": true, "pink": true, "white": true, "yellow": true,
	"purple": true, "blue": true, "orange": true, "green": true,
}

// CustomOrderRequest is a made-to-order bouquet enquiry.
type CustomOrderRequest struct {
	UserID     string    `json:"userId,omitempty" bson:"userId,omitempty"`
	Size       string    `json:"size" bson:"size"`
	Flowers    []string  `json:"flowers" bson:"flowers"`
	Colors     []string  `json:"colors" bson:"colors"`
	Addons     []string  `json:"addons" bson:"addons"`
	Requests   string    `json:"requests,omitempty" bson:"requests,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	Phone      string    `json:"phone" bson:"phone"`
	TotalPrice int64     `json:"totalPrice" bson:"totalPrice"`
	Status     string    `json:"status" bson:"status"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

func customTotal(size string, addons []string) int64 {
	total := sizePrices[size]
	for _, a := range addons {
		total += addonPrices[a]
	}
	return total
}

// SubmitCustomOrder validates and stores a custom bouquet request. Signed-in
// customers get the request attached to their account; guests just leave
// contact details.
func SubmitCustomOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req CustomOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, ok := sizePrices[req.Size]; !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Please choose a bouquet size")
		return
	}
	for _, f := range req.Flowers {
		if !validFlowers[f] {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown flower selection: "+f)
			return
		}
	}
	for _, c := range req.Colors {
		if !validColors[c] {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown color selection: "+c)
			return
		}
	}
	for _, a := range req.Addons {
		if _, ok := addonPrices[a]; !ok {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown addon selection: "+a)
			return
		}
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in all contact information")
		return
	}
	if !emailRegex.MatchString(req.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}
	if !phoneRegex.MatchString(req.Phone) {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid 10-digit phone number")
		return
	}

	req.UserID = utils.GetUserIDFromRequest(r)
	req.TotalPrice = customTotal(req.Size, req.Addons)
	req.Status = "pending"
	req.CreatedAt = time.Now()

	if _, err := db.CustomOrderCollection.InsertOne(ctx, req); err != nil {
		log.Printf("submissions: insert custom order: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit your request. Please try again.")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message":    "Custom bouquet request received",
		"totalPrice": req.TotalPrice,
	})
}
