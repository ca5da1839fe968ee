package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"everbloom/db"
	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type Coupon struct {
	Code      string    `bson:"code" json:"code"`
	Discount  float64   `bson:"discount" json:"discount"` // % value e.g. 10 means 10%
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
	Active    bool      `bson:"active" json:"active"`
}

type CouponRequest struct {
	Code     string `json:"code"`
	Subtotal int64  `json:"subtotal"` // cart subtotal in minor units
}

type CouponResponse struct {
	Valid    bool   `json:"valid"`
	Discount int64  `json:"discount"` // absolute amount, not %
	Message  string `json:"message"`
}

// ValidateCouponHandler checks a code against the coupons collection and
// quotes the absolute discount for the given subtotal.
func ValidateCouponHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req CouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	code := strings.TrimSpace(strings.ToLower(req.Code))
	if code == "" {
		utils.RespondWithJSON(w, http.StatusOK, CouponResponse{Valid: false, Message: "No coupon provided"})
		return
	}

	var coupon Coupon
	err := db.CouponCollection.FindOne(context.TODO(), bson.M{"code": code}).Decode(&coupon)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusOK, CouponResponse{Valid: false, Message: "Coupon not found"})
		return
	}

	if !coupon.Active {
		utils.RespondWithJSON(w, http.StatusOK, CouponResponse{Valid: false, Message: "Coupon inactive"})
		return
	}
	if time.Now().After(coupon.ExpiresAt) {
		utils.RespondWithJSON(w, http.StatusOK, CouponResponse{Valid: false, Message: "Coupon expired"})
		return
	}

	// flat % of the subtotal, rounded down
	var discount int64
	if req.Subtotal > 0 {
		discount = int64(float64(req.Subtotal) * coupon.Discount / 100)
	}

	utils.RespondWithJSON(w, http.StatusOK, CouponResponse{
		Valid:    true,
		Discount: discount,
		Message:  "Coupon applied successfully",
	})
}
