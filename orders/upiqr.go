package orders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

func merchantVPA() string {
	if v := os.Getenv("UPI_VPA"); v != "" {
		return v
	}
	return "everbloom@upi"
}

// upiDeepLink builds a upi://pay link the customer's payment app can scan.
// The amount is in rupees; the order id rides along as the transaction note.
func upiDeepLink(orderID string, amount int64) string {
	v := url.Values{}
	v.Set("pa", merchantVPA())
	v.Set("pn", "Everbloom")
	v.Set("am", fmt.Sprintf("%d", amount))
	v.Set("cu", "INR")
	v.Set("tn", "Order "+orderID)
	return "upi://pay?" + v.Encode()
}

// GetUPIQR serves a scannable payment QR for a pending UPI order.
func GetUPIQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, code, msg := loadOwnedOrder(ctx, r, ps.ByName("orderid"))
	if code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}

	png, err := qrcode.Encode(upiDeepLink(order.OrderID, PayableTotal(order)), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
