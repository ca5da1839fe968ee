package orders

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"everbloom/models"
	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GetInvoice renders the order as a downloadable PDF. Unpaid UPI orders get
// a payment QR in the corner so the invoice doubles as a payment request.
func GetInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, code, msg := loadOwnedOrder(ctx, r, ps.ByName("orderid"))
	if code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Everbloom Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order ID: %s", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Ship to: %s, %s, %s %s", order.ShippingInfo.FullName,
		order.ShippingInfo.City, order.ShippingInfo.State, order.ShippingInfo.Pincode))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(100, 8, "Item")
	pdf.Cell(25, 8, "Qty")
	pdf.Cell(30, 8, "Price")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		pdf.Cell(100, 8, item.Name)
		pdf.Cell(25, 8, fmt.Sprintf("%d", item.Quantity))
		pdf.Cell(30, 8, fmt.Sprintf("Rs %d", item.Price*int64(item.Quantity)))
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.Cell(0, 8, fmt.Sprintf("Subtotal: Rs %d", order.Subtotal))
	pdf.Ln(8)
	if order.ShippingCost == 0 {
		pdf.Cell(0, 8, "Shipping: Free")
	} else {
		pdf.Cell(0, 8, fmt.Sprintf("Shipping: Rs %d", order.ShippingCost))
	}
	pdf.Ln(8)
	if order.PaymentInfo.Method == models.PayCOD {
		pdf.Cell(0, 8, fmt.Sprintf("COD charge (on delivery): Rs %d", CODSurcharge))
		pdf.Ln(8)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: Rs %d", PayableTotal(order)))

	if order.PaymentInfo.Method == models.PayUPI && order.Status == models.OrderPending {
		qrPNG, err := qrcode.Encode(upiDeepLink(order.OrderID, PayableTotal(order)), qrcode.Medium, 256)
		if err == nil {
			imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("upiqr", imageOpts, bytes.NewReader(qrPNG))
			pdf.ImageOptions("upiqr", 150, 20, 40, 40, false, imageOpts, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
