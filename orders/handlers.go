package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"everbloom/cart"
	"everbloom/db"
	"everbloom/globals"
	"everbloom/models"
	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type checkoutRequest struct {
	ShippingInfo models.ShippingInfo `json:"shippingInfo"`
	PaymentInfo  models.PaymentInfo  `json:"paymentInfo"`
}

type checkoutResponse struct {
	Order        models.Order `json:"order"`
	PayableTotal int64        `json:"payableTotal"`
}

// PlaceOrder turns the caller's saved cart into an order. The cart snapshot,
// pricing and status are all decided here; the client only supplies shipping
// and payment details. A Google Pay order arrives after the widget's success
// callback and is stored as already paid. The route is wrapped in the
// idempotency middleware, so a retried submit replays the first response
// instead of creating a second order.
func PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Sign in to place an order")
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateShipping(req.ShippingInfo); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := ValidatePayment(req.PaymentInfo); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := cart.LoadUser(ctx, userID)
	if err != nil {
		log.Printf("checkout: load cart for %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred while placing your order")
		return
	}
	if len(doc.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Your cart is empty")
		return
	}

	now := time.Now()
	subtotal := cart.Subtotal(doc.Items)
	shipping := ShippingCost(subtotal)

	order := models.Order{
		OrderID:      "o" + utils.GenerateName(12),
		UserID:       userID,
		Items:        doc.Items,
		ShippingInfo: req.ShippingInfo,
		PaymentInfo:  req.PaymentInfo,
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal + shipping,
		Status:       models.OrderPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.PaymentInfo.Method == models.PayGooglePay {
		order.Status = models.OrderPaid
		order.PaymentInfo.Status = "success"
		order.PaymentInfo.PaidAt = &now
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Printf("checkout: insert order: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred while placing your order")
		return
	}

	if err := cart.Clear(ctx, userID); err != nil {
		// The order exists; an uncleared cart is recoverable by the client.
		log.Printf("checkout: clear cart for %s: %v", userID, err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, checkoutResponse{
		Order:        order,
		PayableTotal: PayableTotal(order),
	})
}

type orderListResponse struct {
	Orders  []models.Order `json:"orders"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"perPage"`
}

// ListOrders returns the caller's order history, newest first unless an
// explicit sort is requested. An optional status query narrows the list.
func ListOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Sign in to view orders")
		return
	}

	opts := utils.ParseQueryOptions(r)
	filter := bson.M{"userId": userID}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	sortDir := -1
	if opts.Sort == "date-old-new" {
		sortDir = 1
	}

	total, err := db.OrderCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Printf("orders: count for %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load orders")
		return
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: sortDir}}).
		SetSkip(int64((opts.Page - 1) * opts.Limit)).
		SetLimit(int64(opts.Limit))

	cursor, err := db.OrderCollection.Find(ctx, filter, findOpts)
	if err != nil {
		log.Printf("orders: list for %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load orders")
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		log.Printf("orders: decode for %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, orderListResponse{
		Orders:  orders,
		Total:   total,
		Page:    opts.Page,
		PerPage: opts.Limit,
	})
}

func isAdmin(r *http.Request) bool {
	roles, _ := r.Context().Value(globals.RoleKey).([]string)
	for _, role := range roles {
		if role == "admin" {
			return true
		}
	}
	return false
}

// loadOwnedOrder fetches an order and enforces that the caller owns it or is
// an admin.
func loadOwnedOrder(ctx context.Context, r *http.Request, orderID string) (models.Order, int, string) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		return models.Order{}, http.StatusUnauthorized, "Sign in to view orders"
	}

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, http.StatusNotFound, "Order not found"
	}
	if err != nil {
		log.Printf("orders: lookup %s: %v", orderID, err)
		return models.Order{}, http.StatusInternalServerError, "Could not load order"
	}
	if order.UserID != userID && !isAdmin(r) {
		// Hide existence from other customers.
		return models.Order{}, http.StatusNotFound, "Order not found"
	}
	return order, 0, ""
}

// GetOrder returns one order with its payable total and timeline.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, code, msg := loadOwnedOrder(ctx, r, ps.ByName("orderid"))
	if code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"order":        order,
		"payableTotal": PayableTotal(order),
		"timeline":     Timeline(order),
	})
}

// CancelOrder lets a customer cancel before the order ships.
func CancelOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, code, msg := loadOwnedOrder(ctx, r, ps.ByName("orderid"))
	if code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}
	if !CanTransition(order.Status, models.OrderCancelled) {
		utils.RespondWithError(w, http.StatusConflict, "Order can no longer be cancelled")
		return
	}
	applyTransition(ctx, w, order, models.OrderCancelled)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus moves an order forward through fulfilment. Admin only.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !isAdmin(r) {
		utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
		return
	}

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderId": ps.ByName("orderid")}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Printf("orders: lookup %s: %v", ps.ByName("orderid"), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load order")
		return
	}

	if !CanTransition(order.Status, req.Status) {
		utils.RespondWithError(w, http.StatusConflict, "Invalid status transition")
		return
	}
	applyTransition(ctx, w, order, req.Status)
}

func applyTransition(ctx context.Context, w http.ResponseWriter, order models.Order, to string) {
	now := time.Now()
	update := bson.M{"status": to, "updatedAt": now}
	switch to {
	case models.OrderShipped:
		update["shippedAt"] = now
		order.ShippedAt = &now
	case models.OrderDelivered:
		update["deliveredAt"] = now
		order.DeliveredAt = &now
	}

	res, err := db.OrderCollection.UpdateOne(ctx,
		bson.M{"orderId": order.OrderID, "status": order.Status},
		bson.M{"$set": update})
	if err != nil {
		log.Printf("orders: update %s to %s: %v", order.OrderID, to, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not update order")
		return
	}
	if res.MatchedCount == 0 {
		// Someone else moved the order after we loaded it.
		utils.RespondWithError(w, http.StatusConflict, "Order status changed, reload and retry")
		return
	}

	order.Status = to
	order.UpdatedAt = now
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"order":    order,
		"timeline": Timeline(order),
	})
}

// GetOrderTimeline returns just the fulfilment progression for an order.
func GetOrderTimeline(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, code, msg := loadOwnedOrder(ctx, r, ps.ByName("orderid"))
	if code != 0 {
		utils.RespondWithError(w, code, msg)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, Timeline(order))
}
