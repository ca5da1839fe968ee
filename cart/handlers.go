package cart

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"everbloom/live"
	"everbloom/models"
	"everbloom/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// NewGuestSession mints a session identifier for a browser that has not signed
// in yet. The client sends it back as X-Guest-Session on cart and wishlist
// calls until login.
func NewGuestSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"session": uuid.NewString()})
}

type cartResponse struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	Subtotal   int64             `json:"subtotal"`
	Revision   int64             `json:"revision,omitempty"`
}

func respondCart(w http.ResponseWriter, status int, items []models.CartItem, revision int64) {
	utils.RespondWithJSON(w, status, cartResponse{
		Items:      items,
		TotalItems: TotalItems(items),
		Subtotal:   Subtotal(items),
		Revision:   revision,
	})
}

// mutate loads the caller's cart, applies op to the item array, and writes the
// whole result back. Authenticated carts go through the revision CAS with one
// reload-and-reapply on conflict; guest carts go to the session store.
func mutate(w http.ResponseWriter, r *http.Request, op func([]models.CartItem) []models.CartItem) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if userID := utils.GetUserIDFromRequest(r); userID != "" {
		for attempt := 0; attempt < 2; attempt++ {
			doc, err := LoadUser(ctx, userID)
			if err != nil {
				log.Println("cart load error:", err)
				http.Error(w, "Could not load cart", http.StatusInternalServerError)
				return
			}
			items := op(doc.Items)
			rev, err := SaveUser(ctx, userID, items, doc.Revision)
			if err == ErrRevisionConflict {
				continue
			}
			if err != nil {
				log.Println("cart save error:", err)
				http.Error(w, "Could not save cart", http.StatusInternalServerError)
				return
			}
			live.Default.NotifyChange(userID, "cart", rev)
			respondCart(w, http.StatusOK, items, rev)
			return
		}
		http.Error(w, "Cart was modified concurrently, reload and retry", http.StatusConflict)
		return
	}

	session := utils.GetGuestSessionFromRequest(r)
	if session == "" {
		http.Error(w, "Missing guest session", http.StatusBadRequest)
		return
	}
	items := op(LoadGuest(session))
	if err := SaveGuest(session, items); err != nil {
		log.Println("guest cart save error:", err)
		http.Error(w, "Could not save cart", http.StatusInternalServerError)
		return
	}
	respondCart(w, http.StatusOK, items, 0)
}

// GetCart returns the caller's cart with derived totals.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if userID := utils.GetUserIDFromRequest(r); userID != "" {
		doc, err := LoadUser(ctx, userID)
		if err != nil {
			log.Println("GetCart load error:", err)
			http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
			return
		}
		respondCart(w, http.StatusOK, doc.Items, doc.Revision)
		return
	}

	session := utils.GetGuestSessionFromRequest(r)
	if session == "" {
		http.Error(w, "Missing guest session", http.StatusBadRequest)
		return
	}
	respondCart(w, http.StatusOK, LoadGuest(session), 0)
}

// decodeAddItem reads an add payload. A payload without a quantity means
// "one more", so absent defaults to 1 while an explicit zero or negative
// quantity is rejected.
func decodeAddItem(body io.Reader) (models.CartItem, error) {
	var payload struct {
		models.CartItem
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return models.CartItem{}, err
	}
	item := payload.CartItem
	if payload.Quantity == nil {
		item.Quantity = 1
	} else {
		item.Quantity = *payload.Quantity
	}
	return item, nil
}

// AddToCart increments quantity if the item exists, or appends a new line.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	item, err := decodeAddItem(r.Body)
	if err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if item.ItemID == "" || item.Name == "" || item.Price <= 0 || item.Quantity <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	mutate(w, r, func(items []models.CartItem) []models.CartItem {
		return Add(items, item)
	})
}

// UpdateQuantity replaces an item's quantity; zero or below removes it.
func UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itemID := ps.ByName("itemid")

	var payload struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Quantity == nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	mutate(w, r, func(items []models.CartItem) []models.CartItem {
		return SetQuantity(items, itemID, *payload.Quantity)
	})
}

// RemoveFromCart deletes a line; an unknown item id still succeeds.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itemID := ps.ByName("itemid")
	mutate(w, r, func(items []models.CartItem) []models.CartItem {
		return Remove(items, itemID)
	})
}

// ClearCart empties the collection.
func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	mutate(w, r, func([]models.CartItem) []models.CartItem {
		return []models.CartItem{}
	})
}

// Clear empties a user's cart outside a request cycle (checkout uses this).
func Clear(ctx context.Context, userID string) error {
	for attempt := 0; attempt < 2; attempt++ {
		doc, err := LoadUser(ctx, userID)
		if err != nil {
			return err
		}
		rev, err := SaveUser(ctx, userID, []models.CartItem{}, doc.Revision)
		if err == ErrRevisionConflict {
			continue
		}
		if err != nil {
			return err
		}
		live.Default.NotifyChange(userID, "cart", rev)
		return nil
	}
	return ErrRevisionConflict
}
