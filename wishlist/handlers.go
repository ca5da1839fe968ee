package wishlist

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"everbloom/live"
	"everbloom/models"
	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
)

type wishlistResponse struct {
	Items      []models.WishlistItem `json:"items"`
	TotalItems int                   `json:"totalItems"`
	Revision   int64                 `json:"revision,omitempty"`
}

func respondWishlist(w http.ResponseWriter, status int, items []models.WishlistItem, revision int64) {
	utils.RespondWithJSON(w, status, wishlistResponse{
		Items:      items,
		TotalItems: len(items),
		Revision:   revision,
	})
}

func mutate(w http.ResponseWriter, r *http.Request, op func([]models.WishlistItem) []models.WishlistItem) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if userID := utils.GetUserIDFromRequest(r); userID != "" {
		for attempt := 0; attempt < 2; attempt++ {
			doc, err := LoadUser(ctx, userID)
			if err != nil {
				log.Println("wishlist load error:", err)
				http.Error(w, "Could not load wishlist", http.StatusInternalServerError)
				return
			}
			items := op(doc.Items)
			rev, err := SaveUser(ctx, userID, items, doc.Revision)
			if err == ErrRevisionConflict {
				continue
			}
			if err != nil {
				log.Println("wishlist save error:", err)
				http.Error(w, "Could not save wishlist", http.StatusInternalServerError)
				return
			}
			live.Default.NotifyChange(userID, "wishlist", rev)
			respondWishlist(w, http.StatusOK, items, rev)
			return
		}
		http.Error(w, "Wishlist was modified concurrently, reload and retry", http.StatusConflict)
		return
	}

	session := utils.GetGuestSessionFromRequest(r)
	if session == "" {
		http.Error(w, "Missing guest session", http.StatusBadRequest)
		return
	}
	items := op(LoadGuest(session))
	if err := SaveGuest(session, items); err != nil {
		log.Println("guest wishlist save error:", err)
		http.Error(w, "Could not save wishlist", http.StatusInternalServerError)
		return
	}
	respondWishlist(w, http.StatusOK, items, 0)
}

// GetWishlist returns the caller's wishlist.
func GetWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if userID := utils.GetUserIDFromRequest(r); userID != "" {
		doc, err := LoadUser(ctx, userID)
		if err != nil {
			log.Println("GetWishlist load error:", err)
			http.Error(w, "Could not retrieve wishlist", http.StatusInternalServerError)
			return
		}
		respondWishlist(w, http.StatusOK, doc.Items, doc.Revision)
		return
	}

	session := utils.GetGuestSessionFromRequest(r)
	if session == "" {
		http.Error(w, "Missing guest session", http.StatusBadRequest)
		return
	}
	respondWishlist(w, http.StatusOK, LoadGuest(session), 0)
}

// AddToWishlist appends when the item is new; adding a present id is a no-op.
func AddToWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var item models.WishlistItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Println("AddToWishlist decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if item.ItemID == "" || item.Name == "" || item.Price <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	mutate(w, r, func(items []models.WishlistItem) []models.WishlistItem {
		return Add(items, item)
	})
}

// RemoveFromWishlist deletes an entry; unknown ids still succeed.
func RemoveFromWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itemID := ps.ByName("itemid")
	mutate(w, r, func(items []models.WishlistItem) []models.WishlistItem {
		return Remove(items, itemID)
	})
}

// ClearWishlist empties the collection.
func ClearWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	mutate(w, r, func([]models.WishlistItem) []models.WishlistItem {
		return []models.WishlistItem{}
	})
}
