package search

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"everbloom/db"
	"everbloom/models"
	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const defaultSuggestLimit = 8

// IndexEvent applies one indexing message. Product lookups go to Mongo; an
// id missing there means the product was deleted and there is nothing to
// index.
func IndexEvent(ctx context.Context, event models.Index) error {
	if event.EntityType != "product" {
		log.Printf("search: ignoring index event for entity %q", event.EntityType)
		return nil
	}

	var p models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productId": event.EntityId}).Decode(&p)
	if err != nil {
		return err
	}

	if event.Method == "DELETE" {
		return RemoveProduct(ctx, p)
	}
	return IndexProduct(ctx, p)
}

// SuggestHandler serves type-ahead results: token-intersected product ids
// from the inverted index, hydrated from Mongo.
func SuggestHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 25 {
		limit = defaultSuggestLimit
	}

	ids, err := GetIndexedResults(ctx, query, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Search unavailable")
		return
	}

	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		var p models.Product
		if err := db.ProductCollection.FindOne(ctx, bson.M{"productId": id}).Decode(&p); err != nil {
			log.Printf("search: hydrate %s: %v", id, err)
			continue
		}
		products = append(products, p)
	}
	utils.RespondWithJSON(w, http.StatusOK, products)
}
