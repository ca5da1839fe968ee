package catalog

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"everbloom/db"
	"everbloom/models"
	"everbloom/mq"
	"everbloom/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureSeeded inserts the bundled catalog when the products collection is
// empty, so a fresh deployment has something to sell.
func EnsureSeeded(ctx context.Context) error {
	n, err := db.ProductCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(bundled))
	now := time.Now()
	for _, p := range bundled {
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}
	if _, err = db.ProductCollection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("seeded %d products", len(docs))
	for _, p := range bundled {
		mq.Emit(ctx, models.Index{EntityType: "product", Method: "POST", EntityId: p.ProductID})
	}
	return nil
}

// loadAll fetches the full catalog from Mongo, falling back to the bundled
// list when the database is unreachable. Browsing stays up either way.
func loadAll(ctx context.Context) []models.Product {
	cursor, err := db.ProductCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("catalog: falling back to bundled products: %v", err)
		return Bundled()
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Printf("catalog: decode products failed, using bundled: %v", err)
		return Bundled()
	}
	if len(products) == 0 {
		return Bundled()
	}
	return products
}

func parseFilters(r *http.Request, search string) Filters {
	q := r.URL.Query()
	min, _ := strconv.ParseInt(q.Get("minPrice"), 10, 64)
	max, _ := strconv.ParseInt(q.Get("maxPrice"), 10, 64)
	return Filters{
		Occasion:   q.Get("occasion"),
		Fandom:     q.Get("fandom"),
		Type:       q.Get("type"),
		FlowerType: q.Get("flowerType"),
		Size:       q.Get("size"),
		PriceMin:   min,
		PriceMax:   max,
		Search:     search,
	}
}

type productListResponse struct {
	Products   []models.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	TotalPages int              `json:"totalPages"`
}

// GetProducts lists the catalog with filtering, sorting and pagination
// applied in that order.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := utils.ParseQueryOptions(r)
	products := parseFilters(r, opts.Search).Apply(loadAll(ctx))
	SortProducts(products, opts.Sort)

	total := len(products)
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	utils.RespondWithJSON(w, http.StatusOK, productListResponse{
		Products:   Paginate(products, opts.Page, opts.Limit),
		Total:      total,
		Page:       opts.Page,
		PerPage:    opts.Limit,
		TotalPages: totalPages,
	})
}

func findProduct(ctx context.Context, id string) (models.Product, bool) {
	var p models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productId": id}).Decode(&p)
	if err == nil {
		return p, true
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("catalog: product lookup %s: %v", id, err)
	}
	return BundledByID(id)
}

// GetProduct returns a single product by id.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	p, ok := findProduct(ctx, ps.ByName("productid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// GetRelatedProducts returns the products a listing links to. Missing
// references are skipped rather than failing the whole response.
func GetRelatedProducts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	p, ok := findProduct(ctx, ps.ByName("productid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	related := make([]models.Product, 0, len(p.RelatedProducts))
	for _, id := range p.RelatedProducts {
		if rp, ok := findProduct(ctx, id); ok {
			related = append(related, rp)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, related)
}
