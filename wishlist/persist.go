package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"everbloom/db"
	"everbloom/models"
	"everbloom/rdx"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrRevisionConflict = errors.New("wishlist: revision conflict")

const guestTTL = 7 * 24 * time.Hour

func guestKey(session string) string {
	return "wishlist:guest:" + session
}

// LoadGuest follows the same local-storage contract as the cart: JSON array
// under one key, corrupt payloads deleted and treated as empty.
func LoadGuest(session string) []models.WishlistItem {
	raw, err := rdx.RdxGet(guestKey(session))
	if err == redis.Nil {
		return []models.WishlistItem{}
	}
	if err != nil {
		log.Println("LoadGuest redis error:", err)
		return []models.WishlistItem{}
	}

	var items []models.WishlistItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		_ = rdx.RdxDel(guestKey(session))
		return []models.WishlistItem{}
	}
	return items
}

func SaveGuest(session string, items []models.WishlistItem) error {
	if len(items) == 0 {
		return rdx.RdxDel(guestKey(session))
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return rdx.SetWithExpiry(guestKey(session), string(data), guestTTL)
}

// LoadUser initializes an empty remote document on first sight; guest content
// is not merged in.
func LoadUser(ctx context.Context, userID string) (models.WishlistDoc, error) {
	var doc models.WishlistDoc
	err := db.WishlistCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		doc = models.WishlistDoc{UserID: userID, Items: []models.WishlistItem{}, Revision: 0}
		if _, ierr := db.WishlistCollection.InsertOne(ctx, doc); ierr != nil {
			return doc, ierr
		}
		return doc, nil
	}
	if err != nil {
		return doc, err
	}
	if doc.Items == nil {
		doc.Items = []models.WishlistItem{}
	}
	return doc, nil
}

// SaveUser replaces the whole items array behind the revision CAS.
func SaveUser(ctx context.Context, userID string, items []models.WishlistItem, expectedRev int64) (int64, error) {
	res, err := db.WishlistCollection.UpdateOne(ctx,
		bson.M{"userId": userID, "revision": expectedRev},
		bson.M{
			"$set": bson.M{"items": items},
			"$inc": bson.M{"revision": 1},
		},
	)
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, ErrRevisionConflict
	}
	return expectedRev + 1, nil
}
