package cart

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

// ErrRevisionConflict means another session replaced the remote cart between
// our read and our write. Callers reload and reapply.
var ErrRevisionConflict = errors.New("cart: revision conflict")

// Guest carts live in Redis the way the browser kept them in local storage:
// a JSON array under one key, deleted outright when the cart empties.
const guestTTL = 7 * 24 * time.Hour

func guestKey(session string) string {
	return "cart:guest:" + session
}

// LoadGuest reads a guest cart. Corrupt payloads (anything that does not
// decode as an array) are deleted and treated as empty.
func LoadGuest(session string) []models.CartItem {
	raw, err := rdx.RdxGet(guestKey(session))
	if err == redis.Nil {
		return []models.CartItem{}
	}
	if err != nil {
		log.Println("LoadGuest redis error:", err)
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		_ = rdx.RdxDel(guestKey(session))
		return []models.CartItem{}
	}
	return items
}

// SaveGuest overwrites the guest cart; an empty array deletes the key rather
// than storing "[]".
func SaveGuest(session string, items []models.CartItem) error {
	if len(items) == 0 {
		return rdx.RdxDel(guestKey(session))
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return rdx.SetWithExpiry(guestKey(session), string(data), guestTTL)
}

// LoadUser fetches the remote cart for an identity, initializing an empty
// document on first sight. The guest cart for the session is NOT merged in;
// it is simply left behind to expire.
func LoadUser(ctx context.Context, userID string) (models.CartDoc, error) {
	var doc models.CartDoc
	err := db.CartCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		doc = models.CartDoc{UserID: userID, Items: []models.CartItem{}, Revision: 0}
		if _, ierr := db.CartCollection.InsertOne(ctx, doc); ierr != nil {
			return doc, ierr
		}
		return doc, nil
	}
	if err != nil {
		return doc, err
	}
	if doc.Items == nil {
		doc.Items = []models.CartItem{}
	}
	return doc, nil
}

// SaveUser replaces the whole items array, conditional on the revision we
// read. A concurrent writer bumps the revision first and we get
// ErrRevisionConflict instead of silently clobbering their write.
func SaveUser(ctx context.Context, userID string, items []models.CartItem, expectedRev int64) (int64, error) {
	res, err := db.CartCollection.UpdateOne(ctx,
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
