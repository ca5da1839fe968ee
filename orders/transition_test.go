package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"everbloom/db"
	"everbloom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// A status update races against other admins and the customer's cancel; the
// write filters on the status we loaded, so a zero match means someone else
// moved the order first and the caller must reload.
func TestApplyTransitionConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("concurrent move answers conflict", func(mt *mtest.T) {
		orig := db.OrderCollection
		db.OrderCollection = mt.Coll
		defer func() { db.OrderCollection = orig }()

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		w := httptest.NewRecorder()
		order := models.Order{OrderID: "o1", UserID: "u1", Status: models.OrderProcessing}
		applyTransition(context.Background(), w, order, models.OrderShipped)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	mt.Run("matched write answers ok", func(mt *mtest.T) {
		orig := db.OrderCollection
		db.OrderCollection = mt.Coll
		defer func() { db.OrderCollection = orig }()

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		w := httptest.NewRecorder()
		order := models.Order{OrderID: "o1", UserID: "u1", Status: models.OrderProcessing}
		applyTransition(context.Background(), w, order, models.OrderShipped)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
