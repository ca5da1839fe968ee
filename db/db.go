package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ProductCollection     *mongo.Collection
	CartCollection        *mongo.Collection
	WishlistCollection    *mongo.Collection
	OrderCollection       *mongo.Collection
	UserCollection        *mongo.Collection
	SettingsCollection    *mongo.Collection
	CouponCollection      *mongo.Collection
	ContactCollection     *mongo.Collection
	CustomOrderCollection *mongo.Collection
	IdempotencyCollection *mongo.Collection
	Client                *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "everbloom"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ProductCollection = Client.Database(dbName).Collection("products")
	CartCollection = Client.Database(dbName).Collection("carts")
	WishlistCollection = Client.Database(dbName).Collection("wishlists")
	OrderCollection = Client.Database(dbName).Collection("orders")
	UserCollection = Client.Database(dbName).Collection("users")
	SettingsCollection = Client.Database(dbName).Collection("settings")
	CouponCollection = Client.Database(dbName).Collection("coupons")
	ContactCollection = Client.Database(dbName).Collection("contactMessages")
	CustomOrderCollection = Client.Database(dbName).Collection("customRequests")
	IdempotencyCollection = Client.Database(dbName).Collection("idempotency")
}
