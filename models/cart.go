package models

// CartItem is a single line item in a user's cart.
type CartItem struct {
	ItemID            string `json:"id" bson:"itemId"`
	Name              string `json:"name" bson:"name"`
	Price             int64  `json:"price" bson:"price"` // unit price in minor currency units
	Quantity          int    `json:"quantity" bson:"quantity"`
	Image             string `json:"image,omitempty" bson:"image,omitempty"`
	PersonalizedNotes string `json:"personalizedNotes,omitempty" bson:"personalizedNotes,omitempty"`
}

// WishlistItem is a saved product reference. No quantity: an item is either
// on the list or it is not.
type WishlistItem struct {
	ItemID string `json:"id" bson:"itemId"`
	Name   string `json:"name" bson:"name"`
	Price  int64  `json:"price" bson:"price"`
	Image  string `json:"image,omitempty" bson:"image,omitempty"`
}

// CartDoc is the remote per-user cart document. Writes replace the whole items
// array; Revision guards against two sessions clobbering each other.
type CartDoc struct {
	UserID   string     `json:"userId" bson:"userId"`
	Items    []CartItem `json:"items" bson:"items"`
	Revision int64      `json:"revision" bson:"revision"`
}

// WishlistDoc mirrors CartDoc for wishlists.
type WishlistDoc struct {
	UserID   string         `json:"userId" bson:"userId"`
	Items    []WishlistItem `json:"items" bson:"items"`
	Revision int64          `json:"revision" bson:"revision"`
}
