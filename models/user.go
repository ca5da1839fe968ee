package models

import "time"

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"-" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	EmailVerified bool      `json:"email_verified" bson:"email_verified"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`

	// Profile fields, created empty at registration and edited via the
	// profile endpoints.
	DisplayName     string `json:"displayName,omitempty" bson:"displayName,omitempty"`
	Phone           string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address         string `json:"address,omitempty" bson:"address,omitempty"`
	City            string `json:"city,omitempty" bson:"city,omitempty"`
	State           string `json:"state,omitempty" bson:"state,omitempty"`
	Pincode         string `json:"pincode,omitempty" bson:"pincode,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty" bson:"profileImageUrl,omitempty"`
}

// UserProfileResponse is the public view of a user document.
type UserProfileResponse struct {
	UserID          string    `json:"userid" bson:"userid"`
	Username        string    `json:"username" bson:"username"`
	DisplayName     string    `json:"displayName" bson:"displayName"`
	Email           string    `json:"email" bson:"email"`
	Phone           string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address         string    `json:"address,omitempty" bson:"address,omitempty"`
	City            string    `json:"city,omitempty" bson:"city,omitempty"`
	State           string    `json:"state,omitempty" bson:"state,omitempty"`
	Pincode         string    `json:"pincode,omitempty" bson:"pincode,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty" bson:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	LastLogin       time.Time `json:"last_login" bson:"last_login"`
}
