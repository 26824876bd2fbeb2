package model

import "time"

// PickupRequest is an e-waste pickup request submitted by a user
type PickupRequest struct {
	ID              string    `json:"id" bson:"_id"`
	Email           string    `json:"email" bson:"email"`
	ProductCategory string    `json:"productCategory" bson:"product_category"`
	ProductName     string    `json:"productName" bson:"product_name"`
	AdditionalInfo  string    `json:"additionalInfo" bson:"additional_info"`
	Location        GeoPoint  `json:"location" bson:"location"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

// CreatePickupRequest is the payload of POST /EwasteRequest
type CreatePickupRequest struct {
	Email           string `json:"email" form:"email" binding:"required"`
	ProductCategory string `json:"productCategory" form:"productCategory"`
	ProductName     string `json:"productName" form:"productName"`
	AdditionalInfo  string `json:"additionalInfo" form:"additionalInfo"`
	Location        string `json:"location" form:"location" binding:"required"` // "lat,lon"
}
