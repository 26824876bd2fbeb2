package model

import "time"

// Admin represents a recycling facility operator
type Admin struct {
	ID           string    `json:"id" bson:"_id"`
	AdminName    string    `json:"adminName" bson:"admin_name"`
	Contact      string    `json:"contact" bson:"contact"`
	Email        string    `json:"email" bson:"email"`
	FacilityName string    `json:"facilityName" bson:"facility_name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// RegisterAdminRequest is the payload of POST /admin/register
type RegisterAdminRequest struct {
	AdminName    string `json:"adminName" form:"adminName" binding:"required"`
	Contact      string `json:"contact" form:"contact"`
	Email        string `json:"email" form:"email" binding:"required,email"`
	FacilityName string `json:"facilityName" form:"facilityName"`
	Password     string `json:"password" form:"password" binding:"required,min=6"`
}
