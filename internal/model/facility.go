package model

import "time"

// Facility is a collection/recycling facility registered by an admin
type Facility struct {
	ID                string    `json:"id" bson:"_id"`
	Email             string    `json:"email" bson:"email"`
	FacilityName      string    `json:"facilityName" bson:"facility_name"`
	FacilityDetails   string    `json:"facilityDetails" bson:"facility_details"`
	AdditionalDetails string    `json:"additionalDetails" bson:"additional_details"`
	Location          GeoPoint  `json:"location" bson:"location"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

// CreateFacilityRequest is the payload of POST /facilityDetails
type CreateFacilityRequest struct {
	Email             string `json:"email" form:"email" binding:"required"`
	FacilityName      string `json:"facilityName" form:"facilityName"`
	FacilityDetails   string `json:"facilityDetails" form:"facilityDetails"`
	AdditionalDetails string `json:"additionalDetails" form:"additionalDetails"`
	Location          string `json:"location" form:"location" binding:"required"`
}
