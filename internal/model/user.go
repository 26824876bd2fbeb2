package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered e-waste customer
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Contact      string    `json:"contact" bson:"contact"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"` // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// RegisterUserRequest is the payload of POST /register
type RegisterUserRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Contact  string `json:"contact" form:"contact"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

// LoginRequest is shared by the user and admin login endpoints
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
