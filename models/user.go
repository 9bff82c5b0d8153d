package models

import "time"

// User roles.
const (
	RoleFarmer       = "farmer"
	RoleVeterinarian = "veterinarian"
	RoleTrader       = "trader"
	RoleAdmin        = "admin"
)

// ValidRole reports whether role is one of the roles the platform knows.
func ValidRole(role string) bool {
	switch role {
	case RoleFarmer, RoleVeterinarian, RoleTrader, RoleAdmin:
		return true
	}
	return false
}

// UserReview is a rating left directly on a user by another user.
type UserReview struct {
	RaterID   string    `bson:"raterId" json:"raterId"`
	Rating    float64   `bson:"rating" json:"rating"` // Expected value between 1 and 5.
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// User represents a platform member: farmer, veterinarian, trader or admin.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Phone        string    `bson:"phone" json:"phone"`
	Address      string    `bson:"address" json:"address"`
	Location     *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	Avatar       Avatar    `bson:"avatar" json:"avatar"`

	// Aggregate rating across trades, consultations and direct reviews.
	Rating       float64      `bson:"rating" json:"rating"`
	NumOfReviews int          `bson:"numOfReviews" json:"numOfReviews"`
	Reviews      []UserReview `bson:"reviews" json:"reviews"`

	TokenHash           string    `bson:"tokenHash,omitempty" json:"-"`
	ResetPasswordToken  string    `bson:"resetPasswordToken,omitempty" json:"-"`
	ResetPasswordExpire time.Time `bson:"resetPasswordExpire,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistrationRequest is the payload for POST /register.
type UserRegistrationRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	Role      string  `json:"role"`
	Phone     string  `json:"phone" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// UserUpdateRequest is the payload for PUT /me/update. Zero-value fields are
// left untouched.
type UserUpdateRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	Location *GeoPoint `json:"location"`
	Avatar   string    `json:"avatar"` // base64 or remote URL handed to storage
}
