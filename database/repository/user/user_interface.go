package userRepo

import (
	"farmhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID with sensitive fields stripped.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateFields applies a partial update to a user record.
	UpdateFields(id string, fields bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a user by its ID with a projection.
	// Pass nil to strip sensitive fields only.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// GetByEmailWithProjection retrieves a user by its email with a projection.
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
	// SearchByRoleNear finds users holding role ordered by distance from point,
	// limited to maxDistance meters.
	SearchByRoleNear(role string, point models.GeoPoint, maxDistance int) ([]models.User, error)
	// GetByResetToken retrieves a user by a password-reset token hash whose
	// expiry has not passed.
	GetByResetToken(tokenHash string) (*models.User, error)
	// SetRating persists a recomputed aggregate rating and review count.
	SetRating(id string, rating float64, numOfReviews int) error
}
