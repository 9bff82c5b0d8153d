package user

import (
	userRepo "farmhub/database/repository/user"
	"farmhub/models"
	"farmhub/services/notification"
	"farmhub/services/storage"
)

// UserService defines user-facing account, profile and rating operations.
type UserService interface {
	// Register creates an account and returns the user with a signed token.
	Register(req models.UserRegistrationRequest) (*models.User, string, error)
	// Authenticate verifies credentials and returns the user with a signed token.
	Authenticate(email, password string) (*models.User, string, error)
	// Logout revokes the user's current token.
	Logout(userID string) error
	// ForgotPassword issues a password-reset token and mails it best-effort.
	ForgotPassword(email string) error
	// ResetPassword sets a new password given a valid reset token.
	ResetPassword(token, newPassword string) error
	// GetProfile fetches the caller's own profile.
	GetProfile(id string) (*models.User, error)
	// UpdateProfile applies a partial profile update, uploading a new avatar
	// when one is supplied.
	UpdateProfile(id string, req models.UserUpdateRequest) (*models.User, error)
	// Search finds users by role ordered by distance from a point.
	Search(role string, longitude, latitude float64, maxDistance int) ([]models.User, error)
	// Rate records a direct rating against a user and recomputes their
	// embedded-review mean.
	Rate(raterID, targetID string, ratingValue float64, comment string) error
	// ListUsers returns every user (admin).
	ListUsers() ([]models.User, error)
	// GetUserDetails returns any user by ID (admin).
	GetUserDetails(id string) (*models.User, error)
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Storage storage.StorageService
	Notify  notification.NotificationService
}
