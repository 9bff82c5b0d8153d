package user

import (
	"context"
	"errors"
	"time"

	"farmhub/models"
	"farmhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// GetProfile fetches the caller's own profile.
func (s *DefaultUserService) GetProfile(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("User not found")
		}
		return nil, err
	}
	return usr, nil
}

// UpdateProfile applies a partial profile update. Zero-value fields are left
// untouched; a supplied avatar replaces the stored one.
func (s *DefaultUserService) UpdateProfile(id string, req models.UserUpdateRequest) (*models.User, error) {
	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Address != "" {
		fields["address"] = req.Address
	}
	if req.Location != nil {
		if len(req.Location.Coordinates) != 2 {
			return nil, utils.Validation("Location must carry [longitude, latitude] coordinates")
		}
		fields["location"] = models.NewGeoPoint(req.Location.Coordinates[0], req.Location.Coordinates[1])
	}

	if req.Avatar != "" {
		if s.Storage == nil {
			return nil, utils.Validation("Avatar storage is not configured")
		}
		current, err := s.GetProfile(id)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		avatar, err := s.Storage.UploadAvatar(ctx, req.Avatar)
		if err != nil {
			return nil, err
		}
		fields["avatar"] = avatar

		if current.Avatar.PublicID != "" {
			if err := s.Storage.DeleteAvatar(ctx, current.Avatar.PublicID); err != nil {
				utils.GetLogger().Warn("Failed to delete previous avatar",
					zap.String("userID", id), zap.Error(err))
			}
		}
	}

	if len(fields) == 0 {
		return nil, utils.Validation("No updatable fields provided")
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.GetProfile(id)
}

// Search finds users by role ordered by distance from a point, limited to
// maxDistance meters.
func (s *DefaultUserService) Search(role string, longitude, latitude float64, maxDistance int) ([]models.User, error) {
	if !models.ValidRole(role) {
		return nil, utils.Validation("Invalid role")
	}
	if maxDistance <= 0 {
		maxDistance = 10000
	}
	return s.Repo.SearchByRoleNear(role, models.NewGeoPoint(longitude, latitude), maxDistance)
}

// ListUsers returns every user (admin).
func (s *DefaultUserService) ListUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// GetUserDetails returns any user by ID (admin).
func (s *DefaultUserService) GetUserDetails(id string) (*models.User, error) {
	return s.GetProfile(id)
}
