package user

import (
	"errors"
	"time"

	"farmhub/models"
	"farmhub/services/rating"
	"farmhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Rate records a direct rating against a user. The rating is appended to the
// target's embedded review list and their aggregate becomes the mean of that
// list.
func (s *DefaultUserService) Rate(raterID, targetID string, ratingValue float64, comment string) error {
	if !rating.Valid(ratingValue) {
		return utils.Validation("Rating must be between 1 and 5")
	}
	if raterID == targetID {
		return utils.Validation("You cannot rate yourself")
	}

	target, err := s.Repo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NotFound("User not found")
		}
		return err
	}

	reviews := append(target.Reviews, models.UserReview{
		RaterID:   raterID,
		Rating:    ratingValue,
		Comment:   comment,
		CreatedAt: time.Now(),
	})

	values := make([]float64, len(reviews))
	for i, r := range reviews {
		values[i] = r.Rating
	}
	mean, count := rating.Recompute(values)

	return s.Repo.UpdateFields(targetID, bson.M{
		"reviews":      reviews,
		"rating":       mean,
		"numOfReviews": count,
	})
}
