package product

import (
	"errors"

	"farmhub/models"
	"farmhub/services/rating"
	"farmhub/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// UpsertReview records the reviewer's review on a product. A reviewer has at
// most one review per product; resubmitting replaces the existing entry and
// the review count stays the same.
func (s *DefaultProductService) UpsertReview(reviewerID string, req models.ProductReviewRequest) error {
	if !rating.Valid(req.Rating) {
		return utils.Validation("Rating must be between 1 and 5")
	}

	reviewer, err := s.Users.GetByID(reviewerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NotFound("User not found")
		}
		return err
	}

	prod, err := s.Get(req.ProductID)
	if err != nil {
		return err
	}

	review := models.ProductReview{
		UserID:  reviewerID,
		Name:    reviewer.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	reviews := prod.Reviews
	replaced := false
	for i := range reviews {
		if reviews[i].UserID == reviewerID {
			reviews[i] = review
			replaced = true
			break
		}
	}
	if !replaced {
		reviews = append(reviews, review)
	}

	values := make([]float64, len(reviews))
	for i, r := range reviews {
		values[i] = r.Rating
	}
	mean, count := rating.Recompute(values)

	return s.Repo.SetReviews(prod.ID, reviews, mean, count)
}
