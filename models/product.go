package models

import "time"

// ProductReview is a buyer review embedded in a product document. A user has
// at most one review per product; resubmitting replaces the existing entry.
type ProductReview struct {
	UserID  string  `bson:"userId" json:"userId"`
	Name    string  `bson:"name" json:"name"`
	Rating  float64 `bson:"rating" json:"rating"` // Expected value between 1 and 5.
	Comment string  `bson:"comment" json:"comment"`
}

// Product is a sellable item listed by an admin.
type Product struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Price       float64  `bson:"price" json:"price"`
	Description string   `bson:"description" json:"description"`
	Category    string   `bson:"category" json:"category"`
	Stock       int      `bson:"stock" json:"stock"`
	Images      []string `bson:"images" json:"images"`
	UserID      string   `bson:"userId" json:"userId"` // admin who listed it

	Ratings      float64         `bson:"ratings" json:"ratings"`
	NumOfReviews int             `bson:"numOfReviews" json:"numOfReviews"`
	Reviews      []ProductReview `bson:"reviews" json:"reviews"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock" binding:"min=0"`
	Images      []string `json:"images"`
}

// ProductReviewRequest is the payload for PUT /review.
type ProductReviewRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Rating    float64 `json:"rating" binding:"required"`
	Comment   string  `json:"comment"`
}
