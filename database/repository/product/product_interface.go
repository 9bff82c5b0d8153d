package productRepo

import (
	"farmhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProductRepository defines methods for product data access.
type ProductRepository interface {
	// Create inserts a new product record.
	Create(product *models.Product) error
	// GetByID retrieves a product by its unique ID.
	GetByID(id string) (*models.Product, error)
	// UpdateFields applies a partial update to a product record.
	UpdateFields(id string, fields bson.M) error
	// Delete removes a product record by its ID.
	Delete(id string) error
	// Search returns one page of products matching criteria together with the
	// un-paginated total count.
	Search(criteria SearchCriteria) ([]models.Product, int64, error)
	// SetReviews replaces a product's embedded review list and its derived
	// aggregate fields in one write.
	SetReviews(id string, reviews []models.ProductReview, ratings float64, numOfReviews int) error
	// DecrementStock atomically decrements a product's stock.
	DecrementStock(id string, quantity int) error
}
