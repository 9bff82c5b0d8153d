package product

import (
	"errors"

	productRepo "farmhub/database/repository/product"
	userRepo "farmhub/database/repository/user"
	"farmhub/models"
	"farmhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductService defines catalogue and review operations.
type ProductService interface {
	// Create lists a new product under the given admin.
	Create(adminID string, input models.ProductInput) (*models.Product, error)
	// Get fetches one product.
	Get(id string) (*models.Product, error)
	// Search returns one page of products plus the un-paginated total count.
	Search(criteria productRepo.SearchCriteria) ([]models.Product, int64, error)
	// Update replaces a product's listed fields.
	Update(id string, input models.ProductInput) (*models.Product, error)
	// Delete removes a product.
	Delete(id string) error
	// UpsertReview records the reviewer's review, replacing any they already
	// left on the product.
	UpsertReview(reviewerID string, req models.ProductReviewRequest) error
}

// DefaultProductService is the production implementation of ProductService.
type DefaultProductService struct {
	Repo  productRepo.ProductRepository
	Users userRepo.UserRepository
}

// Create lists a new product under the given admin.
func (s *DefaultProductService) Create(adminID string, input models.ProductInput) (*models.Product, error) {
	prod := &models.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Category:    input.Category,
		Stock:       input.Stock,
		Images:      input.Images,
		UserID:      adminID,
		Reviews:     []models.ProductReview{},
	}
	if err := s.Repo.Create(prod); err != nil {
		return nil, err
	}
	return prod, nil
}

// Get fetches one product.
func (s *DefaultProductService) Get(id string) (*models.Product, error) {
	prod, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("Product not found")
		}
		return nil, err
	}
	return prod, nil
}

// Search returns one page of products plus the un-paginated total count.
func (s *DefaultProductService) Search(criteria productRepo.SearchCriteria) ([]models.Product, int64, error) {
	return s.Repo.Search(criteria)
}

// Update replaces a product's listed fields.
func (s *DefaultProductService) Update(id string, input models.ProductInput) (*models.Product, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	fields := bson.M{
		"name":        input.Name,
		"price":       input.Price,
		"description": input.Description,
		"category":    input.Category,
		"stock":       input.Stock,
	}
	if input.Images != nil {
		fields["images"] = input.Images
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a product.
func (s *DefaultProductService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
