package tradeRepo

import (
	"farmhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TradeRepository defines methods for trade data access.
type TradeRepository interface {
	// Create inserts a new trade record.
	Create(trade *models.Trade) error
	// GetByID retrieves a trade by its unique ID.
	GetByID(id string) (*models.Trade, error)
	// UpdateFields applies a partial update to a trade record.
	UpdateFields(id string, fields bson.M) error
	// ListByParty retrieves all trades where the user is seller or buyer.
	ListByParty(userID string) ([]models.Trade, error)
	// SellerRatingsReceived returns the seller-rating values recorded against
	// the user across all their trades as seller.
	SellerRatingsReceived(userID string) ([]float64, error)
	// BuyerRatingsReceived returns the buyer-rating values recorded against
	// the user across all their trades as buyer.
	BuyerRatingsReceived(userID string) ([]float64, error)
}
