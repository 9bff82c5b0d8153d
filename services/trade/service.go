package trade

import (
	"errors"
	"fmt"
	"time"

	productRepo "farmhub/database/repository/product"
	tradeRepo "farmhub/database/repository/trade"
	userRepo "farmhub/database/repository/user"
	"farmhub/models"
	"farmhub/services/notification"
	"farmhub/services/policy"
	"farmhub/services/rating"
	"farmhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TradeService defines the trade lifecycle operations.
type TradeService interface {
	// Create opens a pending trade for the caller as buyer and notifies the
	// seller best-effort.
	Create(buyerID string, req models.TradeRequest) (*models.Trade, error)
	// Mine lists the trades where the caller is buyer or seller.
	Mine(userID string) ([]models.Trade, error)
	// Get fetches one trade; only a party may view it.
	Get(userID, id string) (*models.Trade, error)
	// Transition moves a trade to a new status; only the seller may do so.
	// Entering "completed" stamps the completion time and decrements the
	// product's stock by the traded quantity.
	Transition(userID, id, status string) (*models.Trade, error)
	// Rate records a counterpart rating on a completed trade and recomputes
	// the ratee's aggregate.
	Rate(userID, id string, req models.TradeRateRequest) error
}

// DefaultTradeService is the production implementation of TradeService.
type DefaultTradeService struct {
	Trades     tradeRepo.TradeRepository
	Products   productRepo.ProductRepository
	Users      userRepo.UserRepository
	Aggregator *rating.Aggregator
	Notify     notification.NotificationService
}

// Create opens a pending trade after checking product availability.
func (s *DefaultTradeService) Create(buyerID string, req models.TradeRequest) (*models.Trade, error) {
	prod, err := s.Products.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("Product not found")
		}
		return nil, err
	}

	if prod.Stock < req.Quantity {
		return nil, utils.Conflict("Not enough stock available")
	}

	price := req.Price
	if price == 0 {
		price = prod.Price * float64(req.Quantity)
	}

	trade := &models.Trade{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		SellerID:  req.SellerID,
		BuyerID:   buyerID,
		Quantity:  req.Quantity,
		Price:     price,
		Status:    models.TradeStatusPending,
	}
	if err := s.Trades.Create(trade); err != nil {
		return nil, err
	}

	s.notifySeller(trade, prod)
	return trade, nil
}

// notifySeller mails the seller about a new trade request, best-effort.
func (s *DefaultTradeService) notifySeller(trade *models.Trade, prod *models.Product) {
	seller, err := s.Users.GetByID(trade.SellerID)
	if err != nil {
		return
	}
	buyerName := "a buyer"
	if buyer, err := s.Users.GetByID(trade.BuyerID); err == nil {
		buyerName = buyer.Name
	}

	notification.Dispatch(s.Notify, notification.Email{
		To:      seller.Email,
		Subject: "New Trade Request",
		Body: fmt.Sprintf("You have a new trade request from %s.\n\nProduct: %s\nQuantity: %d\nPrice: %.2f\n\n"+
			"Please login to your account to respond.", buyerName, prod.Name, trade.Quantity, trade.Price),
	})
}

// Mine lists the trades where the caller is buyer or seller.
func (s *DefaultTradeService) Mine(userID string) ([]models.Trade, error) {
	return s.Trades.ListByParty(userID)
}

// Get fetches one trade; only a party may view it.
func (s *DefaultTradeService) Get(userID, id string) (*models.Trade, error) {
	trade, err := s.Trades.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("Trade not found")
		}
		return nil, err
	}
	if !policy.CanAccessTrade(userID, trade, policy.OpView) {
		return nil, utils.Unauthorized("Not authorized to access this trade")
	}
	return trade, nil
}

// Transition moves a trade to a new status.
func (s *DefaultTradeService) Transition(userID, id, status string) (*models.Trade, error) {
	if !models.ValidTradeStatus(status) {
		return nil, utils.Validation("Invalid trade status")
	}

	trade, err := s.Trades.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("Trade not found")
		}
		return nil, err
	}
	if !policy.CanAccessTrade(userID, trade, policy.OpTransition) {
		return nil, utils.Unauthorized("Not authorized to update this trade")
	}
	if trade.Status == models.TradeStatusCompleted || trade.Status == models.TradeStatusRejected {
		return nil, utils.Conflict("Trade is already " + trade.Status)
	}

	fields := bson.M{"status": status}
	if status == models.TradeStatusCompleted {
		now := time.Now()
		trade.CompletedAt = &now
		fields["completedAt"] = now

		// Stock was checked at creation time only; completion decrements
		// without a fresh availability check, matching the pre-trade
		// contract. Concurrent trades over the same stock can overdraw it.
		if err := s.Products.DecrementStock(trade.ProductID, trade.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.Trades.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	trade.Status = status

	s.notifyBuyer(trade, status)
	return trade, nil
}

// notifyBuyer mails the buyer about a status change, best-effort.
func (s *DefaultTradeService) notifyBuyer(trade *models.Trade, status string) {
	buyer, err := s.Users.GetByID(trade.BuyerID)
	if err != nil {
		return
	}

	productName := "your product"
	if prod, err := s.Products.GetByID(trade.ProductID); err == nil {
		productName = prod.Name
	}

	notification.Dispatch(s.Notify, notification.Email{
		To:      buyer.Email,
		Subject: "Trade " + status,
		Body: fmt.Sprintf("Your trade request for %s has been %s by the seller.\n\n"+
			"Please login to your account for more details.", productName, status),
	})
}

// Rate records a counterpart rating on a completed trade. The rating value is
// validated before any record is touched; each party rates the other exactly
// once per trade.
func (s *DefaultTradeService) Rate(userID, id string, req models.TradeRateRequest) error {
	if !rating.Valid(req.Rating) {
		return utils.Validation("Rating must be between 1 and 5")
	}
	if req.Ratee != "seller" && req.Ratee != "buyer" {
		return utils.Validation("Ratee must be \"seller\" or \"buyer\"")
	}

	trade, err := s.Trades.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NotFound("Trade not found")
		}
		return err
	}

	if trade.Status != models.TradeStatusCompleted {
		return utils.Conflict("You can only rate completed trades")
	}
	if !policy.CanAccessTrade(userID, trade, policy.OpRate) {
		return utils.Unauthorized("Not authorized to rate this trade")
	}

	targetID, ok := policy.TradeRateTarget(userID, req.Ratee, trade)
	if !ok {
		return utils.Validation("Invalid rating operation")
	}

	fields := bson.M{}
	switch req.Ratee {
	case "seller":
		if trade.SellerRating != nil {
			return utils.Conflict("Seller has already been rated for this trade")
		}
		fields["sellerRating"] = req.Rating
		fields["sellerFeedback"] = req.Feedback
	case "buyer":
		if trade.BuyerRating != nil {
			return utils.Conflict("Buyer has already been rated for this trade")
		}
		fields["buyerRating"] = req.Rating
		fields["buyerFeedback"] = req.Feedback
	}

	if err := s.Trades.UpdateFields(id, fields); err != nil {
		return err
	}

	return s.Aggregator.RecomputeFromTrades(targetID)
}
