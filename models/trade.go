package models

import "time"

// Trade statuses.
const (
	TradeStatusPending   = "pending"
	TradeStatusAccepted  = "accepted"
	TradeStatusRejected  = "rejected"
	TradeStatusCompleted = "completed"
)

// ValidTradeStatus reports whether status is a known trade state.
func ValidTradeStatus(status string) bool {
	switch status {
	case TradeStatusPending, TradeStatusAccepted, TradeStatusRejected, TradeStatusCompleted:
		return true
	}
	return false
}

// Trade is a transaction between a seller and a buyer over a product.
// Rating fields are set only after the trade reaches "completed"; each party
// rates the other exactly once.
type Trade struct {
	ID        string  `bson:"id" json:"id"`
	ProductID string  `bson:"productId" json:"productId"`
	SellerID  string  `bson:"sellerId" json:"sellerId"`
	BuyerID   string  `bson:"buyerId" json:"buyerId"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
	Status    string  `bson:"status" json:"status"`

	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`

	SellerRating   *float64 `bson:"sellerRating,omitempty" json:"sellerRating,omitempty"`
	BuyerRating    *float64 `bson:"buyerRating,omitempty" json:"buyerRating,omitempty"`
	SellerFeedback string   `bson:"sellerFeedback,omitempty" json:"sellerFeedback,omitempty"`
	BuyerFeedback  string   `bson:"buyerFeedback,omitempty" json:"buyerFeedback,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// TradeRequest is the payload for POST /trade/new.
type TradeRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	SellerID  string  `json:"sellerId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price"`
}

// TradeRateRequest is the payload for POST /trade/rate/:id. Ratee names which
// side of the trade is being rated: "seller" or "buyer".
type TradeRateRequest struct {
	Ratee    string  `json:"ratee" binding:"required"`
	Rating   float64 `json:"rating" binding:"required"`
	Feedback string  `json:"feedback"`
}
