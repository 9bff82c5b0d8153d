package tradeRepo

import (
	"context"
	"fmt"
	"time"

	"farmhub/database"
	"farmhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTradeRepo implements TradeRepository using MongoDB.
type MongoTradeRepo struct {
	coll *mongo.Collection
}

// NewMongoTradeRepo creates a new instance of TradeRepository using MongoDB.
func NewMongoTradeRepo() TradeRepository {
	repo := &MongoTradeRepo{coll: database.Collection("trades")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTradeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "sellerId", Value: 1}}},
		{Keys: bson.D{{Key: "buyerId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new trade document.
func (r *MongoTradeRepo) Create(trade *models.Trade) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	trade.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, trade); err != nil {
		return fmt.Errorf("failed to create trade: %w", err)
	}
	return nil
}

// GetByID retrieves a trade by its unique ID.
func (r *MongoTradeRepo) GetByID(id string) (*models.Trade, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trade models.Trade
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trade); err != nil {
		return nil, fmt.Errorf("failed to fetch trade with id %s: %w", id, err)
	}
	return &trade, nil
}

// UpdateFields applies a partial update to a trade document.
func (r *MongoTradeRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update trade with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trade with id %s not found", id)
	}
	return nil
}

// ListByParty retrieves all trades where the user is seller or buyer.
func (r *MongoTradeRepo) ListByParty(userID string) ([]models.Trade, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"sellerId": userID},
		{"buyerId": userID},
	}}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var trades []models.Trade
	if err := cursor.All(ctx, &trades); err != nil {
		return nil, fmt.Errorf("failed to decode trades: %w", err)
	}
	return trades, nil
}

// ratingsReceived collects rating values from the named field across all
// trades matching partyField = userID where the rating has been recorded.
func (r *MongoTradeRepo) ratingsReceived(partyField, ratingField, userID string) ([]float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		partyField:  userID,
		ratingField: bson.M{"$exists": true},
	}

	opts := options.Find().SetProjection(bson.M{ratingField: 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s values for user %s: %w", ratingField, userID, err)
	}
	defer cursor.Close(ctx)

	var ratings []float64
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode trade rating: %w", err)
		}
		if v, ok := doc[ratingField]; ok {
			switch n := v.(type) {
			case float64:
				ratings = append(ratings, n)
			case int32:
				ratings = append(ratings, float64(n))
			case int64:
				ratings = append(ratings, float64(n))
			}
		}
	}
	return ratings, nil
}

// SellerRatingsReceived returns seller-rating values recorded against the user.
func (r *MongoTradeRepo) SellerRatingsReceived(userID string) ([]float64, error) {
	return r.ratingsReceived("sellerId", "sellerRating", userID)
}

// BuyerRatingsReceived returns buyer-rating values recorded against the user.
func (r *MongoTradeRepo) BuyerRatingsReceived(userID string) ([]float64, error) {
	return r.ratingsReceived("buyerId", "buyerRating", userID)
}
