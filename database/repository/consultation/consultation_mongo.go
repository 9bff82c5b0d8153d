package consultationRepo

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

// MongoConsultationRepo implements ConsultationRepository using MongoDB.
type MongoConsultationRepo struct {
	coll *mongo.Collection
}

// NewMongoConsultationRepo creates a new instance of ConsultationRepository using MongoDB.
func NewMongoConsultationRepo() ConsultationRepository {
	repo := &MongoConsultationRepo{coll: database.Collection("consultations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConsultationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "farmerId", Value: 1}}},
		{Keys: bson.D{{Key: "veterinarianId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new consultation document.
func (r *MongoConsultationRepo) Create(consultation *models.Consultation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	consultation.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, consultation); err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}
	return nil
}

// GetByID retrieves a consultation by its unique ID.
func (r *MongoConsultationRepo) GetByID(id string) (*models.Consultation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var consultation models.Consultation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&consultation); err != nil {
		return nil, fmt.Errorf("failed to fetch consultation with id %s: %w", id, err)
	}
	return &consultation, nil
}

// UpdateFields applies a partial update to a consultation document.
func (r *MongoConsultationRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update consultation with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("consultation with id %s not found", id)
	}
	return nil
}

// ListByParty retrieves all consultations where the user is a party.
func (r *MongoConsultationRepo) ListByParty(userID string) ([]models.Consultation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"farmerId": userID},
		{"veterinarianId": userID},
	}}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var consultations []models.Consultation
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, fmt.Errorf("failed to decode consultations: %w", err)
	}
	return consultations, nil
}

// FarmerRatingsReceived returns farmer-given rating values recorded against
// the veterinarian.
func (r *MongoConsultationRepo) FarmerRatingsReceived(veterinarianID string) ([]float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"veterinarianId": veterinarianID,
		"farmerRating":   bson.M{"$exists": true},
	}

	opts := options.Find().SetProjection(bson.M{"farmerRating": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consultation ratings for %s: %w", veterinarianID, err)
	}
	defer cursor.Close(ctx)

	var ratings []float64
	for cursor.Next(ctx) {
		var doc struct {
			FarmerRating float64 `bson:"farmerRating"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode consultation rating: %w", err)
		}
		ratings = append(ratings, doc.FarmerRating)
	}
	return ratings, nil
}
