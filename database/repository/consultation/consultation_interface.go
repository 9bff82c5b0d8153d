package consultationRepo

import (
	"farmhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ConsultationRepository defines methods for consultation data access.
type ConsultationRepository interface {
	// Create inserts a new consultation record.
	Create(consultation *models.Consultation) error
	// GetByID retrieves a consultation by its unique ID.
	GetByID(id string) (*models.Consultation, error)
	// UpdateFields applies a partial update to a consultation record.
	UpdateFields(id string, fields bson.M) error
	// ListByParty retrieves all consultations where the user is the farmer or
	// the veterinarian.
	ListByParty(userID string) ([]models.Consultation, error)
	// FarmerRatingsReceived returns the farmer-given rating values recorded
	// against the user across all consultations where they were the
	// veterinarian.
	FarmerRatingsReceived(veterinarianID string) ([]float64, error)
}
