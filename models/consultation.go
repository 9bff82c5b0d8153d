package models

import "time"

// Consultation statuses.
const (
	ConsultationStatusPending   = "pending"
	ConsultationStatusAccepted  = "accepted"
	ConsultationStatusRejected  = "rejected"
	ConsultationStatusCompleted = "completed"
)

// ValidConsultationStatus reports whether status is a known consultation state.
func ValidConsultationStatus(status string) bool {
	switch status {
	case ConsultationStatusPending, ConsultationStatusAccepted,
		ConsultationStatusRejected, ConsultationStatusCompleted:
		return true
	}
	return false
}

// Consultation is a veterinary consultation requested by a farmer. Only the
// veterinarian drives status transitions; only the farmer rates it.
type Consultation struct {
	ID             string    `bson:"id" json:"id"`
	FarmerID       string    `bson:"farmerId" json:"farmerId"`
	VeterinarianID string    `bson:"veterinarianId" json:"veterinarianId"`
	Subject        string    `bson:"subject" json:"subject"`
	Description    string    `bson:"description" json:"description"`
	ScheduledAt    time.Time `bson:"scheduledAt" json:"scheduledAt"`
	Status         string    `bson:"status" json:"status"`

	CompletedAt    *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	FarmerRating   *float64   `bson:"farmerRating,omitempty" json:"farmerRating,omitempty"`
	FarmerFeedback string     `bson:"farmerFeedback,omitempty" json:"farmerFeedback,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ConsultationRequest is the payload for POST /consultation/new.
type ConsultationRequest struct {
	VeterinarianID string    `json:"veterinarianId" binding:"required"`
	Subject        string    `json:"subject" binding:"required"`
	Description    string    `json:"description"`
	ScheduledAt    time.Time `json:"scheduledAt" binding:"required"`
}

// ConsultationRateRequest is the payload for POST /consultation/rate/:id.
type ConsultationRateRequest struct {
	Rating   float64 `json:"rating" binding:"required"`
	Feedback string  `json:"feedback"`
}
