package consultation

import (
	"errors"
	"fmt"
	"time"

	consultationRepo "farmhub/database/repository/consultation"
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

// ConsultationService defines the consultation lifecycle operations.
type ConsultationService interface {
	// Create opens a pending consultation for the caller as farmer and
	// notifies the veterinarian best-effort.
	Create(farmerID string, req models.ConsultationRequest) (*models.Consultation, error)
	// Mine lists the consultations where the caller is farmer or veterinarian.
	Mine(userID string) ([]models.Consultation, error)
	// Get fetches one consultation; only a party may view it.
	Get(userID, id string) (*models.Consultation, error)
	// Transition moves a consultation to a new status; only the veterinarian
	// may do so. Entering "completed" stamps the completion time.
	Transition(userID, id, status string) (*models.Consultation, error)
	// Rate records the farmer's rating on a completed consultation and
	// recomputes the veterinarian's aggregate.
	Rate(userID, id string, req models.ConsultationRateRequest) error
}

// DefaultConsultationService is the production implementation of ConsultationService.
type DefaultConsultationService struct {
	Consultations consultationRepo.ConsultationRepository
	Users         userRepo.UserRepository
	Aggregator    *rating.Aggregator
	Notify        notification.NotificationService
}

// Create opens a pending consultation with the given veterinarian.
func (s *DefaultConsultationService) Create(farmerID string, req models.ConsultationRequest) (*models.Consultation, error) {
	vet, err := s.Users.GetByID(req.VeterinarianID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("Veterinarian not found")
		}
		return nil, err
	}
	if vet.Role != models.RoleVeterinarian {
		return nil, utils.Validation("Consultations can only be requested from veterinarians")
	}

	consultation := &models.Consultation{
		ID:             uuid.NewString(),
		FarmerID:       farmerID,
		VeterinarianID: req.VeterinarianID,
		Subject:        req.Subject,
		Description:    req.Description,
		ScheduledAt:    req.ScheduledAt,
		Status:         models.ConsultationStatusPending,
	}
	if err := s.Consultations.Create(consultation); err != nil {
		return nil, err
	}

	farmerName := "a farmer"
	if farmer, err := s.Users.GetByID(farmerID); err == nil {
		farmerName = farmer.Name
	}
	notification.Dispatch(s.Notify, notification.Email{
		To:      vet.Email,
		Subject: "New Consultation Request",
		Body: fmt.Sprintf("You have a new consultation request from %s.\n\nSubject: %s\n\nScheduled for: %s\n\n"+
			"Please login to your account to respond.", farmerName, req.Subject, req.ScheduledAt.Format(time.RFC1123)),
	})
	return consultation, nil
}

// Mine lists the consultations where the caller is a party.
func (s *DefaultConsultationService) Mine(userID string) ([]models.Consultation, error) {
	return s.Consultations.ListByParty(userID)
}

// Get fetches one consultation; only a party may view it.
func (s *DefaultConsultationService) Get(userID, id string) (*models.Consultation, error) {
	consultation, err := s.Consultations.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("Consultation not found")
		}
		return nil, err
	}
	if !policy.CanAccessConsultation(userID, consultation, policy.OpView) {
		return nil, utils.Unauthorized("Not authorized to access this consultation")
	}
	return consultation, nil
}

// Transition moves a consultation to a new status. Unlike a trade, completion
// has no side effects on other entities.
func (s *DefaultConsultationService) Transition(userID, id, status string) (*models.Consultation, error) {
	if !models.ValidConsultationStatus(status) {
		return nil, utils.Validation("Invalid consultation status")
	}

	consultation, err := s.Consultations.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("Consultation not found")
		}
		return nil, err
	}
	if !policy.CanAccessConsultation(userID, consultation, policy.OpTransition) {
		return nil, utils.Unauthorized("Not authorized to update this consultation")
	}

	fields := bson.M{"status": status}
	if status == models.ConsultationStatusCompleted {
		now := time.Now()
		consultation.CompletedAt = &now
		fields["completedAt"] = now
	}

	if err := s.Consultations.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	consultation.Status = status

	if farmer, err := s.Users.GetByID(consultation.FarmerID); err == nil {
		notification.Dispatch(s.Notify, notification.Email{
			To:      farmer.Email,
			Subject: "Consultation " + status,
			Body: fmt.Sprintf("Your consultation request \"%s\" has been %s by the veterinarian.\n\n"+
				"Please login to your account for more details.", consultation.Subject, status),
		})
	}
	return consultation, nil
}

// Rate records the farmer's rating on a completed consultation. The rating
// value is validated before any record is touched.
func (s *DefaultConsultationService) Rate(userID, id string, req models.ConsultationRateRequest) error {
	if !rating.Valid(req.Rating) {
		return utils.Validation("Rating must be between 1 and 5")
	}

	consultation, err := s.Consultations.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NotFound("Consultation not found")
		}
		return err
	}

	if consultation.Status != models.ConsultationStatusCompleted {
		return utils.Conflict("You can only rate completed consultations")
	}
	if !policy.CanAccessConsultation(userID, consultation, policy.OpRate) {
		return utils.Unauthorized("Not authorized to rate this consultation")
	}

	fields := bson.M{
		"farmerRating":   req.Rating,
		"farmerFeedback": req.Feedback,
	}
	if err := s.Consultations.UpdateFields(id, fields); err != nil {
		return err
	}

	return s.Aggregator.RecomputeFromConsultations(consultation.VeterinarianID)
}
