package rating

import (
	"sync"

	consultationRepo "farmhub/database/repository/consultation"
	tradeRepo "farmhub/database/repository/trade"
	userRepo "farmhub/database/repository/user"
	"farmhub/utils"

	"go.uber.org/zap"
)

// Aggregator recomputes a user's aggregate rating whenever a new rating is
// recorded against them. Every recomputation re-reads the full rating set for
// the relevant source, so a racing write self-corrects on the next
// recomputation; a per-user lock serializes recomputations in this process to
// avoid lost updates between the read and the write.
type Aggregator struct {
	Users         userRepo.UserRepository
	Trades        tradeRepo.TradeRepository
	Consultations consultationRepo.ConsultationRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAggregator creates an Aggregator over the given repositories.
func NewAggregator(users userRepo.UserRepository, trades tradeRepo.TradeRepository, consultations consultationRepo.ConsultationRepository) *Aggregator {
	return &Aggregator{
		Users:         users,
		Trades:        trades,
		Consultations: consultations,
		locks:         make(map[string]*sync.Mutex),
	}
}

// userLock returns the lock for a user, creating one if it doesn't exist.
func (a *Aggregator) userLock(userID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()

	lock, exists := a.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		a.locks[userID] = lock
	}
	return lock
}

// RecomputeFromTrades merges the seller-ratings and buyer-ratings received by
// the user into one pool, recomputes the mean and count, and persists both on
// the user record. Nothing is written while the user has no trade ratings.
func (a *Aggregator) RecomputeFromTrades(userID string) error {
	lock := a.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	asSeller, err := a.Trades.SellerRatingsReceived(userID)
	if err != nil {
		return err
	}
	asBuyer, err := a.Trades.BuyerRatingsReceived(userID)
	if err != nil {
		return err
	}

	pool := append(asSeller, asBuyer...)
	mean, count := Recompute(pool)
	if count == 0 {
		return nil
	}

	utils.GetLogger().Debug("Recomputed trade rating",
		zap.String("userID", userID),
		zap.Float64("rating", mean),
		zap.Int("numOfReviews", count))
	return a.Users.SetRating(userID, mean, count)
}

// RecomputeFromConsultations recomputes the veterinarian's aggregate from the
// farmer-given ratings on their consultations and persists it. Nothing is
// written while the veterinarian has no consultation ratings.
func (a *Aggregator) RecomputeFromConsultations(veterinarianID string) error {
	lock := a.userLock(veterinarianID)
	lock.Lock()
	defer lock.Unlock()

	values, err := a.Consultations.FarmerRatingsReceived(veterinarianID)
	if err != nil {
		return err
	}

	mean, count := Recompute(values)
	if count == 0 {
		return nil
	}

	utils.GetLogger().Debug("Recomputed consultation rating",
		zap.String("userID", veterinarianID),
		zap.Float64("rating", mean),
		zap.Int("numOfReviews", count))
	return a.Users.SetRating(veterinarianID, mean, count)
}
