// Package policy holds the authorization rules for entity-scoped operations,
// kept free of HTTP plumbing so they can be tested on their own. A principal
// is permitted when it is one of the entity's designated parties; status
// transitions and ratings restrict the actor further.
package policy

import "farmhub/models"

// Operation names an entity-scoped action a principal may attempt.
type Operation string

const (
	OpView       Operation = "view"
	OpTransition Operation = "transition"
	OpRate       Operation = "rate"
)

// CanAccessTrade reports whether the principal may perform op on the trade.
// Viewing and rating are open to either party; only the seller transitions.
func CanAccessTrade(principalID string, trade *models.Trade, op Operation) bool {
	isSeller := trade.SellerID == principalID
	isBuyer := trade.BuyerID == principalID

	switch op {
	case OpView, OpRate:
		return isSeller || isBuyer
	case OpTransition:
		return isSeller
	}
	return false
}

// TradeRateTarget resolves which user a trade rating lands on. The buyer
// rates the seller and the seller rates the buyer; any other combination is
// rejected.
func TradeRateTarget(principalID, ratee string, trade *models.Trade) (string, bool) {
	switch {
	case ratee == "seller" && trade.BuyerID == principalID:
		return trade.SellerID, true
	case ratee == "buyer" && trade.SellerID == principalID:
		return trade.BuyerID, true
	}
	return "", false
}

// CanAccessConsultation reports whether the principal may perform op on the
// consultation. Both parties view; only the veterinarian transitions; only
// the farmer rates.
func CanAccessConsultation(principalID string, consultation *models.Consultation, op Operation) bool {
	isFarmer := consultation.FarmerID == principalID
	isVet := consultation.VeterinarianID == principalID

	switch op {
	case OpView:
		return isFarmer || isVet
	case OpTransition:
		return isVet
	case OpRate:
		return isFarmer
	}
	return false
}
