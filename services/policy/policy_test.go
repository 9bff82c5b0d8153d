package policy

import (
	"testing"

	"farmhub/models"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessTrade(t *testing.T) {
	trade := &models.Trade{SellerID: "seller-1", BuyerID: "buyer-1"}

	t.Run("View", func(t *testing.T) {
		assert.True(t, CanAccessTrade("seller-1", trade, OpView))
		assert.True(t, CanAccessTrade("buyer-1", trade, OpView))
		assert.False(t, CanAccessTrade("stranger", trade, OpView))
	})

	t.Run("TransitionSellerOnly", func(t *testing.T) {
		assert.True(t, CanAccessTrade("seller-1", trade, OpTransition))
		assert.False(t, CanAccessTrade("buyer-1", trade, OpTransition))
		assert.False(t, CanAccessTrade("stranger", trade, OpTransition))
	})

	t.Run("RateEitherParty", func(t *testing.T) {
		assert.True(t, CanAccessTrade("seller-1", trade, OpRate))
		assert.True(t, CanAccessTrade("buyer-1", trade, OpRate))
		assert.False(t, CanAccessTrade("stranger", trade, OpRate))
	})

	t.Run("UnknownOperation", func(t *testing.T) {
		assert.False(t, CanAccessTrade("seller-1", trade, Operation("delete")))
	})
}

func TestTradeRateTarget(t *testing.T) {
	trade := &models.Trade{SellerID: "seller-1", BuyerID: "buyer-1"}

	t.Run("BuyerRatesSeller", func(t *testing.T) {
		target, ok := TradeRateTarget("buyer-1", "seller", trade)
		assert.True(t, ok)
		assert.Equal(t, "seller-1", target)
	})

	t.Run("SellerRatesBuyer", func(t *testing.T) {
		target, ok := TradeRateTarget("seller-1", "buyer", trade)
		assert.True(t, ok)
		assert.Equal(t, "buyer-1", target)
	})

	t.Run("SellerCannotRateSelf", func(t *testing.T) {
		_, ok := TradeRateTarget("seller-1", "seller", trade)
		assert.False(t, ok)
	})

	t.Run("BuyerCannotRateSelf", func(t *testing.T) {
		_, ok := TradeRateTarget("buyer-1", "buyer", trade)
		assert.False(t, ok)
	})

	t.Run("StrangerCannotRate", func(t *testing.T) {
		_, ok := TradeRateTarget("stranger", "seller", trade)
		assert.False(t, ok)
	})
}

func TestCanAccessConsultation(t *testing.T) {
	consultation := &models.Consultation{FarmerID: "farmer-1", VeterinarianID: "vet-1"}

	t.Run("View", func(t *testing.T) {
		assert.True(t, CanAccessConsultation("farmer-1", consultation, OpView))
		assert.True(t, CanAccessConsultation("vet-1", consultation, OpView))
		assert.False(t, CanAccessConsultation("stranger", consultation, OpView))
	})

	t.Run("TransitionVeterinarianOnly", func(t *testing.T) {
		assert.True(t, CanAccessConsultation("vet-1", consultation, OpTransition))
		assert.False(t, CanAccessConsultation("farmer-1", consultation, OpTransition))
	})

	t.Run("RateFarmerOnly", func(t *testing.T) {
		assert.True(t, CanAccessConsultation("farmer-1", consultation, OpRate))
		assert.False(t, CanAccessConsultation("vet-1", consultation, OpRate))
	})
}
