package services

import (
	"strings"
	"studynexus/internal/models"
	"studynexus/internal/providers"

	"github.com/shopspring/decimal"
)

// RequestPurchase prices an item without touching the ledger.
func (s *AccountService) RequestPurchase(itemID string) (models.PurchaseQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := models.FindMarketplaceItem(itemID)
	if !ok {
		return models.PurchaseQuote{}, ErrUnknownItem
	}
	if !s.ledger.IsOpen() {
		return models.PurchaseQuote{}, ErrNotConnected
	}
	if !s.ledger.CanAfford(item.Price) {
		return models.PurchaseQuote{}, ErrInsufficientBalance
	}
	return models.NewPurchaseQuote(item, s.economy.platformFee), nil
}

// ConfirmPurchase debits the quoted price. The quote must still match the
// catalog price. Buying the same item again is allowed.
func (s *AccountService) ConfirmPurchase(quote models.PurchaseQuote) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := models.FindMarketplaceItem(quote.Item.ID)
	if !ok {
		return models.UserProfile{}, ErrUnknownItem
	}
	if !quote.Price.Equal(item.Price) {
		return models.UserProfile{}, ErrStaleQuote
	}
	if !s.ledger.IsOpen() {
		return models.UserProfile{}, ErrNotConnected
	}
	if !s.ledger.Debit(item.Price) {
		return models.UserProfile{}, ErrInsufficientBalance
	}

	profile, _ := s.ledger.Profile()
	s.logger.Infof(providers.TypeLedger, "purchase item=%s price=%s balance=%s", item.ID, item.Price, profile.Balance)
	return profile, nil
}

func (s *AccountService) ConvertP2P(amount decimal.Decimal, destination string) (models.P2PReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	destination = strings.TrimSpace(destination)
	switch {
	case !s.ledger.IsOpen():
		return models.P2PReceipt{}, ErrNotConnected
	case !amount.IsPositive():
		return models.P2PReceipt{}, ErrInvalidAmount
	case destination == "":
		return models.P2PReceipt{}, ErrMissingDestination
	case !s.ledger.Debit(amount):
		return models.P2PReceipt{}, ErrInsufficientBalance
	}

	receipt := models.P2PReceipt{
		Amount:      amount,
		USDValue:    amount.Mul(s.economy.conversionRate),
		Destination: destination,
	}
	s.logger.Infof(providers.TypeLedger, "p2p convert amount=%s usd=%s to=%s", amount, receipt.USDValue, destination)
	return receipt, nil
}
