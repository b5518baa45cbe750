package models

import "github.com/shopspring/decimal"

type MarketplaceItem struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	CreatorBns            string          `json:"creatorBns"`
	Price                 decimal.Decimal `json:"price"`
	ImageURL              string          `json:"imageUrl"`
	CreatorRoyaltyPercent int             `json:"creatorRoyaltyPercent"`
}

// PurchaseQuote is the confirmation step of a purchase. Fee and payout are
// informational; only Price is ever debited.
type PurchaseQuote struct {
	Item          MarketplaceItem `json:"item"`
	Price         decimal.Decimal `json:"price"`
	PlatformFee   decimal.Decimal `json:"platformFee"`
	CreatorPayout decimal.Decimal `json:"creatorPayout"`
}

func NewPurchaseQuote(item MarketplaceItem, feeRate decimal.Decimal) PurchaseQuote {
	fee := item.Price.Mul(feeRate)
	return PurchaseQuote{
		Item:          item,
		Price:         item.Price,
		PlatformFee:   fee,
		CreatorPayout: item.Price.Sub(fee),
	}
}

type P2PReceipt struct {
	Amount      decimal.Decimal `json:"amount"`
	USDValue    decimal.Decimal `json:"usdValue"`
	Destination string          `json:"destination"`
}
