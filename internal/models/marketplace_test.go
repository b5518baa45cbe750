package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewPurchaseQuote_FeeAndPayout(t *testing.T) {
	item := MarketplaceItem{ID: "item-1", Price: decimal.NewFromInt(50)}
	q := NewPurchaseQuote(item, decimal.NewFromFloat(0.025))

	assert.True(t, q.Price.Equal(decimal.NewFromInt(50)))
	assert.True(t, q.PlatformFee.Equal(decimal.RequireFromString("1.25")))
	assert.True(t, q.CreatorPayout.Equal(decimal.RequireFromString("48.75")))
	assert.Equal(t, "item-1", q.Item.ID)
}
