package models

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var minutesPerYear = decimal.NewFromInt(365 * 24 * 60)

type StakingPosition struct {
	StakedAmount   decimal.Decimal `json:"stakedAmount"`
	PendingRewards decimal.Decimal `json:"pendingRewards"`
}

// LedgerStats is a float view of the ledger used by gauges.
type LedgerStats struct {
	Connected bool
	Balance   float64
	Staked    float64
	Pending   float64
}

// Ledger holds the monetary state: the connected profile (balance and
// subscription) and the staking position. The staking position outlives the
// profile, so closing the ledger keeps staked principal and pending rewards.
//
// Every mutating method either applies completely or leaves the ledger
// untouched and reports false.
type Ledger struct {
	mu      sync.RWMutex
	profile *UserProfile
	staked  decimal.Decimal
	pending decimal.Decimal
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Open(p UserProfile) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if p.Balance.IsNegative() {
		p.Balance = decimal.Zero
	}
	if p.Subscription == "" {
		p.Subscription = SubscriptionFree
	}
	l.profile = &p
}

func (l *Ledger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.profile = nil
}

func (l *Ledger) IsOpen() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.profile != nil
}

// Profile returns a copy of the connected profile.
func (l *Ledger) Profile() (UserProfile, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.profile == nil {
		return UserProfile{}, false
	}
	return *l.profile, true
}

func (l *Ledger) UpdateDetails(d ProfileDetails) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.profile == nil {
		return false
	}
	l.profile.ApplyDetails(d)
	return true
}

func (l *Ledger) Balance() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.profile == nil {
		return decimal.Zero
	}
	return l.profile.Balance
}

func (l *Ledger) CanAfford(amount decimal.Decimal) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.profile != nil && !amount.IsNegative() && l.profile.Balance.GreaterThanOrEqual(amount)
}

func (l *Ledger) Credit(amount decimal.Decimal) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.profile == nil || amount.IsNegative() {
		return false
	}
	l.profile.Balance = l.profile.Balance.Add(amount)
	return true
}

// Debit refuses when amount exceeds the balance.
func (l *Ledger) Debit(amount decimal.Decimal) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debitLocked(amount)
}

func (l *Ledger) debitLocked(amount decimal.Decimal) bool {
	if l.profile == nil || amount.IsNegative() || amount.GreaterThan(l.profile.Balance) {
		return false
	}
	l.profile.Balance = l.profile.Balance.Sub(amount)
	return true
}

func (l *Ledger) Subscription() SubscriptionTier {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.profile == nil {
		return SubscriptionFree
	}
	return l.profile.Subscription
}

func (l *Ledger) SetSubscription(tier SubscriptionTier) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.profile == nil {
		return false
	}
	l.profile.Subscription = tier
	return true
}

// UpgradeToPremium debits price and flips the tier in one step. There is no
// downgrade path.
func (l *Ledger) UpgradeToPremium(price decimal.Decimal) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.profile == nil || l.profile.Subscription == SubscriptionPremium {
		return false
	}
	if !l.debitLocked(price) {
		return false
	}
	l.profile.Subscription = SubscriptionPremium
	return true
}

func (l *Ledger) Stake(amount decimal.Decimal) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !amount.IsPositive() || !l.debitLocked(amount) {
		return false
	}
	l.staked = l.staked.Add(amount)
	return true
}

func (l *Ledger) Unstake(amount decimal.Decimal) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.profile == nil || !amount.IsPositive() || amount.GreaterThan(l.staked) {
		return false
	}
	l.staked = l.staked.Sub(amount)
	l.profile.Balance = l.profile.Balance.Add(amount)
	return true
}

// Accrue adds linear interest on the staked principal for the elapsed time and
// returns the increment. Pending rewards never compound.
func (l *Ledger) Accrue(apy decimal.Decimal, elapsed time.Duration) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.staked.IsPositive() || elapsed <= 0 {
		return decimal.Zero
	}
	minutes := decimal.NewFromFloat(elapsed.Minutes())
	inc := l.staked.Mul(apy).Mul(minutes).Div(minutesPerYear)
	l.pending = l.pending.Add(inc)
	return inc
}

// ClaimRewards credits floor(pending) and zeroes pending. Fractions below one
// token are dropped.
func (l *Ledger) ClaimRewards() (decimal.Decimal, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.profile == nil || !l.pending.IsPositive() {
		return decimal.Zero, false
	}
	amount := l.pending.Floor()
	l.profile.Balance = l.profile.Balance.Add(amount)
	l.pending = decimal.Zero
	return amount, true
}

func (l *Ledger) Position() StakingPosition {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return StakingPosition{StakedAmount: l.staked, PendingRewards: l.pending}
}

func (l *Ledger) Stats() LedgerStats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	stats := LedgerStats{
		Staked:  l.staked.InexactFloat64(),
		Pending: l.pending.InexactFloat64(),
	}
	if l.profile != nil {
		stats.Connected = true
		stats.Balance = l.profile.Balance.InexactFloat64()
	}
	return stats
}
