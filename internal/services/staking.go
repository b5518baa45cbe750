package services

import (
	"studynexus/internal/models"
	"studynexus/internal/providers"
	"time"

	"github.com/shopspring/decimal"
)

func (s *AccountService) Stake(amount decimal.Decimal) (models.StakingPosition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case !s.ledger.IsOpen():
		return models.StakingPosition{}, ErrNotConnected
	case !amount.IsPositive():
		return models.StakingPosition{}, ErrInvalidAmount
	case !s.ledger.Stake(amount):
		return models.StakingPosition{}, ErrInsufficientBalance
	}

	pos := s.ledger.Position()
	s.logger.Infof(providers.TypeLedger, "stake amount=%s staked=%s", amount, pos.StakedAmount)
	return pos, nil
}

func (s *AccountService) Unstake(amount decimal.Decimal) (models.StakingPosition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case !s.ledger.IsOpen():
		return models.StakingPosition{}, ErrNotConnected
	case !amount.IsPositive():
		return models.StakingPosition{}, ErrInvalidAmount
	case !s.ledger.Unstake(amount):
		return models.StakingPosition{}, ErrInsufficientStake
	}

	pos := s.ledger.Position()
	s.logger.Infof(providers.TypeLedger, "unstake amount=%s staked=%s", amount, pos.StakedAmount)
	return pos, nil
}

// ClaimStakingRewards credits the whole-token part of pending rewards. A
// claim with less than one token pending still succeeds and credits zero.
func (s *AccountService) ClaimStakingRewards() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.IsOpen() {
		return decimal.Zero, ErrNotConnected
	}
	amount, ok := s.ledger.ClaimRewards()
	if !ok {
		return decimal.Zero, ErrNothingToClaim
	}
	s.logger.Infof(providers.TypeLedger, "claim staking rewards credited=%s", amount)
	return amount, nil
}

func (s *AccountService) StakingPosition() models.StakingPosition {
	return s.ledger.Position()
}

// AccrueRewards applies one accrual tick covering elapsed.
func (s *AccountService) AccrueRewards(elapsed time.Duration) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	inc := s.ledger.Accrue(s.economy.apy, elapsed)
	if inc.IsPositive() {
		s.logger.Debugf(providers.TypeLedger, "accrue elapsed=%s increment=%s", elapsed, inc)
	}
	return inc
}
