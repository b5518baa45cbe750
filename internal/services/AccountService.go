package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"studynexus/internal/models"
	"studynexus/internal/providers"
	"studynexus/internal/structures"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/atomic"
)

const (
	freeTutorLimit    = 3
	premiumTutorLimit = 6
	minTutors         = 2

	minModuleTutors = 3
	maxModuleTutors = 4

	defaultSummaryTimeout = 30 * time.Second
)

type AccountServiceInterface interface {
	Connect() (models.UserProfile, error)
	Disconnect()
	CreateProfileName(name string) (models.UserProfile, error)
	CloseOnboarding() error
	UpdateProfile(details models.ProfileDetails) (models.UserProfile, error)
	Overview() Overview
	Stage() models.Stage
	UpgradeSubscription() (models.UserProfile, error)

	Stake(amount decimal.Decimal) (models.StakingPosition, error)
	Unstake(amount decimal.Decimal) (models.StakingPosition, error)
	ClaimStakingRewards() (decimal.Decimal, error)
	StakingPosition() models.StakingPosition
	AccrueRewards(elapsed time.Duration) decimal.Decimal

	Credentials() []models.NFTCredential
	Mint(credential models.NFTCredential, fee decimal.Decimal) error
	MintOfficialCredential() (models.NFTCredential, error)

	PrepareMaterial(ctx context.Context, filename string, data []byte) (models.StudyMaterial, error)
	StartSession(req SessionRequest) error
	EndSession(transcript string, durationInSeconds int, audioURL string) (models.PastSession, error)
	ClaimSessionReward() (decimal.Decimal, error)
	MintSessionCredential() (models.NFTCredential, error)
	Sessions(limit int) []models.PastSession
	UpdateSessionSummary(id, summary string) error
	RequestSummary(id string) error

	Modules() ModuleOverview
	ClaimModuleBonus() (decimal.Decimal, error)

	AddReminder(title string, at time.Time) (models.Reminder, error)
	Reminders() []models.Reminder

	RequestPurchase(itemID string) (models.PurchaseQuote, error)
	ConfirmPurchase(quote models.PurchaseQuote) (models.UserProfile, error)
	ConvertP2P(amount decimal.Decimal, destination string) (models.P2PReceipt, error)

	Snapshot() *models.Storage
	Restore(storage *models.Storage)
	Revision() uint64
	LedgerStats() models.LedgerStats
	Wait()
}

// Overview is what the profile screen shows.
type Overview struct {
	Profile                 *models.UserProfile `json:"profile"`
	Stage                   models.Stage        `json:"stage"`
	TotalStudyTimeInSeconds int                 `json:"totalStudyTimeInSeconds"`
	HasConnectedBefore      bool                `json:"hasConnectedBefore"`
}

type economy struct {
	newUserBalance       decimal.Decimal
	returningUserBalance decimal.Decimal
	premiumPrice         decimal.Decimal
	platformFee          decimal.Decimal
	officialMintFee      decimal.Decimal
	conversionRate       decimal.Decimal
	sessionReward        decimal.Decimal
	moduleBonus          decimal.Decimal
	apy                  decimal.Decimal
}

func newEconomy(conf *structures.Config) economy {
	e := conf.Economy.WithDefaults()
	s := conf.Staking.WithDefaults()
	return economy{
		newUserBalance:       decimal.NewFromFloat(e.NewUserBalance),
		returningUserBalance: decimal.NewFromFloat(e.ReturningUserBalance),
		premiumPrice:         decimal.NewFromFloat(e.PremiumPrice),
		platformFee:          decimal.NewFromFloat(e.PlatformFee),
		officialMintFee:      decimal.NewFromFloat(e.OfficialMintFee),
		conversionRate:       decimal.NewFromFloat(e.ConversionRate),
		sessionReward:        decimal.NewFromFloat(e.SessionReward),
		moduleBonus:          decimal.NewFromFloat(e.ModuleBonus),
		apy:                  decimal.NewFromFloat(s.APY),
	}
}

// AccountService is the single owner of the account state. Every operation
// takes mu, so transactors and accrual ticks never interleave.
type AccountService struct {
	mu        sync.Mutex
	logger    providers.Logger
	generator providers.TextGeneratorInterface
	economy   economy
	now       func() time.Time

	ledger      *models.Ledger
	credentials *models.CredentialCollection
	sessions    *models.SessionHistory
	reminders   *models.ReminderList
	modules     *models.ModuleProgress

	stage              models.Stage
	hasConnectedBefore bool
	totalStudySeconds  int
	active             *activeSession
	summaryView        *summaryView

	revision       atomic.Uint64
	summaryTimeout time.Duration
	background     sync.WaitGroup
}

func NewAccountService(conf *structures.Config, logger providers.Logger, generator providers.TextGeneratorInterface) AccountServiceInterface {
	timeout := conf.AI.Timeout
	if timeout <= 0 {
		timeout = defaultSummaryTimeout
	}
	return &AccountService{
		logger:         logger,
		generator:      generator,
		economy:        newEconomy(conf),
		now:            time.Now,
		ledger:         models.NewLedger(),
		credentials:    models.NewCredentialCollection(),
		sessions:       models.NewSessionHistory(),
		reminders:      models.NewReminderList(),
		modules:        models.NewModuleProgress(conf.Economy.WithDefaults().ModuleBonusThreshold),
		stage:          models.StageConnectWallet,
		summaryTimeout: timeout,
	}
}

func (s *AccountService) Connect() (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	suffix, err := randomHex(20)
	if err != nil {
		return models.UserProfile{}, err
	}
	address := "0x" + suffix

	s.credentials.Reset()
	if !s.hasConnectedBefore {
		s.ledger.Open(models.UserProfile{
			Address:           address,
			Balance:           s.economy.newUserBalance,
			Subscription:      models.SubscriptionFree,
			ProfilePictureURL: "https://i.pravatar.cc/150?u=" + address,
			Year:              1,
		})
		s.stage = models.StageCreateProfileName
	} else {
		s.ledger.Open(models.UserProfile{
			Address:           address,
			Bns:               "medstudent.base",
			Balance:           s.economy.returningUserBalance,
			Subscription:      models.SubscriptionFree,
			ProfilePictureURL: "https://i.pravatar.cc/150?u=studentbase",
			School:            "Nexus Medical Academy",
			Major:             "Pharmaceutical Science",
			Year:              3,
		})
		if first, ok := models.FindMockCredential(models.FirstSessionID); ok {
			s.credentials.Append(first)
		}
		s.stage = models.StageDashboard
	}

	profile, _ := s.ledger.Profile()
	s.logger.Infof(providers.TypeLedger, "connect address=%s returning=%t balance=%s", profile.Address, s.hasConnectedBefore, profile.Balance)
	return profile, nil
}

// Disconnect drops the profile and its credentials. Staking, history,
// reminders and module progress stay in memory.
func (s *AccountService) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Close()
	s.credentials.Reset()
	s.active = nil
	s.summaryView = nil
	s.stage = models.StageConnectWallet
	s.logger.Infof(providers.TypeLedger, "disconnect")
}

func (s *AccountService) CreateProfileName(name string) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = trimName(name)
	if name == "" {
		return models.UserProfile{}, ErrInvalidName
	}
	profile, ok := s.ledger.Profile()
	if !ok {
		return models.UserProfile{}, ErrNotConnected
	}

	bns := name + ".base"
	profile.Bns = bns
	s.ledger.UpdateDetails(detailsOf(profile))

	hash, err := randomHex(32)
	if err != nil {
		return models.UserProfile{}, err
	}
	s.credentials.Prepend(models.NFTCredential{
		ID:              models.BnsCredentialID,
		Name:            bns,
		Description:     "Your unique identity on the AI Study Nexus.",
		ImageURL:        "https://placehold.co/400x400/0052ff/ffffff?text=" + bns,
		Date:            s.now().Format(time.DateOnly),
		TransactionHash: "0x" + hash,
	})

	if !s.hasConnectedBefore {
		s.hasConnectedBefore = true
		s.revision.Inc()
	}
	s.stage = models.StageOnboarding

	profile, _ = s.ledger.Profile()
	return profile, nil
}

func (s *AccountService) CloseOnboarding() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ledger.IsOpen() {
		return ErrNotConnected
	}
	s.stage = models.StageDashboard
	return nil
}

func (s *AccountService) UpdateProfile(details models.ProfileDetails) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ledger.UpdateDetails(details) {
		return models.UserProfile{}, ErrNotConnected
	}
	s.stage = models.StageDashboard
	profile, _ := s.ledger.Profile()
	return profile, nil
}

func (s *AccountService) Overview() Overview {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := Overview{
		Stage:                   s.stage,
		TotalStudyTimeInSeconds: s.totalStudySeconds,
		HasConnectedBefore:      s.hasConnectedBefore,
	}
	if p, ok := s.ledger.Profile(); ok {
		o.Profile = &p
	}
	return o
}

func (s *AccountService) Stage() models.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *AccountService) UpgradeSubscription() (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case !s.ledger.IsOpen():
		return models.UserProfile{}, ErrNotConnected
	case s.ledger.Subscription() == models.SubscriptionPremium:
		return models.UserProfile{}, ErrAlreadyPremium
	case !s.ledger.UpgradeToPremium(s.economy.premiumPrice):
		return models.UserProfile{}, ErrInsufficientBalance
	}

	s.stage = models.StageDashboard
	profile, _ := s.ledger.Profile()
	s.logger.Infof(providers.TypeLedger, "upgrade premium price=%s balance=%s", s.economy.premiumPrice, profile.Balance)
	return profile, nil
}

func (s *AccountService) Credentials() []models.NFTCredential {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credentials.List()
}

func (s *AccountService) Mint(credential models.NFTCredential, fee decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mintLocked(credential, fee)
}

func (s *AccountService) mintLocked(credential models.NFTCredential, fee decimal.Decimal) error {
	if !s.ledger.IsOpen() {
		return ErrNotConnected
	}
	if fee.IsNegative() {
		return ErrInvalidAmount
	}
	if s.credentials.Has(credential.ID) {
		return ErrDuplicateCredential
	}
	if !s.ledger.Debit(fee) {
		return ErrInsufficientBalance
	}
	s.credentials.Append(credential)
	s.logger.Infof(providers.TypeLedger, "mint credential=%s fee=%s", credential.ID, fee)
	return nil
}

func (s *AccountService) MintOfficialCredential() (models.NFTCredential, error) {
	official, _ := models.FindMockCredential(models.OfficialCredentialID)
	if err := s.Mint(official, s.economy.officialMintFee); err != nil {
		return models.NFTCredential{}, err
	}
	return official, nil
}

func (s *AccountService) Snapshot() *models.Storage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.Storage{
		Version:            models.StorageVersion,
		HasConnectedBefore: s.hasConnectedBefore,
		UpdatedAt:          s.now().UTC(),
	}
}

func (s *AccountService) Restore(storage *models.Storage) {
	if storage == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasConnectedBefore = storage.HasConnectedBefore
}

// Revision changes whenever state that Snapshot captures changes.
func (s *AccountService) Revision() uint64 {
	return s.revision.Load()
}

func (s *AccountService) LedgerStats() models.LedgerStats {
	return s.ledger.Stats()
}

// Wait blocks until background summary requests have finished.
func (s *AccountService) Wait() {
	s.background.Wait()
}

func detailsOf(p models.UserProfile) models.ProfileDetails {
	return models.ProfileDetails{
		Bns:               p.Bns,
		ProfilePictureURL: p.ProfilePictureURL,
		School:            p.School,
		Major:             p.Major,
		Year:              p.Year,
	}
}

func trimName(name string) string {
	return strings.TrimSuffix(strings.TrimSpace(name), ".base")
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
