package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"studynexus/internal/models"
	"studynexus/internal/providers"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	sessionIDLayout   = "2006-01-02T15:04:05.000Z07:00"
	sessionDateLayout = "January 2, 2006 at 03:04 PM"
)

type SessionRequest struct {
	TutorIDs []string             `json:"tutorIds"`
	Material models.StudyMaterial `json:"material"`
	Voice    string               `json:"voice"`
	ModuleID string               `json:"moduleId,omitempty"`
}

type ModuleOverview struct {
	Modules        []models.LearningModule `json:"modules"`
	Completed      []string                `json:"completed"`
	Threshold      int                     `json:"threshold"`
	BonusAvailable bool                    `json:"bonusAvailable"`
	BonusClaimed   bool                    `json:"bonusClaimed"`
}

type activeSession struct {
	tutors   []models.Tutor
	material models.StudyMaterial
	voice    string
	moduleID string
}

// summaryView is the finished session currently on screen. The session
// reward can be claimed once per view.
type summaryView struct {
	session       models.PastSession
	rewardClaimed bool
}

// PrepareMaterial turns an uploaded file into study material. Text and
// markdown are used as is; PDFs go through the text generator.
func (s *AccountService) PrepareMaterial(ctx context.Context, filename string, data []byte) (models.StudyMaterial, error) {
	if !s.ledger.IsOpen() {
		return models.StudyMaterial{}, ErrNotConnected
	}

	var content string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		content = string(data)
	case ".pdf":
		text, err := s.generator.ExtractText(ctx, "application/pdf", data)
		if err != nil {
			s.logger.Errorf(providers.TypeAI, "extract %s: %s", filename, err)
			return models.StudyMaterial{}, fmt.Errorf("extract %s: %w", filename, err)
		}
		content = text
	default:
		return models.StudyMaterial{}, ErrUnsupportedMaterial
	}

	if strings.TrimSpace(content) == "" {
		return models.StudyMaterial{}, ErrEmptyMaterial
	}
	return models.StudyMaterial{Name: filepath.Base(filename), Content: content}, nil
}

func (s *AccountService) StartSession(req SessionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.IsOpen() {
		return ErrNotConnected
	}

	material := req.Material
	if req.ModuleID != "" {
		module, ok := models.FindLearningModule(req.ModuleID)
		if !ok {
			return ErrUnknownModule
		}
		if material.Name == "" {
			material.Name = module.Title
		}
		if strings.TrimSpace(material.Content) == "" {
			material.Content = module.Content
		}
	}

	tutors, err := s.resolveTutors(req.TutorIDs, req.ModuleID != "")
	if err != nil {
		return err
	}

	voice := req.Voice
	if voice == "" {
		voice = models.DefaultVoice
	}
	if _, ok := models.FindVoice(voice); !ok {
		return ErrUnknownVoice
	}

	if strings.TrimSpace(material.Content) == "" {
		return ErrEmptyMaterial
	}
	if material.Name == "" {
		material.Name = "Session"
	}

	s.active = &activeSession{
		tutors:   tutors,
		material: material,
		voice:    voice,
		moduleID: req.ModuleID,
	}
	s.summaryView = nil
	s.stage = models.StageStudying
	s.logger.Infof(providers.TypeApp, "session started topic=%q tutors=%d voice=%s", material.Name, len(tutors), voice)
	return nil
}

// resolveTutors checks the panel size. Module sessions take 3 or 4 tutors on
// any tier; other sessions are capped by the subscription.
func (s *AccountService) resolveTutors(ids []string, module bool) ([]models.Tutor, error) {
	lower, upper := minTutors, freeTutorLimit
	switch {
	case module:
		lower, upper = minModuleTutors, maxModuleTutors
	case s.ledger.Subscription() == models.SubscriptionPremium:
		upper = premiumTutorLimit
	}
	if len(ids) < lower || len(ids) > upper {
		return nil, fmt.Errorf("%w: need %d to %d tutors, got %d", ErrInvalidTutors, lower, upper, len(ids))
	}

	seen := make(map[string]struct{}, len(ids))
	tutors := make([]models.Tutor, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate tutor %s", ErrInvalidTutors, id)
		}
		seen[id] = struct{}{}
		t, ok := models.FindTutor(id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown tutor %s", ErrInvalidTutors, id)
		}
		tutors = append(tutors, t)
	}
	return tutors, nil
}

func (s *AccountService) EndSession(transcript string, durationInSeconds int, audioURL string) (models.PastSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return models.PastSession{}, ErrNoActiveSession
	}
	if durationInSeconds < 0 {
		return models.PastSession{}, ErrInvalidAmount
	}

	now := s.now()
	s.totalStudySeconds += durationInSeconds
	if s.active.moduleID != "" {
		s.modules.Complete(s.active.moduleID)
	}

	session := models.PastSession{
		ID:                s.nextSessionID(now),
		Topic:             s.active.material.Name,
		Date:              now.Format(sessionDateLayout),
		DurationInSeconds: durationInSeconds,
		Transcript:        transcript,
		AudioRecordingURL: audioURL,
	}
	s.sessions.Add(session)
	s.summaryView = &summaryView{session: session}
	s.active = nil
	s.stage = models.StageSummary

	s.logger.Infof(providers.TypeApp, "session ended id=%s duration=%ds", session.ID, durationInSeconds)
	return session, nil
}

// nextSessionID formats now as the session id, moving forward a millisecond
// at a time while the id is taken.
func (s *AccountService) nextSessionID(now time.Time) string {
	at := now.UTC()
	for {
		id := at.Format(sessionIDLayout)
		if _, taken := s.sessions.Get(id); !taken {
			return id
		}
		at = at.Add(time.Millisecond)
	}
}

func (s *AccountService) ClaimSessionReward() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.summaryView == nil:
		return decimal.Zero, ErrNoSummaryView
	case s.summaryView.rewardClaimed:
		return decimal.Zero, ErrAlreadyClaimed
	case !s.ledger.Credit(s.economy.sessionReward):
		return decimal.Zero, ErrNotConnected
	}

	s.summaryView.rewardClaimed = true
	s.logger.Infof(providers.TypeLedger, "session reward credited=%s", s.economy.sessionReward)
	return s.economy.sessionReward, nil
}

func (s *AccountService) MintSessionCredential() (models.NFTCredential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summaryView == nil {
		return models.NFTCredential{}, ErrNoSummaryView
	}
	hash, err := randomHex(32)
	if err != nil {
		return models.NFTCredential{}, err
	}

	now := s.now()
	topic := s.summaryView.session.Topic
	credential := models.NFTCredential{
		ID:              fmt.Sprintf("nft-session-%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		Name:            topic + " Mastery",
		Description:     "Certified completion of " + topic + ".",
		ImageURL:        "https://placehold.co/400x400/0052ff/ffffff?text=Certified",
		Date:            now.Format(time.DateOnly),
		TransactionHash: "0x" + hash,
	}
	if err := s.mintLocked(credential, decimal.Zero); err != nil {
		return models.NFTCredential{}, err
	}
	return credential, nil
}

func (s *AccountService) Sessions(limit int) []models.PastSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.List(limit)
}

func (s *AccountService) UpdateSessionSummary(id, summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.sessions.UpdateSummary(id, summary) {
		return ErrUnknownSession
	}
	return nil
}

// RequestSummary asks the text generator for a summary in the background.
// Failures are logged and leave the summary empty.
func (s *AccountService) RequestSummary(id string) error {
	s.mu.Lock()
	session, ok := s.sessions.Get(id)
	s.mu.Unlock()
	if !ok {
		return ErrUnknownSession
	}
	if strings.TrimSpace(session.Transcript) == "" {
		return nil
	}

	s.background.Add(1)
	go func() {
		defer s.background.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.summaryTimeout)
		defer cancel()

		summary, err := s.generator.Summarize(ctx, session.Transcript)
		if err != nil {
			s.logger.Errorf(providers.TypeAI, "summary for session %s failed: %s", id, err)
			return
		}
		if err := s.UpdateSessionSummary(id, summary); err != nil {
			s.logger.Warnf(providers.TypeAI, "summary for session %s dropped: %s", id, err)
			return
		}
		s.logger.Infof(providers.TypeAI, "summary stored for session %s", id)
	}()
	return nil
}

func (s *AccountService) Modules() ModuleOverview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ModuleOverview{
		Modules:        models.LearningModules,
		Completed:      s.modules.Completed(),
		Threshold:      s.modules.Threshold(),
		BonusAvailable: s.modules.BonusAvailable(),
		BonusClaimed:   s.modules.IsClaimed(),
	}
}

func (s *AccountService) ClaimModuleBonus() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case !s.ledger.IsOpen():
		return decimal.Zero, ErrNotConnected
	case s.modules.IsClaimed():
		return decimal.Zero, ErrAlreadyClaimed
	case !s.modules.ClaimBonus():
		return decimal.Zero, ErrBonusLocked
	}

	s.ledger.Credit(s.economy.moduleBonus)
	s.logger.Infof(providers.TypeLedger, "module bonus credited=%s", s.economy.moduleBonus)
	return s.economy.moduleBonus, nil
}

func (s *AccountService) AddReminder(title string, at time.Time) (models.Reminder, error) {
	title = strings.TrimSpace(title)
	if title == "" || at.IsZero() {
		return models.Reminder{}, ErrInvalidReminder
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r := models.Reminder{ID: uuid.NewString(), Title: title, DateTime: at}
	s.reminders.Add(r)
	return r, nil
}

func (s *AccountService) Reminders() []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reminders.List()
}
