package scheduling

import (
	"context"
	"studynexus/internal/providers"
	"studynexus/internal/scheduling/interfaces"
	"studynexus/internal/services"
	"studynexus/internal/structures"
	"sync"
	"time"

	"go.uber.org/atomic"
)

const persistTimeout = 10 * time.Second

// Scheduler runs the reward accrual tick and saves the snapshot whenever it
// has changed since the last save.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service services.AccountServiceInterface
	store   interfaces.StoreInterface
	metrics providers.MetricsProviderInterface

	lifecycleMu sync.Mutex
	running     atomic.Bool
	stopCh      chan struct{}
	wg          sync.WaitGroup

	opsMu         sync.Mutex
	savedRevision uint64
}

func (s *Scheduler) Init() {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if !s.running.CAS(false, true) {
		s.logger.Warnf(providers.TypeApp, "Scheduler already running")
		return
	}
	s.stopCh = make(chan struct{})

	accrual := s.config.Staking.WithDefaults().AccrualInterval
	s.every(accrual, func() {
		s.service.AccrueRewards(accrual)
		s.metrics.IncAccrualTicks()
	})

	if save := s.config.Persistence.SaveInterval; save > 0 {
		s.every(save, func() {
			if s.dirty() {
				_ = s.Persist()
			}
		})
	}
	s.logger.Infof(providers.TypeApp, "Scheduler started: accrual every %s", accrual)
}

func (s *Scheduler) dirty() bool {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	return s.service.Revision() != s.savedRevision
}

func (s *Scheduler) every(interval time.Duration, job func()) {
	s.wg.Add(1)
	go func(stopCh <-chan struct{}) {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				job()
			}
		}
	}(s.stopCh)
}

// Stop waits for running jobs while holding the lifecycle lock, so a
// concurrent Init starts only after the old tickers are gone.
func (s *Scheduler) Stop() {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if !s.running.CAS(true, false) {
		return
	}
	close(s.stopCh)
	s.wg.Wait()
	s.logger.Infof(providers.TypeApp, "Scheduler stopped")
}

func (s *Scheduler) Restore() error {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	storage, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if storage == nil {
		s.logger.Infof(providers.TypeApp, "No snapshot found, starting fresh")
		return nil
	}
	s.service.Restore(storage)

	s.opsMu.Lock()
	s.savedRevision = s.service.Revision()
	s.opsMu.Unlock()
	s.logger.Infof(providers.TypeApp, "Snapshot restored: hasConnectedBefore=%t", storage.HasConnectedBefore)
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	revision := s.service.Revision()
	start := time.Now()
	err := s.store.Save(ctx, s.service.Snapshot())
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	s.savedRevision = revision
	s.logger.Infof(providers.TypeApp, "Snapshot persisted")
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.AccountServiceInterface, store interfaces.StoreInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
		store:   store,
		metrics: metrics,
	}
}
