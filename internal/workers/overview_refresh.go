package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/internal/utils"
	"github.com/MKhiriev/go-portal-client/models"
)

// OverviewRefresher keeps the latest portal overview in memory. It fetches
// on a ticker, but only while the session is unlocked.
type OverviewRefresher struct {
	portal   service.ClientPortalService
	lock     service.LockPhaseReader
	interval time.Duration
	clock    utils.Clock
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	snapMu   sync.RWMutex
	snapshot models.OverviewSnapshot
	hasData  bool
}

// NewOverviewRefresher creates an idle refresher. If interval is zero or
// negative it defaults to config.DefaultRefreshInterval.
func NewOverviewRefresher(portal service.ClientPortalService, lock service.LockPhaseReader, interval time.Duration, clock utils.Clock, logger *logger.Logger) *OverviewRefresher {
	if interval <= 0 {
		interval = config.DefaultRefreshInterval
	}
	return &OverviewRefresher{
		portal:   portal,
		lock:     lock,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

// Start implements Worker. It stops any previously running loop, then
// launches a goroutine that refreshes every interval. The goroutine exits
// when ctx is cancelled or Stop is called.
func (r *OverviewRefresher) Start(ctx context.Context) {
	r.Stop()

	r.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		t := time.NewTicker(r.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = r.Refresh(jobCtx)
			}
		}
	}()
}

// Stop implements Worker. Safe to call when the loop is not running.
func (r *OverviewRefresher) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// Refresh fetches the overview once. While the session is not unlocked it
// does nothing and returns service.ErrSessionLocked. A failed fetch keeps the
// previous overview and records the error in the snapshot.
func (r *OverviewRefresher) Refresh(ctx context.Context) error {
	if r.lock.Phase() != models.LockPhaseUnlocked {
		return service.ErrSessionLocked
	}

	overview, err := r.portal.Overview(ctx)

	r.snapMu.Lock()
	defer r.snapMu.Unlock()

	if err != nil {
		r.logger.Warn().Err(err).Str("func", "OverviewRefresher.Refresh").Msg("overview refresh failed")
		r.snapshot.Err = err
		return err
	}

	r.snapshot = models.OverviewSnapshot{Overview: overview, FetchedAt: r.clock.Now()}
	r.hasData = true
	return nil
}

// Latest returns the most recent snapshot. ok is false until a refresh has
// either succeeded or failed at least once.
func (r *OverviewRefresher) Latest() (models.OverviewSnapshot, bool) {
	r.snapMu.RLock()
	defer r.snapMu.RUnlock()
	return r.snapshot, r.hasData || r.snapshot.Err != nil
}

// Clear drops the cached overview, e.g. when the session locks.
func (r *OverviewRefresher) Clear() {
	r.snapMu.Lock()
	r.snapshot = models.OverviewSnapshot{}
	r.hasData = false
	r.snapMu.Unlock()
}
