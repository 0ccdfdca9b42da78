package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/val100/market/internal/app/repository"
	"github.com/val100/market/pkg/logger"
)

// CartScheduler periodically empties carts that have been idle past the
// configured age.
type CartScheduler struct {
	cron           *cron.Cron
	cartRepo       repository.CartRepository
	staleCartAfter time.Duration
}

func NewCartScheduler(cartRepo repository.CartRepository, staleCartAfter time.Duration) *CartScheduler {
	return &CartScheduler{
		cron:           cron.New(),
		cartRepo:       cartRepo,
		staleCartAfter: staleCartAfter,
	}
}

// Start registers the purge job. Runs daily at 4:00 AM, off-peak.
func (s *CartScheduler) Start() error {
	_, err := s.cron.AddFunc("0 4 * * *", func() {
		cutoff := time.Now().Add(-s.staleCartAfter)

		logger.Info("Starting scheduled stale cart purge", map[string]interface{}{
			"cutoff": cutoff,
		})

		purged, err := s.cartRepo.ClearStale(cutoff)
		if err != nil {
			logger.Error("Failed to purge stale carts", err)
			return
		}

		logger.Info("Stale cart purge completed", map[string]interface{}{
			"carts_purged": purged,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for stale cart purge", err)
		return err
	}

	s.cron.Start()
	logger.Info("Cart scheduler started successfully (daily at 4:00 AM)", nil)

	return nil
}

// Stop stops the scheduler
func (s *CartScheduler) Stop() {
	logger.Info("Stopping cart scheduler...", nil)
	s.cron.Stop()
	logger.Info("Cart scheduler stopped", nil)
}
