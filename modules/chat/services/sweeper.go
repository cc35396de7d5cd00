package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/storo-shop/backend/modules/chat/domain/entities/chat"
	"github.com/storo-shop/backend/modules/core/domain/entities/tenant"
	"github.com/storo-shop/backend/pkg/composables"
)

// Sweeper periodically flips stale active threads to missed, tenant by
// tenant under the usual scoping rules. State lives in the database;
// the sweeper itself holds nothing, so a restart only delays one tick.
type Sweeper struct {
	tenants     tenant.Repository
	chats       chat.Repository
	logger      *logrus.Logger
	missedAfter time.Duration
	interval    time.Duration
}

func NewSweeper(
	tenants tenant.Repository,
	chats chat.Repository,
	logger *logrus.Logger,
	missedAfter, interval time.Duration,
) *Sweeper {
	return &Sweeper{
		tenants:     tenants,
		chats:       chats,
		logger:      logger,
		missedAfter: missedAfter,
		interval:    interval,
	}
}

// Start runs the sweep loop until ctx is cancelled. ctx must carry the
// database pool.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *Sweeper) sweep(ctx context.Context) {
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("chat sweeper: failed to list tenants")
		return
	}

	cutoff := time.Now().Add(-s.missedAfter)
	for _, t := range tenants {
		if t.Blocked() {
			continue
		}
		tenantCtx := composables.WithTenantID(ctx, t.ID())
		marked, err := composables.InTenantTxResult(tenantCtx, func(txCtx context.Context) (int64, error) {
			return s.chats.MarkStaleMissed(txCtx, cutoff)
		})
		if err != nil {
			s.logger.WithError(err).WithField("tenant", t.ID()).Error("chat sweeper: sweep failed")
			continue
		}
		if marked > 0 {
			s.logger.WithFields(logrus.Fields{
				"tenant": t.ID(),
				"marked": marked,
			}).Info("chat sweeper: marked threads missed")
		}
	}
}
