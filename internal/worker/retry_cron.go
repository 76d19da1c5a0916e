package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Wellify-Group/wellify-business-sub000/internal/infra"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
)

const (
	retryCronInterval = 30 * time.Second
	retryCronBatch    = 10
)

// StartRetryCron re-enqueues shift reports that are still pending past their
// scheduled time. Covers two failure modes: jobs lost because redis was down
// at clock-out, and jobs whose worker died mid-processing.
func StartRetryCron(ctx context.Context, shifts repository.ShiftRepository, dispatcher *Dispatcher, cb *infra.CircuitBreaker) {
	go func() {
		ticker := time.NewTicker(retryCronInterval)
		defer ticker.Stop()
		log.Info().Msg("report retry cron started")
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("report retry cron shutting down")
				return
			case <-ticker.C:
				if cb.State() == infra.CBOpen {
					log.Debug().Msg("retry cron skipped, circuit breaker open")
					continue
				}
				retryPendingReports(ctx, shifts, dispatcher)
			}
		}
	}()
}

func retryPendingReports(ctx context.Context, shifts repository.ShiftRepository, dispatcher *Dispatcher) {
	due, err := shifts.ListPendingReports(ctx, time.Now().UTC(), retryCronBatch)
	if err != nil {
		log.Error().Err(err).Msg("retry cron failed to list pending reports")
		return
	}
	for _, shift := range due {
		if err := dispatcher.EnqueueShiftReport(ctx, shift.ID); err != nil {
			log.Warn().Str("shift_id", shift.ID).Err(err).Msg("retry cron failed to enqueue report")
			continue
		}
		// Push the schedule forward so the next tick does not re-enqueue
		// the same shift while a worker is still on it.
		next := time.Now().UTC().Add(2 * time.Minute)
		if _, err := shifts.Update(ctx, shift.ID, repository.ShiftPatch{NextReportAt: &next}); err != nil {
			log.Warn().Str("shift_id", shift.ID).Err(err).Msg("retry cron failed to reschedule report")
		}
		log.Info().Str("shift_id", shift.ID).Msg("pending shift report re-enqueued")
	}
}
