package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Wellify-Group/wellify-business-sub000/internal/infra"
	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
)

// MaxReportRetries is the cap before a shift report job moves to the DLQ and
// the shift is marked with report status error.
const MaxReportRetries = 5

// ReportWorker renders shift report PDFs for closed shifts. Progress is
// tracked on the shift record itself, so the retry cron can re-enqueue
// pending reports if the queue lost the job.
type ReportWorker struct {
	shifts      repository.ShiftRepository
	orders      repository.OrderRepository
	rdb         *redis.Client
	storagePath string
}

func NewReportWorker(shifts repository.ShiftRepository, orders repository.OrderRepository, rdb *redis.Client, storagePath string) *ReportWorker {
	return &ReportWorker{shifts: shifts, orders: orders, rdb: rdb, storagePath: storagePath}
}

// Handle processes one shift report job.
func (w *ReportWorker) Handle(ctx context.Context, payload json.RawMessage) {
	var job ShiftReportJob
	if err := json.Unmarshal(payload, &job); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal shift report job")
		return
	}

	shift, err := w.shifts.FindByID(ctx, job.ShiftID)
	if err != nil {
		log.Error().Str("shift_id", job.ShiftID).Err(err).Msg("failed to load shift for report")
		return
	}
	if shift == nil {
		log.Warn().Str("shift_id", job.ShiftID).Msg("shift report job for unknown shift, dropping")
		return
	}
	if shift.ReportStatus == model.ReportDone {
		// Duplicate delivery (retry cron raced the worker). Idempotent skip.
		return
	}

	orders, err := w.orders.ListByShift(ctx, shift.ID)
	if err != nil {
		w.fail(ctx, shift, payload, err)
		return
	}

	path, err := infra.GenerateShiftReportPDF(shift, orders, w.storagePath)
	if err != nil {
		w.fail(ctx, shift, payload, err)
		return
	}

	done := model.ReportDone
	if _, err := w.shifts.Update(ctx, shift.ID, repository.ShiftPatch{
		ReportStatus:      &done,
		ReportPath:        &path,
		ClearNextReportAt: true,
	}); err != nil {
		log.Error().Str("shift_id", shift.ID).Err(err).Msg("report generated but shift update failed")
		return
	}
	log.Info().Str("shift_id", shift.ID).Str("path", path).Msg("shift report generated")
}

// fail records the error on the shift and either schedules a retry with
// exponential backoff or gives up and parks the job in the DLQ.
func (w *ReportWorker) fail(ctx context.Context, shift *model.Shift, payload json.RawMessage, cause error) {
	retries := shift.ReportRetries + 1
	errMsg := cause.Error()

	if retries >= MaxReportRetries {
		status := model.ReportError
		if _, err := w.shifts.Update(ctx, shift.ID, repository.ShiftPatch{
			ReportStatus:      &status,
			ReportRetries:     &retries,
			LastReportErr:     &errMsg,
			ClearNextReportAt: true,
		}); err != nil {
			log.Error().Str("shift_id", shift.ID).Err(err).Msg("failed to mark report as errored")
		}
		SendToDLQ(ctx, w.rdb, QueueShiftReport, Job{Type: "shift_report", Payload: payload}, errMsg)
		log.Error().Str("shift_id", shift.ID).Int("retries", retries).Err(cause).Msg("shift report failed permanently")
		return
	}

	// Backoff: 30s, 1m, 2m, 4m
	next := time.Now().UTC().Add(30 * time.Second << (retries - 1))
	status := model.ReportPending
	if _, err := w.shifts.Update(ctx, shift.ID, repository.ShiftPatch{
		ReportStatus:  &status,
		ReportRetries: &retries,
		LastReportErr: &errMsg,
		NextReportAt:  &next,
	}); err != nil {
		log.Error().Str("shift_id", shift.ID).Err(err).Msg("failed to schedule report retry")
		return
	}
	log.Warn().Str("shift_id", shift.ID).Int("retry", retries).Time("next_at", next).Err(cause).Msg("shift report failed, retry scheduled")
}
