package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

// ShiftPatch carries the mutable fields of a shift; nil = unchanged.
type ShiftPatch struct {
	ClockOut          *time.Time
	RevenueCash       *decimal.Decimal
	RevenueCard       *decimal.Decimal
	Status            *string
	ReportStatus      *string
	ReportPath        *string
	ReportRetries     *int
	NextReportAt      *time.Time
	ClearNextReportAt bool
	LastReportErr     *string
}

type ShiftRepository interface {
	Save(ctx context.Context, s *model.Shift) error
	FindByID(ctx context.Context, id string) (*model.Shift, error)
	ListByLocation(ctx context.Context, locationID string) ([]model.Shift, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]model.Shift, error)
	// FindActive returns the employee's open shift: status active, no clock-out,
	// optionally narrowed to one location. If duplicates exist (crash/race
	// leftovers) the first in scan order wins.
	FindActive(ctx context.Context, employeeID, locationID string) (*model.Shift, error)
	// ListPendingReports returns closed shifts whose report generation is due
	// for a retry, up to limit.
	ListPendingReports(ctx context.Context, now time.Time, limit int) ([]model.Shift, error)
	Update(ctx context.Context, id string, patch ShiftPatch) (*model.Shift, error)
}

type shiftRepo struct{ st store.Store }

func NewShiftRepository(st store.Store) ShiftRepository { return &shiftRepo{st: st} }

func (r *shiftRepo) Save(ctx context.Context, s *model.Shift) error {
	return r.st.Write(ctx, shiftsDir, s)
}

func (r *shiftRepo) FindByID(ctx context.Context, id string) (*model.Shift, error) {
	var found *model.Shift
	err := r.st.Scan(ctx, shiftsDir, func(raw []byte) error {
		s, ok := decode[model.Shift](raw, shiftsDir)
		if ok && s.ID == id {
			found = s
			return store.ErrStopScan
		}
		return nil
	})
	return found, err
}

func (r *shiftRepo) ListByLocation(ctx context.Context, locationID string) ([]model.Shift, error) {
	return r.list(ctx, func(s *model.Shift) bool { return s.LocationID == locationID })
}

func (r *shiftRepo) ListByEmployee(ctx context.Context, employeeID string) ([]model.Shift, error) {
	return r.list(ctx, func(s *model.Shift) bool { return s.EmployeeID == employeeID })
}

func (r *shiftRepo) FindActive(ctx context.Context, employeeID, locationID string) (*model.Shift, error) {
	var found *model.Shift
	err := r.st.Scan(ctx, shiftsDir, func(raw []byte) error {
		s, ok := decode[model.Shift](raw, shiftsDir)
		if !ok {
			return nil
		}
		if s.EmployeeID != employeeID || s.Status != model.ShiftActive || s.ClockOut != nil {
			return nil
		}
		if locationID != "" && s.LocationID != locationID {
			return nil
		}
		found = s
		return store.ErrStopScan
	})
	return found, err
}

func (r *shiftRepo) ListPendingReports(ctx context.Context, now time.Time, limit int) ([]model.Shift, error) {
	var due []model.Shift
	err := r.st.Scan(ctx, shiftsDir, func(raw []byte) error {
		s, ok := decode[model.Shift](raw, shiftsDir)
		if !ok || s.Status != model.ShiftClosed || s.ReportStatus != model.ReportPending {
			return nil
		}
		if s.NextReportAt == nil || s.NextReportAt.After(now) {
			return nil
		}
		due = append(due, *s)
		if limit > 0 && len(due) >= limit {
			return store.ErrStopScan
		}
		return nil
	})
	return due, err
}

func (r *shiftRepo) Update(ctx context.Context, id string, patch ShiftPatch) (*model.Shift, error) {
	rec, err := r.st.Update(ctx, shiftsDir, id, func(raw []byte) (store.Record, error) {
		var s model.Shift
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("repository: decode shift %s: %w", id, err)
		}
		applyShiftPatch(&s, patch)
		s.UpdatedAt = time.Now().UTC()
		return &s, nil
	})
	if err != nil {
		return nil, err
	}
	return rec.(*model.Shift), nil
}

func (r *shiftRepo) list(ctx context.Context, match func(*model.Shift) bool) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.st.Scan(ctx, shiftsDir, func(raw []byte) error {
		s, ok := decode[model.Shift](raw, shiftsDir)
		if ok && match(s) {
			shifts = append(shifts, *s)
		}
		return nil
	})
	return shifts, err
}

func applyShiftPatch(s *model.Shift, p ShiftPatch) {
	if p.ClockOut != nil {
		s.ClockOut = p.ClockOut
	}
	if p.RevenueCash != nil {
		s.RevenueCash = *p.RevenueCash
	}
	if p.RevenueCard != nil {
		s.RevenueCard = *p.RevenueCard
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.ReportStatus != nil {
		s.ReportStatus = *p.ReportStatus
	}
	if p.ReportPath != nil {
		s.ReportPath = p.ReportPath
	}
	if p.ReportRetries != nil {
		s.ReportRetries = *p.ReportRetries
	}
	if p.NextReportAt != nil {
		s.NextReportAt = p.NextReportAt
	}
	if p.ClearNextReportAt {
		s.NextReportAt = nil
	}
	if p.LastReportErr != nil {
		s.LastReportErr = p.LastReportErr
	}
}
