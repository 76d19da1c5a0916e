package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

// ReportDispatcher enqueues async end-of-shift report jobs. The worker
// package provides the redis-backed implementation.
type ReportDispatcher interface {
	EnqueueShiftReport(ctx context.Context, shiftID string) error
}

type ShiftService interface {
	ClockIn(ctx context.Context, employeeID string, req dto.ClockInRequest) (*dto.ShiftResponse, error)
	ClockOut(ctx context.Context, employeeID, shiftID string, req dto.ClockOutRequest) (*dto.ShiftResponse, error)
	Active(ctx context.Context, employeeID, locationID string) (*dto.ShiftResponse, error)
	ListByLocation(ctx context.Context, businessID, locationID string) ([]dto.ShiftResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]dto.ShiftResponse, error)
}

type shiftService struct {
	shifts     repository.ShiftRepository
	locations  repository.LocationRepository
	dispatcher ReportDispatcher // nil = reports handled by the retry cron only
}

func NewShiftService(shifts repository.ShiftRepository, locations repository.LocationRepository, dispatcher ReportDispatcher) ShiftService {
	return &shiftService{shifts: shifts, locations: locations, dispatcher: dispatcher}
}

func (s *shiftService) ClockIn(ctx context.Context, employeeID string, req dto.ClockInRequest) (*dto.ShiftResponse, error) {
	// One active shift per employee, across all locations.
	active, err := s.shifts.FindActive(ctx, employeeID, "")
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrShiftAlreadyOpen
	}

	location, err := s.locations.FindByID(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	shift := &model.Shift{
		ID:          uuid.New().String(),
		EmployeeID:  employeeID,
		LocationID:  location.ID,
		Date:        now.Format("2006-01-02"),
		ClockIn:     &now,
		RevenueCash: decimal.Zero,
		RevenueCard: decimal.Zero,
		Status:      model.ShiftActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.shifts.Save(ctx, shift); err != nil {
		return nil, err
	}
	log.Info().Str("shift_id", shift.ID).Str("employee_id", employeeID).Msg("shift opened")
	resp := dto.NewShiftResponse(shift)
	return &resp, nil
}

func (s *shiftService) ClockOut(ctx context.Context, employeeID, shiftID string, req dto.ClockOutRequest) (*dto.ShiftResponse, error) {
	shift, err := s.shifts.FindByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil || shift.EmployeeID != employeeID {
		return nil, ErrNotFound
	}
	if shift.Status != model.ShiftActive || shift.ClockOut != nil {
		return nil, ErrShiftNotActive
	}

	now := time.Now().UTC()
	closed := model.ShiftClosed
	pending := model.ReportPending
	// The retry cron only steps in if the queued job hasn't landed by then.
	cronDue := now.Add(2 * time.Minute)
	updated, err := s.shifts.Update(ctx, shiftID, repository.ShiftPatch{
		ClockOut:     &now,
		RevenueCash:  &req.RevenueCash,
		RevenueCard:  &req.RevenueCard,
		Status:       &closed,
		ReportStatus: &pending,
		NextReportAt: &cronDue,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueShiftReport(ctx, shiftID); err != nil {
			// Best effort — the pending report stays due for the retry cron.
			log.Warn().Str("shift_id", shiftID).Err(err).Msg("shift report enqueue failed")
		}
	}

	log.Info().Str("shift_id", shiftID).Str("employee_id", employeeID).Msg("shift closed")
	resp := dto.NewShiftResponse(updated)
	return &resp, nil
}

func (s *shiftService) Active(ctx context.Context, employeeID, locationID string) (*dto.ShiftResponse, error) {
	shift, err := s.shifts.FindActive(ctx, employeeID, locationID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, ErrNoActiveShift
	}
	resp := dto.NewShiftResponse(shift)
	return &resp, nil
}

func (s *shiftService) ListByLocation(ctx context.Context, businessID, locationID string) ([]dto.ShiftResponse, error) {
	location, err := s.locations.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if location == nil || repository.NormalizeCode(location.BusinessID) != repository.NormalizeCode(businessID) {
		return nil, ErrNotFound
	}
	shifts, err := s.shifts.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return shiftResponses(shifts), nil
}

func (s *shiftService) ListByEmployee(ctx context.Context, employeeID string) ([]dto.ShiftResponse, error) {
	shifts, err := s.shifts.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return shiftResponses(shifts), nil
}

func shiftResponses(shifts []model.Shift) []dto.ShiftResponse {
	resp := make([]dto.ShiftResponse, len(shifts))
	for i := range shifts {
		resp[i] = dto.NewShiftResponse(&shifts[i])
	}
	return resp
}
