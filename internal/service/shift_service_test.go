package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

// stubDispatcher records enqueued shift IDs; fail makes every enqueue error.
type stubDispatcher struct {
	enqueued []string
	fail     bool
}

func (d *stubDispatcher) EnqueueShiftReport(_ context.Context, shiftID string) error {
	if d.fail {
		return errors.New("queue down")
	}
	d.enqueued = append(d.enqueued, shiftID)
	return nil
}

type shiftFixture struct {
	*fixture
	st         store.Store
	shifts     repository.ShiftRepository
	svc        ShiftService
	dispatcher *stubDispatcher
}

func newShiftFixture(t *testing.T) *shiftFixture {
	t.Helper()
	st := store.NewMemStore()
	users := repository.NewUserRepository(st)
	locations := repository.NewLocationRepository(st)
	shifts := repository.NewShiftRepository(st)
	dispatcher := &stubDispatcher{}
	return &shiftFixture{
		st: st,
		fixture: &fixture{
			users:     users,
			locations: locations,
			auth:      NewAuthService(users, locations, newTestCfg()),
			access:    NewAccessService(users, locations),
		},
		shifts:     shifts,
		svc:        NewShiftService(shifts, locations, dispatcher),
		dispatcher: dispatcher,
	}
}

func TestClockIn_OneActiveShiftPerEmployee(t *testing.T) {
	f := newShiftFixture(t)
	dir := f.seedDirector(t, "Olga Owner", "olga@biz.test", "password123", "")
	loc := f.seedLocation(t, dir.BusinessID, "Main Branch", "5555-6666-7777-8888")
	emp := f.seedEmployee(t, dir.BusinessID, "Eddie", "4321", nil)
	ctx := context.Background()

	opened, err := f.svc.ClockIn(ctx, emp.ID, dto.ClockInRequest{LocationID: loc.ID})
	require.NoError(t, err)
	assert.Equal(t, model.ShiftActive, opened.Status)
	require.NotNil(t, opened.ClockIn)
	assert.Nil(t, opened.ClockOut)

	// Second clock-in anywhere is rejected while the first shift is open.
	locB := f.seedLocation(t, dir.BusinessID, "Branch B", "9999-8888-7777-6666")
	_, err = f.svc.ClockIn(ctx, emp.ID, dto.ClockInRequest{LocationID: locB.ID})
	assert.ErrorIs(t, err, ErrShiftAlreadyOpen)
}

func TestClockIn_UnknownLocation(t *testing.T) {
	f := newShiftFixture(t)
	dir := f.seedDirector(t, "Olga Owner", "olga@biz.test", "password123", "")
	emp := f.seedEmployee(t, dir.BusinessID, "Eddie", "4321", nil)

	_, err := f.svc.ClockIn(context.Background(), emp.ID, dto.ClockInRequest{LocationID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClockOut_ClosesShiftAndSchedulesReport(t *testing.T) {
	f := newShiftFixture(t)
	dir := f.seedDirector(t, "Olga Owner", "olga@biz.test", "password123", "")
	loc := f.seedLocation(t, dir.BusinessID, "Main Branch", "5555-6666-7777-8888")
	emp := f.seedEmployee(t, dir.BusinessID, "Eddie", "4321", nil)
	ctx := context.Background()

	opened, err := f.svc.ClockIn(ctx, emp.ID, dto.ClockInRequest{LocationID: loc.ID})
	require.NoError(t, err)

	closed, err := f.svc.ClockOut(ctx, emp.ID, opened.ID, dto.ClockOutRequest{
		RevenueCash: decimal.NewFromInt(150),
		RevenueCard: decimal.NewFromInt(320),
	})
	require.NoError(t, err)
	assert.Equal(t, model.ShiftClosed, closed.Status)
	require.NotNil(t, closed.ClockOut)
	assert.True(t, closed.RevenueCash.Equal(decimal.NewFromInt(150)))
	assert.True(t, closed.RevenueCard.Equal(decimal.NewFromInt(320)))

	// Report job enqueued and the cron fallback armed on the stored record.
	assert.Equal(t, []string{opened.ID}, f.dispatcher.enqueued)
	stored, err := f.shifts.FindByID(ctx, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReportPending, stored.ReportStatus)
	assert.NotNil(t, stored.NextReportAt)

	// The employee can open a new shift once the old one is closed.
	_, err = f.svc.ClockIn(ctx, emp.ID, dto.ClockInRequest{LocationID: loc.ID})
	assert.NoError(t, err)
}

func TestClockOut_Guards(t *testing.T) {
	f := newShiftFixture(t)
	dir := f.seedDirector(t, "Olga Owner", "olga@biz.test", "password123", "")
	loc := f.seedLocation(t, dir.BusinessID, "Main Branch", "5555-6666-7777-8888")
	emp := f.seedEmployee(t, dir.BusinessID, "Eddie", "4321", nil)
	other := f.seedEmployee(t, dir.BusinessID, "Fran", "1111", nil)
	ctx := context.Background()

	opened, err := f.svc.ClockIn(ctx, emp.ID, dto.ClockInRequest{LocationID: loc.ID})
	require.NoError(t, err)

	// Someone else's shift reads as not found.
	_, err = f.svc.ClockOut(ctx, other.ID, opened.ID, dto.ClockOutRequest{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.ClockOut(ctx, emp.ID, opened.ID, dto.ClockOutRequest{})
	require.NoError(t, err)

	// Double clock-out.
	_, err = f.svc.ClockOut(ctx, emp.ID, opened.ID, dto.ClockOutRequest{})
	assert.ErrorIs(t, err, ErrShiftNotActive)
}

func TestClockOut_SurvivesQueueOutage(t *testing.T) {
	f := newShiftFixture(t)
	f.dispatcher.fail = true
	dir := f.seedDirector(t, "Olga Owner", "olga@biz.test", "password123", "")
	loc := f.seedLocation(t, dir.BusinessID, "Main Branch", "5555-6666-7777-8888")
	emp := f.seedEmployee(t, dir.BusinessID, "Eddie", "4321", nil)
	ctx := context.Background()

	opened, err := f.svc.ClockIn(ctx, emp.ID, dto.ClockInRequest{LocationID: loc.ID})
	require.NoError(t, err)

	// Enqueue failure must not fail the clock-out; the cron picks it up.
	closed, err := f.svc.ClockOut(ctx, emp.ID, opened.ID, dto.ClockOutRequest{})
	require.NoError(t, err)
	assert.Equal(t, model.ShiftClosed, closed.Status)

	stored, err := f.shifts.FindByID(ctx, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReportPending, stored.ReportStatus)
	assert.NotNil(t, stored.NextReportAt)
}

func TestActive_NoShift(t *testing.T) {
	f := newShiftFixture(t)
	_, err := f.svc.Active(context.Background(), "ghost", "")
	assert.ErrorIs(t, err, ErrNoActiveShift)
}
