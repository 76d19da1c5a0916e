package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

func seedClosedShift(t *testing.T, shifts repository.ShiftRepository, orders repository.OrderRepository) *model.Shift {
	t.Helper()
	ctx := context.Background()
	in := time.Now().UTC().Add(-8 * time.Hour)
	out := time.Now().UTC()
	shift := &model.Shift{
		ID:           "shift-0001-abcd",
		EmployeeID:   "emp-1",
		LocationID:   "loc-1",
		Date:         in.Format("2006-01-02"),
		ClockIn:      &in,
		ClockOut:     &out,
		RevenueCash:  decimal.NewFromInt(150),
		RevenueCard:  decimal.NewFromInt(320),
		Status:       model.ShiftClosed,
		ReportStatus: model.ReportPending,
		CreatedAt:    in,
		UpdatedAt:    out,
	}
	require.NoError(t, shifts.Save(ctx, shift))
	require.NoError(t, orders.Save(ctx, &model.Order{
		ID: "ord-1", EmployeeID: "emp-1", LocationID: "loc-1", ShiftID: shift.ID,
		Amount: decimal.NewFromInt(12), PaymentType: model.PaymentCash,
		Items:     []model.OrderItem{{Name: "Flat White", Quantity: 2, Price: decimal.NewFromInt(6), Subtotal: decimal.NewFromInt(12)}},
		CreatedAt: out.Add(-time.Hour),
	}))
	return shift
}

func TestReportWorker_GeneratesPDFAndMarksDone(t *testing.T) {
	st := store.NewMemStore()
	shifts := repository.NewShiftRepository(st)
	orders := repository.NewOrderRepository(st)
	w := NewReportWorker(shifts, orders, nil, t.TempDir())
	shift := seedClosedShift(t, shifts, orders)

	payload, err := json.Marshal(ShiftReportJob{ShiftID: shift.ID})
	require.NoError(t, err)
	w.Handle(context.Background(), payload)

	stored, err := shifts.FindByID(context.Background(), shift.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReportDone, stored.ReportStatus)
	require.NotNil(t, stored.ReportPath)
	assert.FileExists(t, *stored.ReportPath)
	assert.Nil(t, stored.NextReportAt)
}

func TestReportWorker_UnknownShiftIsDropped(t *testing.T) {
	st := store.NewMemStore()
	shifts := repository.NewShiftRepository(st)
	orders := repository.NewOrderRepository(st)
	w := NewReportWorker(shifts, orders, nil, t.TempDir())

	payload, err := json.Marshal(ShiftReportJob{ShiftID: "ghost"})
	require.NoError(t, err)
	// Must not panic and must not create anything.
	w.Handle(context.Background(), payload)
}

func TestReportWorker_DoneShiftIsIdempotent(t *testing.T) {
	st := store.NewMemStore()
	shifts := repository.NewShiftRepository(st)
	orders := repository.NewOrderRepository(st)
	dir := t.TempDir()
	w := NewReportWorker(shifts, orders, nil, dir)
	shift := seedClosedShift(t, shifts, orders)

	payload, err := json.Marshal(ShiftReportJob{ShiftID: shift.ID})
	require.NoError(t, err)
	w.Handle(context.Background(), payload)

	first, err := shifts.FindByID(context.Background(), shift.ID)
	require.NoError(t, err)

	// Duplicate delivery: the record stays as the first run left it.
	w.Handle(context.Background(), payload)
	second, err := shifts.FindByID(context.Background(), shift.ID)
	require.NoError(t, err)
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt)
	assert.Equal(t, *first.ReportPath, *second.ReportPath)
}
