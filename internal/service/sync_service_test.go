package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

func TestSync_UnknownUserGetsEmptyAggregate(t *testing.T) {
	st := store.NewMemStore()
	svc := NewSyncService(
		repository.NewUserRepository(st),
		repository.NewLocationRepository(st),
		repository.NewShiftRepository(st),
		nil,
	)

	resp, err := svc.GetUserData(context.Background(), "ghost", model.RoleDirector)
	require.NoError(t, err)
	assert.Nil(t, resp.User)
	assert.Empty(t, resp.Locations)
	assert.Empty(t, resp.Employees)
	assert.Empty(t, resp.Managers)
	assert.Empty(t, resp.Shifts)
}

func TestSync_DirectorGetsFullAggregate(t *testing.T) {
	st := store.NewMemStore()
	f := &fixture{
		users:     repository.NewUserRepository(st),
		locations: repository.NewLocationRepository(st),
	}
	shifts := repository.NewShiftRepository(st)
	svc := NewSyncService(f.users, f.locations, shifts, nil)
	shiftSvc := NewShiftService(shifts, f.locations, nil)
	ctx := context.Background()

	dir := f.seedDirector(t, "Olga Owner", "olga@biz.test", "password123", "1111-2222-3333-4444")
	loc := f.seedLocation(t, dir.BusinessID, "Main Branch", "5555-6666-7777-8888")
	emp := f.seedEmployee(t, dir.BusinessID, "Eddie", "4321", nil)
	_, err := shiftSvc.ClockIn(ctx, emp.ID, dto.ClockInRequest{LocationID: loc.ID})
	require.NoError(t, err)

	resp, err := svc.GetUserData(ctx, dir.ID, model.RoleDirector)
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, dir.ID, resp.User.ID)
	assert.Len(t, resp.Locations, 1)
	assert.Len(t, resp.Employees, 1)
	assert.Len(t, resp.Shifts, 1)
}

func TestSync_EmployeeGetsLocationsOnly(t *testing.T) {
	st := store.NewMemStore()
	f := &fixture{
		users:     repository.NewUserRepository(st),
		locations: repository.NewLocationRepository(st),
	}
	shifts := repository.NewShiftRepository(st)
	svc := NewSyncService(f.users, f.locations, shifts, nil)
	ctx := context.Background()

	dir := f.seedDirector(t, "Olga Owner", "olga@biz.test", "password123", "")
	f.seedLocation(t, dir.BusinessID, "Main Branch", "5555-6666-7777-8888")
	emp := f.seedEmployee(t, dir.BusinessID, "Eddie", "4321", nil)

	resp, err := svc.GetUserData(ctx, emp.ID, model.RoleEmployee)
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Len(t, resp.Locations, 1)
	// Staff roster and shift fan-out are director-only.
	assert.Empty(t, resp.Employees)
	assert.Empty(t, resp.Managers)
	assert.Empty(t, resp.Shifts)
}
