package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

func newUser(role, name string) *model.User {
	now := time.Now().UTC()
	return &model.User{
		ID:        "uid-" + role + "-" + name,
		Role:      role,
		FullName:  name,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepo_FindByEmailOrPhone_Normalized(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemStore())

	mgr := newUser(model.RoleManager, "Robin")
	mgr.Email = "Robin@Example.COM"
	mgr.Phone = "+15550199"
	require.NoError(t, repo.Save(ctx, mgr))

	got, err := repo.FindByEmailOrPhone(ctx, model.RoleManager, "  robin@example.com ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, mgr.ID, got.ID)

	got, err = repo.FindByEmailOrPhone(ctx, model.RoleManager, "+15550199")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, mgr.ID, got.ID)

	// Role partitions are disjoint: a manager never shows up in director lookups.
	got, err = repo.FindByEmailOrPhone(ctx, model.RoleDirector, "robin@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepo_FindByPin_BusinessScoped(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemStore())

	empA := newUser(model.RoleEmployee, "Ana")
	empA.PIN = "1234"
	empA.BusinessID = "biz-a"
	require.NoError(t, repo.Save(ctx, empA))

	empB := newUser(model.RoleEmployee, "Bruno")
	empB.PIN = "1234"
	empB.BusinessID = "biz-b"
	require.NoError(t, repo.Save(ctx, empB))

	got, err := repo.FindByPin(ctx, "1234", "biz-b")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, empB.ID, got.ID)

	got, err = repo.FindByPin(ctx, "1234", "biz-c")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Unscoped lookup takes the first PIN match, whichever business owns it.
	got, err = repo.FindByPin(ctx, "1234", "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Contains(t, []string{empA.ID, empB.ID}, got.ID)
}

func TestUserRepo_FindByCompanyCode_IgnoresFormatting(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemStore())

	dir := newUser(model.RoleDirector, "Olga")
	dir.CompanyCode = "1111-2222-3333-4444"
	dir.BusinessID = dir.ID
	require.NoError(t, repo.Save(ctx, dir))

	got, err := repo.FindByCompanyCode(ctx, "1111 2222 3333 4444")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, dir.ID, got.ID)

	got, err = repo.FindByCompanyCode(ctx, "9999-9999-9999-9999")
	require.NoError(t, err)
	assert.Nil(t, got)

	// An empty code must never match directors without one.
	got, err = repo.FindByCompanyCode(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepo_UpdatePatchSemantics(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemStore())

	emp := newUser(model.RoleEmployee, "Cleo")
	emp.PIN = "0000"
	loc := "loc-1"
	emp.AssignedPointID = &loc
	require.NoError(t, repo.Save(ctx, emp))

	newPin := "4321"
	noPoint := ""
	got, err := repo.Update(ctx, model.RoleEmployee, emp.ID, UserPatch{
		PIN:             &newPin,
		AssignedPointID: &noPoint,
	})
	require.NoError(t, err)
	assert.Equal(t, "4321", got.PIN)
	assert.Nil(t, got.AssignedPointID)
	// Untouched fields survive.
	assert.Equal(t, "Cleo", got.FullName)

	_, err = repo.Update(ctx, model.RoleEmployee, "nobody", UserPatch{PIN: &newPin})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserRepo_SkipsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	repo := NewUserRepository(st)

	ok := newUser(model.RoleEmployee, "Dana")
	ok.PIN = "7777"
	require.NoError(t, repo.Save(ctx, ok))

	// A record that decodes but fails schema validation (missing role).
	require.NoError(t, st.Write(ctx, "users/employee", &model.User{ID: "broken-1"}))

	got, err := repo.FindByPin(ctx, "7777", "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ok.ID, got.ID)

	users, err := repo.ListByBusiness(ctx, model.RoleEmployee, "")
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
