package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
)

func TestAccessResolve_BusinessCode(t *testing.T) {
	f := newFixture(t)
	dir := f.seedDirector(t, "Olga Owner", "olga@biz.test", "password123", "1111-2222-3333-4444")

	result, err := f.access.Resolve(context.Background(), "1111 2222 3333 4444")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, dto.CodeTypeBusiness, result.Type)
	assert.Equal(t, dir.BusinessID, result.ID)
	assert.Equal(t, dir.ID, result.OwnerID)
	assert.Equal(t, "Olga Owner", result.Name)
}

func TestAccessResolve_LocationCode(t *testing.T) {
	f := newFixture(t)
	dir := f.seedDirector(t, "Olga Owner", "olga@biz.test", "password123", "1111-2222-3333-4444")
	loc := f.seedLocation(t, dir.BusinessID, "Main Branch", "5555-6666-7777-8888")

	result, err := f.access.Resolve(context.Background(), "5555-6666-7777-8888")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, dto.CodeTypeLocation, result.Type)
	assert.Equal(t, loc.ID, result.ID)
	assert.Equal(t, dir.BusinessID, result.BusinessID)
}

func TestAccessResolve_DirectorsTakePriority(t *testing.T) {
	// A code present in both pools resolves as a business.
	f := newFixture(t)
	dir := f.seedDirector(t, "Olga Owner", "olga@biz.test", "password123", "1111-2222-3333-4444")
	f.seedLocation(t, dir.BusinessID, "Shadowed Branch", "1111-2222-3333-4444")

	result, err := f.access.Resolve(context.Background(), "1111-2222-3333-4444")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, dto.CodeTypeBusiness, result.Type)
}

func TestAccessResolve_UnknownCode(t *testing.T) {
	f := newFixture(t)

	result, err := f.access.Resolve(context.Background(), "0000-0000-0000-0000")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGenerateAccessCode_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := GenerateAccessCode()
		assert.Regexp(t, `^\d{4}-\d{4}-\d{4}-\d{4}$`, code)
		seen[code] = true
	}
	// Collisions across 50 draws would point at a broken entropy source.
	assert.Greater(t, len(seen), 1)
}
