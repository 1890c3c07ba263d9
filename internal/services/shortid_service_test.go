package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsuiio/blog/internal/utils"
)

func TestShortIDCreateAndResolve(t *testing.T) {
	db := testDB(t)
	svc := NewShortIDService(db)

	shortID, err := svc.Create(db, strPtr("my-post"))
	require.NoError(t, err)
	assert.Len(t, shortID.ShortName, utils.ShortNameLength)

	// both tokens resolve to the same row
	byName, err := svc.Resolve(shortID.ShortName)
	require.NoError(t, err)
	assert.Equal(t, shortID.ID, byName.ID)

	bySubname, err := svc.Resolve("my-post")
	require.NoError(t, err)
	assert.Equal(t, shortID.ID, bySubname.ID)
}

func TestShortIDResolveUnknown(t *testing.T) {
	db := testDB(t)
	svc := NewShortIDService(db)

	_, err := svc.Resolve("no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShortIDWithoutSubname(t *testing.T) {
	db := testDB(t)
	svc := NewShortIDService(db)

	shortID, err := svc.Create(db, nil)
	require.NoError(t, err)
	assert.Nil(t, shortID.Subname)
	assert.Equal(t, shortID.ShortName, shortID.Token())
}

func TestShortIDDuplicateSubname(t *testing.T) {
	db := testDB(t)
	svc := NewShortIDService(db)

	_, err := svc.Create(db, strPtr("taken"))
	require.NoError(t, err)

	_, err = svc.Create(db, strPtr("taken"))
	assert.ErrorIs(t, err, ErrSubnameExists)
}

func TestShortIDUpdateSubname(t *testing.T) {
	db := testDB(t)
	svc := NewShortIDService(db)

	shortID, err := svc.Create(db, strPtr("before"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateSubname(db, shortID.ID, strPtr("after")))

	_, err = svc.Resolve("before")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Resolve("after")
	require.NoError(t, err)
	assert.Equal(t, shortID.ID, got.ID)

	// the random name keeps working after an alias change
	got, err = svc.Resolve(shortID.ShortName)
	require.NoError(t, err)
	assert.Equal(t, shortID.ID, got.ID)
}

func TestShortIDUpdateSubnameConflict(t *testing.T) {
	db := testDB(t)
	svc := NewShortIDService(db)

	_, err := svc.Create(db, strPtr("taken"))
	require.NoError(t, err)

	other, err := svc.Create(db, strPtr("free"))
	require.NoError(t, err)

	err = svc.UpdateSubname(db, other.ID, strPtr("taken"))
	assert.ErrorIs(t, err, ErrSubnameExists)
}

func TestShortIDDelete(t *testing.T) {
	db := testDB(t)
	svc := NewShortIDService(db)

	shortID, err := svc.Create(db, strPtr("ephemeral"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(db, shortID.ID))

	_, err = svc.Resolve("ephemeral")
	assert.ErrorIs(t, err, ErrNotFound)
}
