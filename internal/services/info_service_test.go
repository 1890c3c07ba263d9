package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsuiio/blog/internal/models"
)

func TestInfoSingleton(t *testing.T) {
	info := NewInfoService(testDB(t))

	require.NoError(t, info.CreateInfo(&models.InfoCreateRequest{Bio: "hi", Title: "my blog"}))

	// only one row, ever
	err := info.CreateInfo(&models.InfoCreateRequest{Bio: "again", Title: "another"})
	assert.ErrorIs(t, err, ErrInfoExists)

	got, err := info.GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Bio)
	assert.Equal(t, "my blog", got.Title)
}

func TestInfoUpdate(t *testing.T) {
	info := NewInfoService(testDB(t))

	require.NoError(t, info.CreateInfo(&models.InfoCreateRequest{Bio: "old", Title: "old title"}))
	require.NoError(t, info.UpdateInfo(&models.InfoUpdateRequest{Bio: "new", Title: "new title"}))

	got, err := info.GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "new", got.Bio)
	assert.Equal(t, "new title", got.Title)
}

func TestInfoMissing(t *testing.T) {
	info := NewInfoService(testDB(t))

	_, err := info.GetInfo()
	assert.ErrorIs(t, err, ErrNotFound)

	err = info.UpdateInfo(&models.InfoUpdateRequest{Bio: "x", Title: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}
