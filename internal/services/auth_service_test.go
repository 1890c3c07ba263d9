package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsuiio/blog/internal/models"
)

func registerReq() *models.UserRegisterRequest {
	return &models.UserRegisterRequest{
		Username: "tsuiio",
		Nickname: "Tsui",
		Email:    "tsuiio@example.com",
		Password: "a-strong-password",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	auth := NewAuthService(testDB(t))

	user, err := auth.Register(registerReq())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "a-strong-password", user.PasswordHash)

	// both identities work
	got, err := auth.Login(&models.UserLoginRequest{Identity: "tsuiio", Password: "a-strong-password"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = auth.Login(&models.UserLoginRequest{Identity: "tsuiio@example.com", Password: "a-strong-password"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth := NewAuthService(testDB(t))

	_, err := auth.Register(registerReq())
	require.NoError(t, err)

	req := registerReq()
	req.Email = "other@example.com"
	_, err = auth.Register(req)
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := NewAuthService(testDB(t))

	_, err := auth.Register(registerReq())
	require.NoError(t, err)

	req := registerReq()
	req.Username = "someone-else"
	_, err = auth.Register(req)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLoginWrongPassword(t *testing.T) {
	auth := NewAuthService(testDB(t))

	_, err := auth.Register(registerReq())
	require.NoError(t, err)

	_, err = auth.Login(&models.UserLoginRequest{Identity: "tsuiio", Password: "not-the-password"})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	auth := NewAuthService(testDB(t))

	// indistinguishable from a wrong password
	_, err := auth.Login(&models.UserLoginRequest{Identity: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestUpdateNickname(t *testing.T) {
	auth := NewAuthService(testDB(t))

	user, err := auth.Register(registerReq())
	require.NoError(t, err)

	require.NoError(t, auth.UpdateNickname(user.ID, "New Name"))

	got, err := auth.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Nickname)

	assert.ErrorIs(t, auth.UpdateNickname(uuid.New(), "ghost"), ErrNotFound)
}
