package services

import (
	"testing"
	"time"

	"backend/configs"
	"backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthSvc(env *testEnv) *AuthService {
	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	return NewAuthService(cfg, env.UserRepo)
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthSvc(env)

	token, user, err := svc.Register(&RegisterIn{
		Email: "  Ana@Example.com ", Password: "supersecret", FirstName: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "supersecret", user.Password)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// duplicate email is rejected, case-insensitively
	_, _, err = svc.Register(&RegisterIn{Email: "ANA@example.com", Password: "supersecret", FirstName: "Ana"})
	assert.Error(t, err)

	_, logged, err := svc.Login("ana@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, _, err = svc.Login("ana@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateMePartial(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthSvc(env)

	_, user, err := svc.Register(&RegisterIn{Email: "ana@example.com", Password: "supersecret", FirstName: "Ana"})
	require.NoError(t, err)

	phone := "5555-1234"
	updated, err := svc.UpdateMe(user.ID, &UpdateMeIn{PhoneNumber: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, phone, updated.PhoneNumber)
}
