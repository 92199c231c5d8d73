package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *User {
	u := NewUser("Alex.Morgan@Example.com", "Alex Morgan", "hash")
	u.Role = RoleManager
	return u
}

func TestJWT_RoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))
	user := testUser()

	token, expiresAt, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	uc, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), uc.UserID)
	assert.Equal(t, "alex.morgan@example.com", uc.Email)
	assert.Equal(t, RoleManager, uc.Role)
}

func TestJWT_WrongSecretRejected(t *testing.T) {
	token, _, err := NewJWTService(DefaultJWTConfig("secret-a")).GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = NewJWTService(DefaultJWTConfig("secret-b")).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_ExpiredRejected(t *testing.T) {
	cfg := DefaultJWTConfig("test-secret")
	cfg.AccessTokenTTL = -time.Minute
	svc := NewJWTService(cfg)

	token, _, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_GarbageRejected(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestUser_LoginLockout(t *testing.T) {
	user := testUser()
	require.NoError(t, user.CanLogin())

	for i := 0; i < 5; i++ {
		user.RecordFailedLogin(5, 15*time.Minute)
	}
	assert.Error(t, user.CanLogin(), "account locks after max failed attempts")

	user.RecordSuccessfulLogin()
	assert.NoError(t, user.CanLogin())
	assert.Equal(t, 0, user.FailedLogins)
	require.NotNil(t, user.LastLoginAt)
}

func TestUser_DisabledCannotLogin(t *testing.T) {
	user := testUser()
	user.Active = false
	assert.Error(t, user.CanLogin())
}
