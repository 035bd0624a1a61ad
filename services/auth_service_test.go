package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/models"
	"fittrack/utils"
)

func newAuthService(t *testing.T) (*AuthService, *GamificationService) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	gam := NewGamificationService(db)
	return NewAuthService(db, gam), gam
}

func TestRegister(t *testing.T) {
	svc, gam := newAuthService(t)

	user, err := svc.Register("jane@example.com", "supersecret", "Jane")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "supersecret", user.Password)
	require.True(t, utils.CheckPasswordHash("supersecret", user.Password))

	// gamification state is seeded at signup
	profile, err := gam.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, 0, profile.TotalPoints)

	_, err = svc.Register("jane@example.com", "otherpass", "Jane Again")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("jane@example.com", "supersecret", "Jane")
	require.NoError(t, err)

	token, mfaPending, err := svc.Login("jane@example.com", "supersecret")
	require.NoError(t, err)
	assert.False(t, mfaPending)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login("jane@example.com", "wrongpass")
	assert.Error(t, err)
	_, _, err = svc.Login("nobody@example.com", "supersecret")
	assert.Error(t, err)
}

func TestVerifyMFA(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("jane@example.com", "supersecret", "Jane")
	require.NoError(t, err)
	require.NoError(t, svc.db.Model(user).Update("mfa_code", "123456").Error)

	_, err = svc.VerifyMFA("jane@example.com", "000000")
	assert.Error(t, err)

	token, err := svc.VerifyMFA("jane@example.com", "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// code is single-use
	_, err = svc.VerifyMFA("jane@example.com", "123456")
	assert.Error(t, err)
}

func TestResetPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("jane@example.com", "supersecret", "Jane")
	require.NoError(t, err)

	require.NoError(t, svc.db.Model(user).Updates(map[string]any{
		"reset_token":     "ABC123",
		"reset_token_exp": time.Now().Add(15 * time.Minute),
	}).Error)

	require.NoError(t, svc.ResetPassword("ABC123", "newpassword"))

	var updated models.User
	require.NoError(t, svc.db.First(&updated, user.ID).Error)
	assert.True(t, utils.CheckPasswordHash("newpassword", updated.Password))
	assert.Empty(t, updated.ResetToken)

	// token is cleared after use
	assert.Error(t, svc.ResetPassword("ABC123", "anotherpass"))

	_, _, err = svc.Login("jane@example.com", "newpassword")
	assert.NoError(t, err)
}

func TestResetPassword_Expired(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("jane@example.com", "supersecret", "Jane")
	require.NoError(t, err)

	require.NoError(t, svc.db.Model(user).Updates(map[string]any{
		"reset_token":     "ABC123",
		"reset_token_exp": time.Now().Add(-1 * time.Minute),
	}).Error)

	err = svc.ResetPassword("ABC123", "newpassword")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestForgotPassword_UnknownEmailSilent(t *testing.T) {
	svc, _ := newAuthService(t)
	assert.NoError(t, svc.ForgotPassword("nobody@example.com"))
	_, err := svc.FindUserByEmail("nobody@example.com")
	assert.Error(t, err)
}
