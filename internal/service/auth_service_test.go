package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicircle/scrap-pickups/internal/auth"
	"github.com/epicircle/scrap-pickups/internal/localstore"
	"github.com/epicircle/scrap-pickups/internal/model"
)

func newAuthService(t *testing.T) (*AuthService, *localstore.Sessions) {
	t.Helper()
	sessions := localstore.NewSessions(localstore.NewMemory())
	return NewAuthService(sessions, auth.NewIssuer("secret", time.Hour), "123456"), sessions
}

func TestRequestOTP(t *testing.T) {
	svc, _ := newAuthService(t)

	hint, err := svc.RequestOTP(OTPInput{Phone: "98765 43210"})
	require.NoError(t, err)
	assert.Contains(t, hint, "123456")

	_, err = svc.RequestOTP(OTPInput{Phone: "12345"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RequestOTP(OTPInput{Phone: "9876543210", SignUp: true})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RequestOTP(OTPInput{Phone: "9876543210", Name: "Priya", SignUp: true})
	assert.NoError(t, err)
}

func TestVerifyCustomerRecordsSession(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newAuthService(t)

	session, err := svc.VerifyCustomer(ctx, VerifyInput{Phone: "98765-43210", Name: "Priya", OTP: "123456"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, session.Role)
	assert.Equal(t, "9876543210", session.User.Phone)

	principal, err := auth.NewParser("secret").Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "Priya", principal.Name)
	require.NoError(t, svc.Authorize(ctx, principal, session.Token))

	user, ok, err := sessions.User(ctx, "9876543210")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, session.Token, user.Token)

	// a plain login keeps the name given at sign-up
	again, err := svc.VerifyCustomer(ctx, VerifyInput{Phone: "9876543210", OTP: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "Priya", again.User.Name)
}

func TestVerifyRejectsWrongOTP(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.VerifyCustomer(context.Background(), VerifyInput{Phone: "9876543210", OTP: "000000"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.VerifyPartner(context.Background(), VerifyInput{Phone: "9876543210", OTP: ""})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogoutEndsSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	session, err := svc.VerifyPartner(ctx, VerifyInput{Phone: "9123456789", OTP: "123456"})
	require.NoError(t, err)
	principal, err := auth.NewParser("secret").Parse(session.Token)
	require.NoError(t, err)
	require.True(t, principal.IsPartner())
	require.NoError(t, svc.Authorize(ctx, principal, session.Token))

	require.NoError(t, svc.Logout(ctx, principal))
	assert.ErrorIs(t, svc.Authorize(ctx, principal, session.Token), ErrUnauthorized)
}
