package service_test

import (
	"context"
	"testing"

	"feedback-forms-be/internal/dto"
	"feedback-forms-be/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := service.NewAuthService(newTestFactory(t))
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "  Alice@Example.com ",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email, "email is normalized")
	assert.NotEqual(t, "secret", user.PasswordHash, "password is hashed")

	loggedIn, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, user.Id, loggedIn.Id)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := service.NewAuthService(newTestFactory(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "bob@example.com", Password: "right"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "bob@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	// Unknown email produces the same generic error, no enumeration.
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "right"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := service.NewAuthService(newTestFactory(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "carol@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "CAROL@example.com", Password: "pw2"})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := service.NewAuthService(newTestFactory(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "", Password: "pw"})
	_, ok := service.AsValidationError(err)
	assert.True(t, ok, "empty email is a validation error")

	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "dave@example.com", Password: ""})
	_, ok = service.AsValidationError(err)
	assert.True(t, ok, "empty password is a validation error")
}
