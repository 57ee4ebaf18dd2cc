package user_test

import (
	"context"
	"testing"

	"github.com/kultoura/backend/auth"
	"github.com/kultoura/backend/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-signing-key")

func setupUserSrvc(t *testing.T) *user.UserSrvc {
	t.Helper()
	return user.NewUserSrvc(user.NewInMemUserRepo(), testJwtKey)
}

func TestRegisterAndLogin(t *testing.T) {
	srvc := setupUserSrvc(t)
	ctx := context.Background()

	fullName := "Maria Santos"
	registered, err := srvc.Register(ctx, user.RegisterParams{
		Email:    "Maria@Example.com",
		FullName: &fullName,
		Password: "password123",
		Role:     user.RoleJudge,
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", registered.Email)
	assert.Equal(t, user.RoleJudge, registered.Role)

	loggedIn, token, err := srvc.Login(ctx, "maria@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)

	claims, err := auth.ValidateJWT(token, testJwtKey)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.True(t, claims.HasScope("judge"))
	assert.False(t, claims.HasScope("admin"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	srvc := setupUserSrvc(t)
	ctx := context.Background()

	_, err := srvc.Register(ctx, user.RegisterParams{
		Email: "judge@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = srvc.Register(ctx, user.RegisterParams{
		Email: "judge@example.com", Password: "otherpassword",
	})
	require.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	srvc := setupUserSrvc(t)
	ctx := context.Background()

	_, err := srvc.Register(ctx, user.RegisterParams{
		Email: "judge@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, _, err = srvc.Login(ctx, "judge@example.com", "wrongpassword")
	require.Error(t, err)
	_, _, err = srvc.Login(ctx, "nobody@example.com", "password123")
	require.Error(t, err)
}

func TestRegisterValidation(t *testing.T) {
	srvc := setupUserSrvc(t)
	ctx := context.Background()

	_, err := srvc.Register(ctx, user.RegisterParams{
		Email: "not-an-email", Password: "password123",
	})
	require.Error(t, err)

	_, err = srvc.Register(ctx, user.RegisterParams{
		Email: "judge@example.com", Password: "short",
	})
	require.Error(t, err)

	_, err = srvc.Register(ctx, user.RegisterParams{
		Email: "judge@example.com", Password: "password123", Role: "superuser",
	})
	require.Error(t, err)
}

func TestRegisterDefaultsToJudgeRole(t *testing.T) {
	srvc := setupUserSrvc(t)

	registered, err := srvc.Register(context.Background(), user.RegisterParams{
		Email: "judge@example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleJudge, registered.Role)
}
