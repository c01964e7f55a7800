package user

import (
	"context"
	"testing"

	"Recipe-Book/domain"
	"Recipe-Book/internal/testutil"
	"Recipe-Book/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (UserService, jwt.JWTService) {
	t.Helper()
	db := testutil.NewDB(t)
	jwtService := jwt.NewJWTServiceWithSecret("test-secret")
	return NewUserService(NewUserRepository(db), jwtService), jwtService
}

func TestRegisterLoginMe(t *testing.T) {
	svc, jwtService := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.RegisterRequest{
		Username: "chef",
		Email:    "Chef@Example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "chef@example.com", registered.Email)

	login, err := svc.Login(ctx, domain.LoginRequest{Username: "chef", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, login.User.ID)

	userID, err := jwtService.GetUserIDByToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)

	me, err := svc.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "chef", me.Username)
}

func TestRegister_Duplicate(t *testing.T) {
	svc, _ := newTestService(t)
	req := domain.RegisterRequest{Username: "chef", Email: "chef@example.com", Password: "correct horse"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Register(context.Background(), domain.RegisterRequest{Username: "chef", Email: "chef@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Username: "chef", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Username: "nobody", Password: "correct horse"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestMe_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Me(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
